package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ErrEncoding: не удалось сериализовать данные в JSON или YAML.
var ErrEncoding = errors.New("encoding failed")

// Format: формат вывода данных.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat проверяет значение флага --output.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (table, json, yaml)", s)
	}
}

// DefaultColor: цвет таблиц по умолчанию (ANSI green).
const DefaultColor = "2"

// Output управляет форматированием вывода CLI.
type Output struct {
	format Format
	w      io.Writer // stdout для данных
	errW   io.Writer // stderr для сообщений
	row    lipgloss.Style
	header lipgloss.Style
}

// NewOutputTo создаёт Output: данные пишутся в w, сообщения в errW.
// Цвет (номер ANSI или hex) применяется, только если w является терминалом.
func NewOutputTo(w, errW io.Writer, format Format, color string) *Output {
	style := lipgloss.NewRenderer(w).NewStyle()
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}

	return &Output{
		format: format,
		w:      w,
		errW:   errW,
		row:    style,
		header: style.Bold(true),
	}
}

// Print выводит данные: таблицу, JSON или YAML в зависимости от формата.
func (o *Output) Print(headers []string, rows [][]string, data any) error {
	switch o.format {
	case FormatJSON:
		return o.JSON(data)
	case FormatYAML:
		return o.YAML(data)
	default:
		o.Table(headers, rows)
		return nil
	}
}

// Table выводит данные в виде таблицы через tabwriter.
// Каждая строка раскрашивается целиком, чтобы escape-коды
// не сбивали выравнивание.
func (o *Output) Table(headers []string, rows [][]string) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	tw.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		style := o.row
		if i == 0 {
			style = o.header
		}
		fmt.Fprintln(o.w, style.Render(line))
	}
}

// JSON выводит данные в формате JSON с отступами.
func (o *Output) JSON(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: json: %v", ErrEncoding, err)
	}
	return nil
}

// YAML выводит данные в формате YAML.
func (o *Output) YAML(v any) (err error) {
	enc := yaml.NewEncoder(o.w)
	enc.SetIndent(2)
	defer func() {
		if cerr := enc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: yaml: %v", ErrEncoding, cerr)
		}
	}()

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: yaml: %v", ErrEncoding, err)
	}
	return nil
}

// Banner выводит заголовок над таблицей. В режимах JSON и YAML
// баннер уходит в stderr, чтобы не портить данные.
func (o *Output) Banner(msg string) {
	if o.format != FormatTable {
		o.Success(msg)
		return
	}
	fmt.Fprintln(o.w, o.header.Render(msg))
}

// Success выводит сообщение об успехе в stderr.
func (o *Output) Success(msg string) {
	fmt.Fprintln(o.errW, msg)
}

// Error выводит сообщение об ошибке в stderr.
func (o *Output) Error(msg string) {
	fmt.Fprintln(o.errW, "Error: "+msg)
}
