package cli

import (
	"strconv"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shaiso/trellocli/internal/domain"
	"github.com/shaiso/trellocli/internal/telemetry"
	"github.com/shaiso/trellocli/internal/trello"
)

// maxNameWidth: длина имени доски или колонки в таблице.
const maxNameWidth = 27

// ClientFunc лениво создаёт клиент после разбора флагов и загрузки
// конфигурации.
type ClientFunc func() (*trello.Client, error)

// OutputFunc лениво создаёт Output после разбора флагов.
type OutputFunc func() *Output

// NewListBoardsCmd создаёт команду list-boards.
func NewListBoardsCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list-boards",
		Short: "List the boards of the current member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn()
			if err != nil {
				return err
			}
			out := outputFn()

			boards, err := client.GetBoardList(cmd.Context())
			if err != nil {
				return err
			}

			return out.Print(
				[]string{"#", "BOARD ID", "BOARD NAME", "CLOSED"},
				boardRows(boards),
				boards,
			)
		},
	}
}

// NewListColumnsCmd создаёт команду list-columns.
func NewListColumnsCmd(clientFn ClientFunc, outputFn OutputFunc, logger logrus.FieldLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "list-columns BOARD_ID",
		Short: "List the open columns of a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn()
			if err != nil {
				return err
			}
			out := outputFn()

			columns, err := client.GetBoardColumns(cmd.Context(), args[0])
			if err != nil {
				telemetry.WithBoardID(logger, args[0]).WithError(err).Debug("listing columns failed")
				return err
			}

			return out.Print(
				[]string{"#", "COLUMN ID", "COLUMN NAME"},
				columnRows(columns),
				columns,
			)
		},
	}
}

func boardRows(boards []domain.Board) [][]string {
	rows := make([][]string, len(boards))
	for i, b := range boards {
		rows[i] = []string{strconv.Itoa(i + 1), b.ID, truncate(b.Name, maxNameWidth), formatBool(b.Closed)}
	}
	return rows
}

func columnRows(columns []domain.Column) [][]string {
	rows := make([][]string, len(columns))
	for i, c := range columns {
		rows[i] = []string{strconv.Itoa(i + 1), c.ID, truncate(c.Name, maxNameWidth)}
	}
	return rows
}

// truncate обрезает строку до n рун.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func formatBool(b *bool) string {
	if b == nil {
		return "-"
	}
	return strconv.FormatBool(*b)
}

func formatString(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func formatFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
