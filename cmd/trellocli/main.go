// trellocli: инструмент командной строки для Trello.
//
// Использование:
//
//	trellocli [--output table|json|yaml] [--color C] [--env-file PATH] <command> [args]
//
// Команды:
//
//	list-boards                                   Доски текущего пользователя
//	list-columns BOARD_ID                         Открытые колонки доски
//	create-card COLUMN_ID NAME COMMENT [LABEL...] Карточка с комментарием и метками
//
// Учётные данные берутся из TRELLO_API_KEY и TRELLO_API_TOKEN
// (или из файла .env).
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shaiso/trellocli/internal/cli"
	"github.com/shaiso/trellocli/internal/config"
	"github.com/shaiso/trellocli/internal/telemetry"
	"github.com/shaiso/trellocli/internal/trello"
)

// version задаётся через ldflags при сборке.
var version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run выполняет CLI и возвращает код завершения процесса.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		envFile     string
		format      string
		color       string
		metricsFile string
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := telemetry.SetupLogger(stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	registry := telemetry.NewRegistry()

	rootCmd := &cobra.Command{
		Use:           "trellocli",
		Short:         "trellocli: Trello from the command line",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := cli.ParseFormat(format)
			return err
		},
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	f := rootCmd.PersistentFlags()
	f.StringVar(&envFile, "env-file", ".env", "File with fallback values for environment variables")
	f.StringVarP(&format, "output", "o", string(cli.FormatTable), "Output format: table, json or yaml")
	f.StringVar(&color, "color", cli.DefaultColor, "Table color (ANSI index or hex), empty to disable")
	f.StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the command")

	clientFn := func() (*trello.Client, error) {
		cfg, err := config.LoadConfig(ctx, envFile)
		if err != nil {
			return nil, err
		}
		telemetry.Configure(logger, cfg.LogLevel, cfg.LogFormat)

		return trello.NewClient(cfg.APIKey, cfg.APIToken,
			trello.WithBaseURL(cfg.APIURL),
			trello.WithLogger(logger),
			trello.WithRegisterer(registry),
		), nil
	}
	outputFn := func() *cli.Output {
		// Формат уже проверен в PersistentPreRunE
		fmtValue, _ := cli.ParseFormat(format)
		return cli.NewOutputTo(stdout, stderr, fmtValue, color)
	}

	rootCmd.AddCommand(
		cli.NewListBoardsCmd(clientFn, outputFn),
		cli.NewListColumnsCmd(clientFn, outputFn, logger),
		cli.NewCreateCardCmd(clientFn, outputFn, logger),
	)

	err := rootCmd.ExecuteContext(ctx)

	if merr := telemetry.WriteMetrics(metricsFile, registry); merr != nil {
		logger.WithError(merr).Warn("metrics were not written")
	}

	if err != nil {
		outputFn().Error(cli.ErrorMessage(err))
		return cli.ExitCode(err)
	}
	return cli.ExitOK
}
