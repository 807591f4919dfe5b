package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"alcatelz/cmd/client/cmd/category"
	"alcatelz/cmd/client/cmd/contribute"
	"alcatelz/cmd/client/cmd/resource"
	"alcatelz/cmd/client/cmd/shared"
	"alcatelz/internal/app/client"
	"alcatelz/internal/app/client/config"
	"alcatelz/internal/app/client/view"
	"alcatelz/internal/utils/logger"
)

var (
	cfgFile      string
	debug        bool
	serverURL    string
	theme        string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "alcatelz",
	Short: "Alcatelz - клиент ресурсов сообщества",
	Long: `Alcatelz - консольный клиент для чтения и публикации ресурсов сообщества.

Ресурсы и общие страницы отображаются прямо в терминале, черновики
хранятся локально и публикуются на сервер командой contribute publish.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if debug {
		cfg.LogLevel = "debug"
	}

	format, err := view.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	log := logger.NewWithLevel(cfg.Env, cfg.LogLevel)

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	styles := view.NewStyles(view.ResolveTheme(cfg.Theme), view.TerminalWidth())
	printer := view.NewPrinter(cmd.OutOrStdout(), format, styles)

	ctx := client.WithApp(cmd.Context(), app)
	ctx = view.WithPrinter(ctx, printer)
	cmd.SetContext(ctx)
	return nil
}

func closeApp(cmd *cobra.Command, _ []string) error {
	app, err := client.FromContext(cmd.Context())
	if err != nil {
		return nil
	}
	return app.Close()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера Alcatelz")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "тема оформления (auto, light, dark)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", string(view.FormatHuman),
		"формат вывода (human, json, yaml, table, csv)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(resource.Cmd)
	rootCmd.AddCommand(shared.Cmd)
	rootCmd.AddCommand(category.Cmd)
	rootCmd.AddCommand(contribute.Cmd)
}
