package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"alcatelz/internal/app/client"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Инициализировать клиент Alcatelz",
	Long: `Команда init выполняет первоначальную настройку клиента:
	1. Сохраняет конфигурацию в директории клиента
	2. Проверяет соединение с сервером

Флаги --server и --theme попадают в сохраненный файл.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "=== Инициализация Alcatelz ===")

		path, err := app.Config().Write(forceInit)
		if errors.Is(err, os.ErrExist) {
			fmt.Fprintf(out, "Конфигурация уже существует: %s (используйте --force)\n", path)
		} else if err != nil {
			return fmt.Errorf("ошибка сохранения конфигурации: %w", err)
		} else {
			fmt.Fprintf(out, "✓ Конфигурация сохранена: %s\n", path)
		}

		// Проверяем соединение с сервером
		fmt.Fprintln(out, "Проверка соединения с сервером...")
		if err := app.CheckConnection(cmd.Context()); err != nil {
			fmt.Fprintf(out, "⚠️  Предупреждение: не удалось подключиться к серверу: %v\n", err)
			fmt.Fprintln(out, "Черновики можно готовить офлайн, публикация будет недоступна.")
		} else {
			fmt.Fprintln(out, "✓ Соединение с сервером установлено")
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Что дальше:")
		fmt.Fprintln(out, "1. Посмотрите ленту: alcatelz resource list")
		fmt.Fprintln(out, "2. Создайте черновик: alcatelz contribute new --title ... --category ...")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "перезаписать существующую конфигурацию")
}
