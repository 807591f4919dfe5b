package category

import (
	"fmt"

	"github.com/spf13/cobra"

	"alcatelz/internal/app/client"
	"alcatelz/internal/app/client/view"
)

// Cmd - родительская команда для категорий
var Cmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"categories"},
	Short:   "Категории ресурсов",
}

var query string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Список категорий",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		cats, err := app.Categories(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения категорий: %w", err)
		}
		return view.PrinterFrom(cmd.Context()).Categories(cats)
	},
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Ресурсы категории",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		page, err := app.Category(cmd.Context(), args[0], query)
		if err != nil {
			return fmt.Errorf("ошибка получения категории: %w", err)
		}
		return view.PrinterFrom(cmd.Context()).CategoryPage(page)
	},
}

func init() {
	showCmd.Flags().StringVarP(&query, "query", "q", "", "поиск по названию")
	Cmd.AddCommand(listCmd, showCmd)
}
