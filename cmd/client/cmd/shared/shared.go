package shared

import (
	"fmt"

	"github.com/spf13/cobra"

	"alcatelz/cmd/client/cmd/resource"
	"alcatelz/internal/app/client"
	"alcatelz/internal/app/client/view"
)

var (
	query    string
	expanded []string
)

// Cmd показывает общую страницу по идентификатору из ссылки
var Cmd = &cobra.Command{
	Use:   "shared [id]",
	Short: "Открыть общую страницу",
	Long: `Показывает страницу, которой поделились по ссылке.
Изображения страницы подставляются из ее вложений.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		page, err := app.Shared(cmd.Context(), args[0], resource.View(cmd, query, expanded))
		if err != nil {
			return fmt.Errorf("ошибка получения страницы: %w", err)
		}
		return view.PrinterFrom(cmd.Context()).Page(page)
	},
}

func init() {
	Cmd.Flags().StringVarP(&query, "query", "q", "", "поиск по содержимому блоков")
	Cmd.Flags().StringSliceVar(&expanded, "expand", nil, "раскрыть переключатели (id блоков)")
}
