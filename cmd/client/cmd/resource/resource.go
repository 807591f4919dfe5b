package resource

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"alcatelz/internal/app/client"
	"alcatelz/internal/app/client/view"
	"alcatelz/internal/domain/record"
)

// Cmd - родительская команда для ресурсов сообщества
var Cmd = &cobra.Command{
	Use:     "resource",
	Aliases: []string{"resources", "r"},
	Short:   "Ресурсы сообщества",
	Long:    `Просмотр ленты ресурсов, отдельных ресурсов и копирование блоков.`,
}

var (
	query    string
	expanded []string
	blockID  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Лента ресурсов",
	Long: `Показывает ресурсы сообщества, новые сверху.

Флаг --query оставляет ресурсы, в названии которых встречается строка (без учета регистра).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		listing, err := app.Resources(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("ошибка получения ленты: %w", err)
		}
		return view.PrinterFrom(cmd.Context()).Listing(listing)
	},
}

var getCmd = &cobra.Command{
	Use:   "get [recordName]",
	Short: "Просмотреть ресурс",
	Long: `Показывает ресурс со всеми блоками.

--query оставляет блоки с совпадающим содержимым, --expand раскрывает
переключатели по идентификатору блока.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := fetch(cmd, args[0])
		if err != nil {
			return err
		}
		return view.PrinterFrom(cmd.Context()).Page(page)
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy [recordName]",
	Short: "Скопировать блок в буфер обмена",
	Long: `Копирует текстовый блок или блок кода через OSC 52.
Без --block копируется первый подходящий блок.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := fetch(cmd, args[0])
		if err != nil {
			return err
		}
		b, err := view.CopyText(page, blockID)
		if err != nil {
			return err
		}
		if err := view.Copy(cmd.OutOrStdout(), b.DisplayContent); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Блок %s скопирован\n", b.ID)
		return nil
	},
}

func fetch(cmd *cobra.Command, name string) (*record.Page, error) {
	app, err := client.FromContext(cmd.Context())
	if err != nil {
		return nil, err
	}
	page, err := app.Resource(cmd.Context(), name, View(cmd, query, expanded))
	if err != nil {
		return nil, fmt.Errorf("ошибка получения ресурса: %w", err)
	}
	return page, nil
}

// View собирает параметры отображения страницы из флагов команды
func View(cmd *cobra.Command, query string, expanded []string) record.View {
	ids := make([]string, 0, len(expanded))
	for _, id := range expanded {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return record.View{
		Query:    query,
		Theme:    view.PrinterFrom(cmd.Context()).Theme(),
		Expanded: ids,
	}
}

func init() {
	listCmd.Flags().StringVarP(&query, "query", "q", "", "поиск по названию")

	getCmd.Flags().StringVarP(&query, "query", "q", "", "поиск по содержимому блоков")
	getCmd.Flags().StringSliceVar(&expanded, "expand", nil, "раскрыть переключатели (id блоков)")

	copyCmd.Flags().StringVar(&blockID, "block", "", "идентификатор блока")

	Cmd.AddCommand(listCmd, getCmd, copyCmd)
}
