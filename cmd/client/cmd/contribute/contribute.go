package contribute

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"alcatelz/internal/app/client"
	"alcatelz/internal/app/client/view"
	"alcatelz/internal/domain/block"
)

// Cmd - редактор черновиков и публикация
var Cmd = &cobra.Command{
	Use:     "contribute",
	Aliases: []string{"draft"},
	Short:   "Подготовить и опубликовать ресурс",
	Long: `Черновики хранятся локально. Блоки добавляются, переставляются и
удаляются по одному, preview показывает страницу так, как ее отрисует сервер.`,
}

var (
	title    string
	category string
	author   string
	content  string
	fromFile string
	query    string
	expanded []string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Создать черновик",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		d, err := app.NewDraft(title, category, author)
		if err != nil {
			return fmt.Errorf("ошибка создания черновика: %w", err)
		}
		p := view.PrinterFrom(cmd.Context())
		p.Message("✓ Черновик создан: %s", d.ID)
		return p.Draft(d)
	},
}

var addCmd = &cobra.Command{
	Use:   "add [draftID] [type]",
	Short: "Добавить блок",
	Long: `Добавляет блок в конец черновика. Тип сравнивается без учета регистра:
` + kindList() + `

Содержимое берется из --content, --file (- для stdin) или значения по умолчанию.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		text, err := readContent(cmd)
		if err != nil {
			return err
		}
		d, b, err := app.AddBlock(args[0], block.Type(args[1]), text)
		if err != nil {
			return fmt.Errorf("ошибка добавления блока: %w", err)
		}
		p := view.PrinterFrom(cmd.Context())
		p.Message("✓ Блок %s добавлен", b.ID)
		return p.Draft(d)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [draftID] [blockID]",
	Short: "Заменить содержимое блока",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		text, err := readContent(cmd)
		if err != nil {
			return err
		}
		d, err := app.UpdateBlock(args[0], args[1], text)
		if err != nil {
			return fmt.Errorf("ошибка изменения блока: %w", err)
		}
		return view.PrinterFrom(cmd.Context()).Draft(d)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Список черновиков",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		drafts, err := app.Drafts()
		if err != nil {
			return fmt.Errorf("ошибка получения черновиков: %w", err)
		}
		return view.PrinterFrom(cmd.Context()).Drafts(drafts)
	},
}

var showCmd = &cobra.Command{
	Use:   "show [draftID]",
	Short: "Показать блоки черновика",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		d, err := app.Draft(args[0])
		if err != nil {
			return err
		}
		return view.PrinterFrom(cmd.Context()).Draft(d)
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview [draftID]",
	Short: "Отрисовать черновик",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		p := view.PrinterFrom(cmd.Context())
		page, err := app.Preview(args[0], pageView(p))
		if err != nil {
			return err
		}
		return p.Page(page)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [draftID]",
	Short: "Удалить черновик",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.DeleteDraft(args[0]); err != nil {
			return err
		}
		view.PrinterFrom(cmd.Context()).Message("✓ Черновик %s удален", args[0])
		return nil
	},
}

func readContent(cmd *cobra.Command) (string, error) {
	if fromFile == "" {
		return content, nil
	}
	var (
		data []byte
		err  error
	)
	if fromFile == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(fromFile)
	}
	if err != nil {
		return "", fmt.Errorf("ошибка чтения содержимого: %w", err)
	}
	return string(data), nil
}

func kindList() string {
	names := make([]string, 0, len(block.Kinds()))
	for _, k := range block.Kinds() {
		names = append(names, string(k.Type()))
	}
	return strings.Join(names, ", ")
}

func init() {
	newCmd.Flags().StringVarP(&title, "title", "t", "", "название ресурса")
	newCmd.Flags().StringVarP(&category, "category", "c", "", "категория")
	newCmd.Flags().StringVar(&author, "author", "", "автор")

	for _, c := range []*cobra.Command{addCmd, editCmd} {
		c.Flags().StringVar(&content, "content", "", "содержимое блока")
		c.Flags().StringVarP(&fromFile, "file", "f", "", "прочитать содержимое из файла (- для stdin)")
		c.MarkFlagsMutuallyExclusive("content", "file")
	}

	previewCmd.Flags().StringVarP(&query, "query", "q", "", "поиск по содержимому блоков")
	previewCmd.Flags().StringSliceVar(&expanded, "expand", nil, "раскрыть переключатели (id блоков)")

	Cmd.AddCommand(newCmd, addCmd, editCmd, moveCmd, removeCmd, listCmd, showCmd, previewCmd, deleteCmd, publishCmd)
}
