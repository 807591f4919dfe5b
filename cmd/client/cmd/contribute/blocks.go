package contribute

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"alcatelz/internal/app/client"
	"alcatelz/internal/app/client/view"
	"alcatelz/internal/domain/record"
)

var moveCmd = &cobra.Command{
	Use:   "move [draftID] [from] [to]",
	Short: "Переставить блок",
	Long:  `Переносит блок с позиции from на позицию to (с нуля) и перенумеровывает порядок.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		from, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("неверная позиция: %w", err)
		}
		to, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("неверная позиция: %w", err)
		}
		d, err := app.MoveBlock(args[0], from, to)
		if err != nil {
			return fmt.Errorf("ошибка перестановки блока: %w", err)
		}
		return view.PrinterFrom(cmd.Context()).Draft(d)
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove [draftID] [blockID]",
	Short: "Удалить блок",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		d, err := app.RemoveBlock(args[0], args[1])
		if err != nil {
			return fmt.Errorf("ошибка удаления блока: %w", err)
		}
		return view.PrinterFrom(cmd.Context()).Draft(d)
	},
}

var publishAll bool

var publishCmd = &cobra.Command{
	Use:   "publish [draftID]",
	Short: "Опубликовать черновик",
	Long: `Отправляет черновик на сервер. С --all публикуются все черновики,
которые еще не отправлялись; ошибка одного не останавливает остальные.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if publishAll {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		p := view.PrinterFrom(cmd.Context())

		if publishAll {
			result, err := app.PublishPending(cmd.Context())
			if err != nil {
				return fmt.Errorf("ошибка публикации: %w", err)
			}
			if err := p.PublishResult(result); err != nil {
				return err
			}
			if !result.Success() {
				return fmt.Errorf("не опубликовано черновиков: %d", len(result.Errors))
			}
			return nil
		}

		name, err := app.Publish(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return p.PublishResult(&client.PublishResult{
			Published: []client.Published{{DraftID: args[0], RecordName: name}},
		})
	},
}

func pageView(p *view.Printer) record.View {
	return record.View{Query: query, Theme: p.Theme(), Expanded: expanded}
}

func init() {
	publishCmd.Flags().BoolVar(&publishAll, "all", false, "опубликовать все неотправленные черновики")
}
