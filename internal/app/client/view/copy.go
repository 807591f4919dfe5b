package view

import (
	"fmt"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"

	"alcatelz/internal/domain/block"
	"alcatelz/internal/domain/record"
)

// CopyText возвращает текст блока, который разрешено копировать.
// Пустой id выбирает первый копируемый блок страницы.
func CopyText(p *record.Page, id string) (block.Payload, error) {
	for _, b := range p.Blocks {
		if id != "" && b.ID != id {
			continue
		}
		if b.Aux != nil && b.Aux.Copyable {
			return b, nil
		}
		if id != "" {
			return block.Payload{}, fmt.Errorf("блок %s (%s) нельзя скопировать", b.ID, b.Kind)
		}
	}
	if id != "" {
		return block.Payload{}, fmt.Errorf("блок %s не найден", id)
	}
	return block.Payload{}, fmt.Errorf("на странице нет копируемых блоков")
}

// Copy кладет текст в буфер обмена терминала через OSC 52
func Copy(w io.Writer, text string) error {
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if os.Getenv("STY") != "" {
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(w); err != nil {
		return fmt.Errorf("ошибка копирования: %w", err)
	}
	return nil
}
