package block

import (
	"fmt"

	"github.com/google/uuid"
)

// Factory - фабрика блоков для редактора публикаций
type Factory struct {
	newID func() string
}

// NewFactory создает новую фабрику
func NewFactory() *Factory {
	return &Factory{newID: func() string { return uuid.NewString() }}
}

// Create создает блок указанного типа. Пустое содержимое заменяется значением по умолчанию.
func (f *Factory) Create(typ Type, content string, order int) (Block, error) {
	kind := typ.Kind()
	if kind == KindUnsupported {
		return Block{}, fmt.Errorf("%w: %s", ErrUnsupportedTag, typ)
	}
	if content == "" {
		content = DefaultContent(kind)
	}
	return Block{
		ID:      f.newID(),
		Type:    kind.Type(),
		Content: content,
		Order:   order,
	}, nil
}

// DefaultContent возвращает содержимое нового блока по умолчанию
func DefaultContent(kind Kind) string {
	switch kind {
	case KindCode:
		return "// Enter your code here"
	case KindTodo:
		return EncodeTodo(nil)
	case KindTable:
		return "| Column | Column |\n| --- | --- |\n|  |  |"
	case KindHeaderToggle, KindNormalToggle:
		return "Toggle\n"
	default:
		return ""
	}
}

// Move переставляет блок с позиции from на позицию to и перенумеровывает порядок
func Move(blocks []Block, from, to int) ([]Block, error) {
	if from < 0 || from >= len(blocks) || to < 0 || to >= len(blocks) {
		return nil, fmt.Errorf("move %d -> %d: position out of range [0, %d)", from, to, len(blocks))
	}
	out := make([]Block, 0, len(blocks))
	moved := blocks[from]
	for i, b := range blocks {
		if i == from {
			continue
		}
		out = append(out, b)
	}
	out = append(out[:to], append([]Block{moved}, out[to:]...)...)
	return Renumber(out), nil
}

// Remove удаляет блок по идентификатору
func Remove(blocks []Block, id string) ([]Block, bool) {
	out := make([]Block, 0, len(blocks))
	found := false
	for _, b := range blocks {
		if b.ID == id {
			found = true
			continue
		}
		out = append(out, b)
	}
	return Renumber(out), found
}
