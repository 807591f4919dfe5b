package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_Create(t *testing.T) {
	f := NewFactory()

	code, err := f.Create("code", "", 0)
	require.NoError(t, err)
	assert.Equal(t, TypeCode, code.Type)
	assert.Equal(t, "// Enter your code here", code.Content)
	assert.NotEmpty(t, code.ID)

	text, err := f.Create(TypeText, "hello", 1)
	require.NoError(t, err)
	assert.Equal(t, "hello", text.Content)
	assert.Equal(t, 1, text.Order)
	assert.NotEqual(t, code.ID, text.ID)

	_, err = f.Create("Widget", "x", 2)
	assert.ErrorIs(t, err, ErrUnsupportedTag)
}

func TestMoveAndRemove(t *testing.T) {
	blocks := []Block{
		{ID: "a", Type: TypeText, Order: 0},
		{ID: "b", Type: TypeText, Order: 1},
		{ID: "c", Type: TypeText, Order: 2},
	}

	moved, err := Move(blocks, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, ids(moved))
	for i, b := range moved {
		assert.Equal(t, i, b.Order)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids(blocks))

	moved, err = Move(blocks, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, ids(moved))

	_, err = Move(blocks, 0, 3)
	assert.Error(t, err)

	left, ok := Remove(blocks, "b")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, ids(left))
	assert.Equal(t, 1, left[1].Order)

	_, ok = Remove(blocks, "zzz")
	assert.False(t, ok)
}

func TestSearchAndEncode(t *testing.T) {
	blocks := []Block{
		{ID: "1", Type: TypeText, Content: "Intro to Go", Order: 0},
		{ID: "2", Type: TypeCode, Content: "fmt.Println()", Order: 1},
		{ID: "3", Type: TypeText, Content: "more GO", Order: 2},
	}

	assert.Equal(t, []string{"1", "3"}, ids(Search(blocks, "go")))
	assert.Equal(t, blocks, Search(blocks, "  "))
	assert.Empty(t, Search(blocks, "rust"))

	encoded, err := Encode(Renumber(blocks[1:]))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"2","type":"Code","content":"fmt.Println()","order":0},{"id":"3","type":"Text","content":"more GO","order":1}]`, encoded)

	empty, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)
}

func TestType_Kind(t *testing.T) {
	assert.Equal(t, KindTodo, Type("todo").Kind())
	assert.Equal(t, KindTodo, Type("TO-DO").Kind())
	assert.Equal(t, KindUnsupported, Type("").Kind())
	assert.Equal(t, TypeHeader2, Type("HEADER2").Canonical())
	assert.Equal(t, Type("odd"), Type("odd").Canonical())
	assert.False(t, Type("odd").Supported())
	assert.Len(t, Kinds(), 18)
}
