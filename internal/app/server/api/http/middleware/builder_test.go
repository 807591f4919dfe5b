package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestContainer_With(t *testing.T) {
	noop := func(ctx huma.Context, next func(huma.Context)) { next(ctx) }

	mc := NewContainer(noop)
	assert.Len(t, mc.Middlewares, 1)

	first := mc.With(noop)
	second := mc.With()

	assert.Len(t, first, 2)
	assert.Len(t, second, 1)
	assert.Len(t, mc.Middlewares, 1, "container must not grow")

	mc.Add(noop)
	assert.Len(t, mc.With(), 2)
}
