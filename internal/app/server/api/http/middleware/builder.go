package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container собирает мидлвари для группы операций
type Container struct {
	huma.Middlewares
}

// NewContainer создает контейнер, в который сразу добавлены общие мидлвари
func NewContainer(common ...func(huma.Context, func(huma.Context))) *Container {
	mc := &Container{Middlewares: make(huma.Middlewares, 0, len(common))}
	for _, m := range common {
		mc.Add(m)
	}
	return mc
}

// Add добавляет одну мидлварь в контейнер
func (mc *Container) Add(middleware func(ctx huma.Context, next func(huma.Context))) {
	mc.Middlewares = append(mc.Middlewares, middleware)
}

// With возвращает копию общих мидлварей с добавленными.
// Сам контейнер не меняется, поэтому его можно переиспользовать для всех групп.
func (mc *Container) With(extra ...func(huma.Context, func(huma.Context))) huma.Middlewares {
	out := make(huma.Middlewares, 0, len(mc.Middlewares)+len(extra))
	out = append(out, mc.Middlewares...)
	for _, m := range extra {
		out = append(out, m)
	}
	return out
}
