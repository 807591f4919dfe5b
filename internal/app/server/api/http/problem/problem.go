// Package problem translates domain errors into HTTP errors carrying the
// messages shown to readers.
package problem

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"alcatelz/internal/domain/record"
)

// From maps err to a huma status error. notFound is the message used when the
// record does not exist, as resource and shared pages word it differently.
func From(log *slog.Logger, err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, record.ErrExpired):
		return huma.Error410Gone(record.MessageExpired)
	case errors.Is(err, record.ErrNotFound):
		return huma.Error404NotFound(notFound)
	case errors.Is(err, record.ErrInvalidData):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		if log != nil {
			log.Error("request failed", "error", err)
		}
		return huma.Error502BadGateway(record.MessageFetch)
	}
}
