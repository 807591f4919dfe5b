package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"alcatelz/internal/domain/record"
)

// PublishService отправляет локальные черновики на сервер
type PublishService struct {
	app *App
	log *slog.Logger
}

// PublishError ошибка публикации одного черновика
type PublishError struct {
	DraftID   string    `json:"draftId" yaml:"draftId"`
	Error     string    `json:"error" yaml:"error"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Published опубликованный черновик
type Published struct {
	DraftID    string `json:"draftId" yaml:"draftId"`
	RecordName string `json:"recordName" yaml:"recordName"`
}

// PublishResult результат публикации
type PublishResult struct {
	Published []Published    `json:"published" yaml:"published"`
	Skipped   int            `json:"skipped" yaml:"skipped"`
	Errors    []PublishError `json:"errors,omitempty" yaml:"errors,omitempty"`
	Duration  time.Duration  `json:"duration" yaml:"duration"`
}

func (r *PublishResult) Success() bool {
	return len(r.Errors) == 0
}

func NewPublishService(app *App) *PublishService {
	return &PublishService{
		app: app,
		log: app.log.With("component", "publisher"),
	}
}

// PublishPending публикует черновики, которые еще не отправлялись.
// Ошибка одного черновика не останавливает остальные.
func (s *PublishService) PublishPending(ctx context.Context) (*PublishResult, error) {
	start := s.app.now()
	drafts, err := s.app.drafts.List()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения черновиков: %w", err)
	}

	result := &PublishResult{}
	for _, d := range drafts {
		if d.Published() {
			result.Skipped++
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		name, err := s.publish(ctx, d)
		if err != nil {
			result.Errors = append(result.Errors, PublishError{
				DraftID:   d.ID,
				Error:     err.Error(),
				Timestamp: s.app.now(),
			})
			continue
		}
		result.Published = append(result.Published, Published{DraftID: d.ID, RecordName: name})
	}
	result.Duration = s.app.now().Sub(start)

	s.log.Info("Публикация завершена",
		"published", len(result.Published),
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	return result, nil
}

func (s *PublishService) publish(ctx context.Context, d *Draft) (string, error) {
	if d.Published() {
		return "", fmt.Errorf("черновик %s уже опубликован как %s", d.ID, d.PublishedAs)
	}

	req := d.Request()
	// Проверяем локально, чтобы не гонять заведомо плохой запрос
	if err := s.app.records.Validate(req); err != nil {
		return "", err
	}

	name, err := s.app.api.Publish(ctx, req)
	if err != nil {
		if errors.Is(err, record.ErrInvalidData) {
			return "", fmt.Errorf("сервер отклонил черновик: %w", err)
		}
		return "", fmt.Errorf("ошибка публикации: %w", err)
	}

	d.PublishedAs = name
	d.UpdatedAt = s.app.now().UTC()
	if err := s.app.drafts.Save(d); err != nil {
		s.log.Warn("Не удалось отметить черновик опубликованным", "draft_id", d.ID, "error", err)
	}
	s.log.Debug("Черновик опубликован", "draft_id", d.ID, "record_name", name)
	return name, nil
}
