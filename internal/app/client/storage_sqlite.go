package client

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"alcatelz/internal/domain/block"
)

// SQLiteStorage хранит черновики в локальном файле.
// Блоки лежат в колонке content в том же формате, что и на сервере.
type SQLiteStorage struct {
	db      *sql.DB
	decoder *block.Decoder
}

func NewSQLiteStorage(path string, log *slog.Logger) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	storage := &SQLiteStorage{db: db, decoder: block.NewDecoder(log)}

	// Создаем таблицы
	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS drafts (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT '',
			category_name TEXT NOT NULL DEFAULT '',
			created_by TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '[]',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL,
			published_as TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_drafts_updated ON drafts(updated_at);
	`)

	return err
}

func (s *SQLiteStorage) Save(d *Draft) error {
	content, err := block.Encode(d.Blocks)
	if err != nil {
		return fmt.Errorf("ошибка сериализации блоков: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO drafts (id, title, author, summary, category_name, created_by,
		                    content, created_at, updated_at, published_as)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			summary = excluded.summary,
			category_name = excluded.category_name,
			created_by = excluded.created_by,
			content = excluded.content,
			updated_at = excluded.updated_at,
			published_as = excluded.published_as
	`, d.ID, d.Title, d.Author, d.Summary, d.CategoryName, d.CreatedBy,
		content, d.CreatedAt.UnixNano(), d.UpdatedAt.UnixNano(), d.PublishedAs)
	if err != nil {
		return fmt.Errorf("ошибка сохранения черновика: %w", err)
	}

	return nil
}

const selectDraft = `SELECT id, title, author, summary, category_name, created_by,
	content, created_at, updated_at, published_as FROM drafts`

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *SQLiteStorage) scan(row rowScanner) (*Draft, error) {
	var (
		d                    Draft
		content              string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&d.ID, &d.Title, &d.Author, &d.Summary, &d.CategoryName,
		&d.CreatedBy, &content, &createdAt, &updatedAt, &d.PublishedAs); err != nil {
		return nil, err
	}
	d.Blocks = s.decoder.Decode(content)
	d.CreatedAt = time.Unix(0, createdAt).UTC()
	d.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return &d, nil
}

func (s *SQLiteStorage) Get(id string) (*Draft, error) {
	d, err := s.scan(s.db.QueryRow(selectDraft+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка получения черновика: %w", err)
	}
	return d, nil
}

func (s *SQLiteStorage) List() ([]*Draft, error) {
	rows, err := s.db.Query(selectDraft + " ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer rows.Close()

	var drafts []*Draft
	for rows.Next() {
		d, err := s.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования черновика: %w", err)
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

func (s *SQLiteStorage) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM drafts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления черновика: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrDraftNotFound
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
