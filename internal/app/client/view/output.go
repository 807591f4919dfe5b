package view

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"alcatelz/internal/app/client"
	"alcatelz/internal/domain/block"
	"alcatelz/internal/domain/record"
)

// Format - формат вывода команд
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
)

func Formats() []string {
	return []string{string(FormatHuman), string(FormatJSON), string(FormatYAML), string(FormatTable), string(FormatCSV)}
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", "simple":
		return FormatHuman, nil
	case FormatHuman, FormatJSON, FormatYAML, FormatTable, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("неизвестный формат вывода %q (доступны: %s)", s, strings.Join(Formats(), ", "))
}

// Printer выводит результаты команд в выбранном формате
type Printer struct {
	w      io.Writer
	format Format
	styles Styles
}

func NewPrinter(w io.Writer, format Format, styles Styles) *Printer {
	return &Printer{w: w, format: format, styles: styles}
}

func (p *Printer) Listing(l *record.Listing) error {
	switch p.format {
	case FormatHuman:
		return p.text(p.styles.Listing(l))
	case FormatTable:
		return p.itemsTable(l.Resources)
	case FormatCSV:
		return p.itemsCSV(l.Resources)
	}
	return p.encode(l)
}

func (p *Printer) CategoryPage(c *record.CategoryPage) error {
	switch p.format {
	case FormatHuman:
		return p.text(p.styles.CategoryPage(c))
	case FormatTable:
		return p.itemsTable(c.Resources)
	case FormatCSV:
		return p.itemsCSV(c.Resources)
	}
	return p.encode(c)
}

func (p *Printer) Categories(cats []record.Category) error {
	header := []string{"Name", "Count", "Description"}
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{c.Name, strconv.Itoa(c.Count), c.Description})
	}
	switch p.format {
	case FormatHuman:
		return p.text(p.styles.Categories(cats))
	case FormatTable:
		return p.table(header, rows)
	case FormatCSV:
		return p.csv(header, rows)
	}
	return p.encode(map[string]any{"categories": cats})
}

func (p *Printer) Page(page *record.Page) error {
	header := []string{"ID", "Kind", "Content"}
	rows := make([][]string, 0, len(page.Blocks))
	for _, b := range page.Blocks {
		rows = append(rows, []string{b.ID, b.Kind, b.DisplayContent})
	}
	switch p.format {
	case FormatHuman:
		return p.text(p.styles.Page(page))
	case FormatTable:
		for _, r := range rows {
			r[2] = truncate(strings.ReplaceAll(r[2], "\n", " "), 50)
		}
		return p.table(header, rows)
	case FormatCSV:
		return p.csv(header, rows)
	}
	return p.encode(page)
}

func (p *Printer) Drafts(drafts []*client.Draft) error {
	header := []string{"ID", "Title", "Category", "Blocks", "Published", "Updated"}
	rows := make([][]string, 0, len(drafts))
	for _, d := range drafts {
		rows = append(rows, []string{
			d.ID, d.Title, d.CategoryName, strconv.Itoa(len(d.Blocks)),
			d.PublishedAs, d.UpdatedAt.Format(time.RFC3339),
		})
	}
	switch p.format {
	case FormatHuman:
		return p.text(p.styles.Drafts(drafts))
	case FormatTable:
		return p.table(header, rows)
	case FormatCSV:
		return p.csv(header, rows)
	}
	if drafts == nil {
		drafts = []*client.Draft{}
	}
	return p.encode(drafts)
}

func (p *Printer) Draft(d *client.Draft) error {
	if p.format == FormatHuman || p.format == FormatTable {
		return p.text(p.styles.Draft(d))
	}
	if p.format == FormatCSV {
		rows := make([][]string, 0, len(d.Blocks))
		for _, b := range d.Blocks {
			rows = append(rows, []string{b.ID, string(b.Type), strconv.Itoa(b.Order), b.Content})
		}
		return p.csv([]string{"ID", "Type", "Order", "Content"}, rows)
	}
	return p.encode(d)
}

func (p *Printer) PublishResult(r *client.PublishResult) error {
	if p.format == FormatJSON || p.format == FormatYAML {
		return p.encode(r)
	}
	return p.text(p.styles.PublishResult(r))
}

// Message выводит короткое сообщение только в человекочитаемом режиме
func (p *Printer) Message(format string, args ...any) {
	if p.format == FormatHuman {
		fmt.Fprintf(p.w, format+"\n", args...)
	}
}

func (p *Printer) text(s string) error {
	_, err := io.WriteString(p.w, s)
	return err
}

func (p *Printer) encode(v any) error {
	if p.format == FormatYAML {
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("ошибка кодирования YAML: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) itemsTable(items []record.ResourceItem) error {
	return p.table(itemHeader, itemRows(items))
}

func (p *Printer) itemsCSV(items []record.ResourceItem) error {
	return p.csv(itemHeader, itemRows(items))
}

var itemHeader = []string{"RecordName", "Title", "Author", "Category", "Created"}

func itemRows(items []record.ResourceItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		created := ""
		if !it.CreatedAt.IsZero() {
			created = it.CreatedAt.Format("2006-01-02")
		}
		rows = append(rows, []string{it.RecordName, it.Title, it.Author, it.CategoryName, created})
	}
	return rows
}

func (p *Printer) table(header []string, rows [][]string) error {
	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	return w.Flush()
}

func (p *Printer) csv(header []string, rows [][]string) error {
	w := csv.NewWriter(p.w)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("ошибка записи CSV: %w", err)
	}
	return nil
}

// Theme тема, с которой запрашиваются страницы
func (p *Printer) Theme() block.Theme {
	return p.styles.Theme
}

// Writer поток, в который пишет принтер
func (p *Printer) Writer() io.Writer {
	return p.w
}

type printerKey struct{}

func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, printerKey{}, p)
}

// PrinterFrom возвращает принтер команды или человекочитаемый вывод в stdout
func PrinterFrom(ctx context.Context) *Printer {
	if p, ok := ctx.Value(printerKey{}).(*Printer); ok && p != nil {
		return p
	}
	return NewPrinter(os.Stdout, FormatHuman, NewStyles(block.ThemeLight, defaultWidth))
}
