package view

import (
	"fmt"
	"strings"

	"alcatelz/internal/app/client"
	"alcatelz/internal/domain/record"
)

// Listing рисует ленту сообщества
func (s Styles) Listing(l *record.Listing) string {
	var b strings.Builder

	if len(l.Trending) > 0 {
		b.WriteString(s.Title.Render("Trending"))
		b.WriteString("\n")
		for _, it := range l.Trending {
			b.WriteString("  ★ " + it.Title + " " + s.Muted.Render("("+it.RecordName+")"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(s.Title.Render(fmt.Sprintf("Resources (%d)", l.Total)))
	b.WriteString("\n")
	if l.Message != "" {
		b.WriteString(s.Warning.Render(l.Message))
		b.WriteString("\n")
	}
	s.items(&b, l.Resources)

	if len(l.Categories) > 0 {
		b.WriteString("\n")
		b.WriteString(s.Categories(l.Categories))
	}
	return b.String()
}

// CategoryPage рисует ресурсы одной категории
func (s Styles) CategoryPage(p *record.CategoryPage) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(p.Category.Name))
	b.WriteString("\n")
	if p.Category.Description != "" {
		b.WriteString(s.Subtitle.Render(p.Category.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if p.Message != "" {
		b.WriteString(s.Warning.Render(p.Message))
		b.WriteString("\n")
	}
	s.items(&b, p.Resources)
	return b.String()
}

func (s Styles) Categories(cats []record.Category) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Categories"))
	b.WriteString("\n")
	for _, c := range cats {
		line := fmt.Sprintf("  %s %s", c.Name, s.Muted.Render(fmt.Sprintf("(%d)", c.Count)))
		if c.Description != "" {
			line += " " + s.Subtitle.Render(c.Description)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (s Styles) items(b *strings.Builder, items []record.ResourceItem) {
	for i, it := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, s.Heading3.Render(it.Title))
		meta := []string{it.Author, it.CategoryName}
		if !it.CreatedAt.IsZero() {
			meta = append(meta, it.CreatedAt.Format("2006-01-02"))
		}
		b.WriteString("   " + s.Muted.Render(strings.Join(nonEmpty(meta), " · ")+" | "+it.RecordName))
		b.WriteString("\n")
		if it.Summary != "" {
			b.WriteString("   " + s.Body.Render(it.Summary))
			b.WriteString("\n")
		}
	}
}

// Drafts рисует список локальных черновиков
func (s Styles) Drafts(drafts []*client.Draft) string {
	if len(drafts) == 0 {
		return s.Muted.Render("Черновики не найдены") + "\n"
	}
	var b strings.Builder
	for _, d := range drafts {
		status := s.Warning.Render("черновик")
		if d.Published() {
			status = s.Done.UnsetStrikethrough().Render("опубликован: " + d.PublishedAs)
		}
		fmt.Fprintf(&b, "%s  %s  [%s]\n", d.ID, s.Heading3.Render(orUntitled(d.Title)), status)
		fmt.Fprintf(&b, "   %s\n", s.Muted.Render(fmt.Sprintf("%s · %d blocks · %s",
			d.CategoryName, len(d.Blocks), d.UpdatedAt.Format("2006-01-02 15:04"))))
	}
	return b.String()
}

// Draft рисует черновик со списком блоков для редактора
func (s Styles) Draft(d *client.Draft) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(orUntitled(d.Title)))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render(d.ID + " · " + d.CategoryName))
	b.WriteString("\n\n")
	for i, blk := range d.Blocks {
		content := strings.ReplaceAll(blk.Content, "\n", " ")
		fmt.Fprintf(&b, "%2d. %-12s %s  %s\n", i, blk.Type, s.Muted.Render(blk.ID), truncate(content, 40))
	}
	return b.String()
}

// PublishResult рисует итог публикации
func (s Styles) PublishResult(r *client.PublishResult) string {
	var b strings.Builder
	for _, p := range r.Published {
		fmt.Fprintf(&b, "✓ %s → %s\n", p.DraftID, p.RecordName)
	}
	for _, e := range r.Errors {
		b.WriteString(s.Error.Render(fmt.Sprintf("✗ %s: %s", e.DraftID, e.Error)))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Опубликовано: %d, пропущено: %d, ошибок: %d\n",
		len(r.Published), r.Skipped, len(r.Errors))
	return b.String()
}

func orUntitled(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Untitled"
	}
	return title
}

func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length-3]) + "..."
}
