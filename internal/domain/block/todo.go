package block

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TodoItem is one checkable entry of a To-Do block.
type TodoItem struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
}

type wireTodo struct {
	ID          flexString `json:"id"`
	Text        flexString `json:"text"`
	IsCompleted bool       `json:"isCompleted"`
}

// ParseTodo interprets To-Do content. It tries a JSON array of items, then a
// JSON array of strings, then newline separated text. Content that yields
// nothing becomes a single literal item. It never fails.
func ParseTodo(content string) []TodoItem {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return []TodoItem{}
	}

	if items, ok := todoObjects(trimmed); ok {
		return items
	}
	if items, ok := todoStrings(trimmed); ok {
		return items
	}
	if json.Valid([]byte(trimmed)) && !strings.HasPrefix(trimmed, "[") {
		return []TodoItem{{ID: "todo-0", Text: trimmed}}
	}
	if items := todoLines(content); len(items) > 0 {
		return items
	}
	return []TodoItem{{ID: "todo-0", Text: content}}
}

func todoObjects(s string) ([]TodoItem, bool) {
	if !strings.HasPrefix(s, "[") {
		return nil, false
	}
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil || len(raw) == 0 {
		return nil, false
	}
	items := make([]TodoItem, 0, len(raw))
	for i, r := range raw {
		var w wireTodo
		if len(r) == 0 || r[0] != '{' {
			return nil, false
		}
		if err := json.Unmarshal(r, &w); err != nil {
			return nil, false
		}
		id := string(w.ID)
		if id == "" {
			id = "todo-" + strconv.Itoa(i)
		}
		items = append(items, TodoItem{ID: id, Text: string(w.Text), IsCompleted: w.IsCompleted})
	}
	return items, true
}

func todoStrings(s string) ([]TodoItem, bool) {
	if !strings.HasPrefix(s, "[") {
		return nil, false
	}
	var texts []string
	if err := json.Unmarshal([]byte(s), &texts); err != nil {
		return nil, false
	}
	items := make([]TodoItem, 0, len(texts))
	for i, t := range texts {
		items = append(items, TodoItem{ID: "todo-" + strconv.Itoa(i), Text: t})
	}
	return items, true
}

var checkboxPrefixes = []struct {
	prefix string
	done   bool
}{
	{"- [x]", true},
	{"- [X]", true},
	{"- [ ]", false},
	{"[x]", true},
	{"[X]", true},
	{"[ ]", false},
}

func todoLines(content string) []TodoItem {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	items := make([]TodoItem, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		done := false
		for _, p := range checkboxPrefixes {
			if strings.HasPrefix(line, p.prefix) {
				done = p.done
				line = strings.TrimSpace(line[len(p.prefix):])
				break
			}
		}
		items = append(items, TodoItem{
			ID:          "todo-" + strconv.Itoa(len(items)),
			Text:        line,
			IsCompleted: done,
		})
	}
	return items
}

// EncodeTodo serializes items in the JSON array of objects form.
func EncodeTodo(items []TodoItem) string {
	if items == nil {
		items = []TodoItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}
