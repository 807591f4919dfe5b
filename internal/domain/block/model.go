package block

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Block is one typed, ordered unit of a record's content.
type Block struct {
	ID      string `json:"id" required:"false"`
	Type    Type   `json:"type"`
	Content string `json:"content" required:"false"`
	Order   int    `json:"order" required:"false"`
}

// Kind resolves the block's tag.
func (b Block) Kind() Kind {
	return b.Type.Kind()
}

// wireBlock is the persisted shape, decoded leniently.
type wireBlock struct {
	ID      flexString      `json:"id"`
	Type    flexString      `json:"type"`
	Content json.RawMessage `json:"content"`
	Order   flexOrder       `json:"order"`
}

// flexOrder accepts numbers and numeric strings. Anything else is treated as
// absent, so the block keeps its position in the array.
type flexOrder struct {
	value float64
	valid bool
}

func (o *flexOrder) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*o = flexOrder{}
	if len(data) == 0 {
		return nil
	}
	text := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
		text = strings.TrimSpace(text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*o = flexOrder{value: v, valid: true}
	return nil
}

// flexString accepts strings, numbers and booleans; null leaves it empty.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}

// contentString returns string content as-is and any other JSON value as its text.
func contentString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// normalizeIDs fills missing ids and disambiguates duplicates in place.
// Generated ids depend only on position, so they are stable across decodes.
func normalizeIDs(blocks []Block) {
	seen := make(map[string]struct{}, len(blocks))
	for i := range blocks {
		id := blocks[i].ID
		if id == "" {
			id = "block-" + strconv.Itoa(i)
		}
		for {
			if _, dup := seen[id]; !dup {
				break
			}
			id = id + "-" + strconv.Itoa(i)
		}
		seen[id] = struct{}{}
		blocks[i].ID = id
	}
}
