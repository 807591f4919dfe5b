package block

import (
	"encoding/json"
	"fmt"

	"alcatelz/internal/domain/search"
)

// Encode serializes blocks as a JSON array of {id, type, content, order},
// the only format written.
func Encode(blocks []Block) (string, error) {
	if blocks == nil {
		blocks = []Block{}
	}
	data, err := json.Marshal(blocks)
	if err != nil {
		return "", fmt.Errorf("encode blocks: %w", err)
	}
	return string(data), nil
}

// Renumber returns a copy of blocks whose order equals their position.
func Renumber(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		b.Order = i
		out[i] = b
	}
	return out
}

// Search keeps the blocks whose content contains query, ignoring case.
func Search(blocks []Block, query string) []Block {
	return search.Filter(blocks, query, func(b Block) string { return b.Content })
}
