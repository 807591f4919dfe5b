package block

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/exp/slog"
)

// Strategy turns raw record content into blocks, or reports why it cannot.
// Implementations must not panic and must not mutate their input.
type Strategy interface {
	Name() string
	Decode(content string) ([]Block, error)
}

// DefaultStrategies is the order content encodings are tried in.
func DefaultStrategies() []Strategy {
	return []Strategy{Base64JSON{}, JSONArray{}, LegacyText{}}
}

// Attempt records the outcome of one strategy.
type Attempt struct {
	Strategy string
	Err      error
}

// Report describes how content was decoded.
type Report struct {
	Strategy string
	Attempts []Attempt
}

// Decoded reports whether any strategy produced the result.
func (r Report) Decoded() bool {
	return r.Strategy != ""
}

// Decoder runs strategies in order until one succeeds.
type Decoder struct {
	strategies []Strategy
	log        *slog.Logger
}

// NewDecoder creates a decoder. With no strategies the default chain is used.
func NewDecoder(log *slog.Logger, strategies ...Strategy) *Decoder {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Decoder{
		strategies: strategies,
		log:        log.With("component", "block_decoder"),
	}
}

// Decode returns the ordered blocks of content. It never fails: content that no
// strategy accepts yields an empty sequence and a diagnostic log entry.
func (d *Decoder) Decode(content string) []Block {
	blocks, _ := d.DecodeWithReport(content)
	return blocks
}

// DecodeWithReport is Decode plus the per-strategy outcome.
func (d *Decoder) DecodeWithReport(content string) ([]Block, Report) {
	var report Report
	trimmed := strings.TrimSpace(content)
	if trimmed == "" || trimmed == "[]" {
		return []Block{}, report
	}

	for _, s := range d.strategies {
		blocks, err := d.attempt(s, content)
		if err != nil {
			report.Attempts = append(report.Attempts, Attempt{Strategy: s.Name(), Err: err})
			d.log.Debug("decode strategy rejected content", "strategy", s.Name(), "error", err)
			continue
		}
		report.Strategy = s.Name()
		report.Attempts = append(report.Attempts, Attempt{Strategy: s.Name()})
		return blocks, report
	}

	d.log.Warn("failed to decode content",
		"error", ErrUndecodable,
		"length", len(content),
		"attempts", len(report.Attempts),
	)
	return []Block{}, report
}

func (d *Decoder) attempt(s Strategy, content string) (blocks []Block, err error) {
	defer func() {
		if r := recover(); r != nil {
			blocks = nil
			err = fmt.Errorf("strategy %s panicked: %v", s.Name(), r)
		}
	}()
	return s.Decode(content)
}

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// Base64JSON accepts a base64 wrapped JSON array of blocks.
type Base64JSON struct{}

func (Base64JSON) Name() string { return "base64-json" }

func (Base64JSON) Decode(content string) ([]Block, error) {
	trimmed := strings.TrimSpace(content)
	if !base64Pattern.MatchString(trimmed) {
		return nil, ErrNotBase64
	}
	raw, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(trimmed, "="))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotBase64, err)
		}
	}
	return decodeBlockArray(raw)
}

// JSONArray accepts a JSON array of blocks, the current format.
type JSONArray struct{}

func (JSONArray) Name() string { return "json" }

func (JSONArray) Decode(content string) ([]Block, error) {
	return decodeBlockArray([]byte(content))
}

func decodeBlockArray(data []byte) ([]Block, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, ErrNotBlockArray
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotBlockArray, err)
	}

	type keyed struct {
		block Block
		key   float64
	}
	items := make([]keyed, 0, len(elems))
	for i, raw := range elems {
		w, err := decodeWireBlock(raw)
		if err != nil {
			slog.Default().Warn("skipping malformed block",
				"component", "block_decoder", "index", i, "error", err)
			continue
		}
		key := float64(i)
		if w.Order.valid {
			key = w.Order.value
		}
		items = append(items, keyed{
			block: Block{
				ID:      string(w.ID),
				Type:    Type(w.Type),
				Content: contentString(w.Content),
				Order:   int(key),
			},
			key: key,
		})
	}
	if len(items) == 0 && len(elems) > 0 {
		return nil, fmt.Errorf("%w: no element is a block", ErrNotBlockArray)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key < items[j].key
	})

	blocks := make([]Block, len(items))
	for i, it := range items {
		blocks[i] = it.block
	}
	normalizeIDs(blocks)
	return blocks, nil
}

func decodeWireBlock(raw json.RawMessage) (wireBlock, error) {
	var w wireBlock
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return w, ErrNotBlockObject
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return w, fmt.Errorf("%w: %v", ErrNotBlockObject, err)
	}
	return w, nil
}
