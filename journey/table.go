package journey

import "fmt"

// Table is a one-row-per-observation binary-indicator dataset: each row
// flags which channels touched that observation, plus its outcome. It is
// the tabular companion to Dataset for callers whose upstream pipeline
// aggregates touches without preserving order.
type Table struct {
	channels []string
	rows     [][]bool
	outcomes []bool
}

// NewTable validates and copies a binary-indicator table.
//
// Contracts:
//   - channels must be non-empty strings without duplicates.
//   - every row must have exactly len(channels) indicator cells.
//   - len(outcomes) must equal len(rows).
//
// Complexity: O(rows × channels).
func NewTable(channels []string, rows [][]bool, outcomes []bool) (*Table, error) {
	seen := make(map[string]struct{}, len(channels))
	for _, ch := range channels {
		if ch == "" {
			return nil, ErrEmptyChannel
		}
		if _, dup := seen[ch]; dup {
			return nil, fmt.Errorf("table channel %q: %w", ch, ErrDuplicateChannel)
		}
		seen[ch] = struct{}{}
	}
	if len(outcomes) != len(rows) {
		return nil, fmt.Errorf("%d rows vs %d outcomes: %w", len(rows), len(outcomes), ErrTableShape)
	}

	t := &Table{
		channels: append([]string(nil), channels...),
		rows:     make([][]bool, len(rows)),
		outcomes: append([]bool(nil), outcomes...),
	}
	for i, row := range rows {
		if len(row) != len(channels) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), len(channels), ErrTableShape)
		}
		t.rows[i] = append([]bool(nil), row...)
	}

	return t, nil
}

// Channels returns the table header as a fresh slice.
func (t *Table) Channels() []string {
	out := make([]string, len(t.channels))
	copy(out, t.channels)

	return out
}

// Len returns the observation (row) count.
func (t *Table) Len() int { return len(t.rows) }

// Conversions returns the number of positive outcomes.
func (t *Table) Conversions() int {
	var n int
	for _, c := range t.outcomes {
		if c {
			n++
		}
	}

	return n
}

// Value derives a coalition value function from the table: the value of a
// coalition S is the conversion rate among rows whose touched channels all
// lie inside S. Semantics mirror ConversionRateValue so journey-based and
// table-based runs are comparable. Rows touching no channel at all are
// excluded for the same reason empty journeys are.
//
// Complexity: O(rows × channels) per call.
func (t *Table) Value() ValueFunc {
	return func(coalition []string) (float64, error) {
		if len(coalition) == 0 {
			return 0, nil
		}
		member := make(map[string]struct{}, len(coalition))
		for _, ch := range coalition {
			member[ch] = struct{}{}
		}

		var matched, converted int
		for i, row := range t.rows {
			inside := true
			touches := 0
			for c, touched := range row {
				if !touched {
					continue
				}
				touches++
				if _, ok := member[t.channels[c]]; !ok {
					inside = false
					break
				}
			}
			if !inside || touches == 0 {
				continue
			}
			matched++
			if t.outcomes[i] {
				converted++
			}
		}

		if matched == 0 {
			return 0, nil
		}

		return float64(converted) / float64(matched), nil
	}
}
