// Package letters holds the fixed rotation of daily letters. The table is
// the same for every user and is read only after Load.
package letters

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/planner/pkg/datemath"
	"github.com/limbo/planner/pkg/entity"
)

// CycleLength is the number of letters in one rotation.
const CycleLength = 60

//go:embed letters.json
var embedded []byte

type Table struct {
	entries []entity.DailyLetter
}

// Load parses the embedded table. It fails when the table is malformed, so
// callers should treat the error as fatal at startup.
func Load() (*Table, error) {
	return Parse(embedded)
}

func Parse(data []byte) (*Table, error) {
	var entries []entity.DailyLetter
	if err := sonic.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding letters: %w", err)
	}
	if len(entries) != CycleLength {
		return nil, fmt.Errorf("letters table has %d entries, want %d", len(entries), CycleLength)
	}
	for i, e := range entries {
		if e.Day != i+1 {
			return nil, fmt.Errorf("letter at position %d has day %d", i+1, e.Day)
		}
		if e.Title == "" || e.Content == "" {
			return nil, fmt.Errorf("letter %d is empty", e.Day)
		}
	}
	return &Table{entries: entries}, nil
}

func (t *Table) Len() int {
	return len(t.entries)
}

// ForDay returns the letter for a 1-based cycle day.
func (t *Table) ForDay(day int) (entity.DailyLetter, error) {
	if day < 1 || day > len(t.entries) {
		return entity.DailyLetter{}, fmt.Errorf("day %d is outside 1..%d", day, len(t.entries))
	}
	return t.entries[day-1], nil
}

// On returns the letter shown on the given calendar date.
func (t *Table) On(today, anchor time.Time) entity.DailyLetter {
	// Parse guarantees len == CycleLength, so the lookup can't miss.
	return t.entries[datemath.CycleDay(today, anchor, len(t.entries))-1]
}
