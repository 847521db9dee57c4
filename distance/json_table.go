package distance

import (
	"fmt"
	"os"
	"sort"

	json "github.com/goccy/go-json"
)

// jsonTableDocument is the on-disk shape of a serialized distance
// table: a flat array of rows rather than a nested map, so the file
// stays diffable and avoids goccy/go-json's map-key-ordering jitter on
// re-encode.
type jsonTableDocument struct {
	Rows []jsonTableRow `json:"rows"`
}

type jsonTableRow struct {
	U    int     `json:"u"`
	V    int     `json:"v"`
	Dist float64 `json:"dist"`
}

// LoadTableJSON reads a precomputed distance table serialized by
// SaveTableJSON (or produced by an external all-pairs precomputation
// pipeline in the same shape) into a MemoryTable.
func LoadTableJSON(path string) (*MemoryTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("distance: LoadTableJSON: %w", err)
	}
	var doc jsonTableDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("distance: LoadTableJSON: %w", err)
	}
	table := NewMemoryTable(nil)
	for _, row := range doc.Rows {
		table.Set(row.U, row.V, row.Dist)
	}
	return table, nil
}

// SaveTableJSON serializes t to path in the row-array shape
// LoadTableJSON expects, sorted by (u, v) for stable diffs.
func SaveTableJSON(t *MemoryTable, path string) error {
	rows := make([]jsonTableRow, 0, t.Len())
	for u, row := range t.rows {
		for v, d := range row {
			rows = append(rows, jsonTableRow{U: u, V: v, Dist: d})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return less(rows[i], rows[j]) })

	data, err := json.MarshalIndent(jsonTableDocument{Rows: rows}, "", "  ")
	if err != nil {
		return fmt.Errorf("distance: SaveTableJSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("distance: SaveTableJSON: %w", err)
	}
	return nil
}

func less(a, b jsonTableRow) bool {
	if a.U != b.U {
		return a.U < b.U
	}
	return a.V < b.V
}
