package distance

// Table is a precomputed, possibly partial, set of pairwise shortest
// distances. Implementations need not cover every (u, v) pair — a
// miss simply falls through to the oracle's on-demand search.
type Table interface {
	// Get returns the precomputed distance from u to v, and whether
	// the pair is present in the table.
	Get(u, v int) (float64, bool)
}

// MemoryTable is a Table backed entirely by an in-memory map, suited
// to distance tables small enough to fit in process memory — the
// direct analogue of loading a pickled all_pairs_dijkstra_path_length
// result wholesale.
type MemoryTable struct {
	rows map[int]map[int]float64
}

// NewMemoryTable builds a MemoryTable from a nested map of
// precomputed distances, rows[u][v] = distance(u, v). The table takes
// ownership of rows; callers should not mutate it afterward.
func NewMemoryTable(rows map[int]map[int]float64) *MemoryTable {
	if rows == nil {
		rows = make(map[int]map[int]float64)
	}
	return &MemoryTable{rows: rows}
}

// Get implements Table.
func (t *MemoryTable) Get(u, v int) (float64, bool) {
	row, ok := t.rows[u]
	if !ok {
		return 0, false
	}
	d, ok := row[v]
	return d, ok
}

// Set records a precomputed distance, overwriting any existing entry.
func (t *MemoryTable) Set(u, v int, d float64) {
	row, ok := t.rows[u]
	if !ok {
		row = make(map[int]float64)
		t.rows[u] = row
	}
	row[v] = d
}

// Len returns the number of (u, v) pairs recorded.
func (t *MemoryTable) Len() int {
	n := 0
	for _, row := range t.rows {
		n += len(row)
	}
	return n
}
