package graph

type stopPair struct {
	from, to string
}

// TransferTable holds minimum transfer times (seconds) between pairs of
// transit stops. The zero value and the nil table are valid no-op tables
// that always answer with the caller's default.
type TransferTable struct {
	m map[stopPair]float64
}

func NewTransferTable() *TransferTable {
	return &TransferTable{m: make(map[stopPair]float64)}
}

func (t *TransferTable) Add(from, to string, seconds float64) {
	if t.m == nil {
		t.m = make(map[stopPair]float64)
	}
	t.m[stopPair{from: from, to: to}] = seconds
}

// Transfer returns the minimum transfer time between two stops, or def when
// no entry exists.
func (t *TransferTable) Transfer(from, to string, def float64) float64 {
	if t == nil || t.m == nil {
		return def
	}
	if s, ok := t.m[stopPair{from: from, to: to}]; ok {
		return s
	}
	return def
}

func (t *TransferTable) Size() int {
	if t == nil {
		return 0
	}
	return len(t.m)
}
