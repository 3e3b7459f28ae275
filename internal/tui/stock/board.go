// ABOUTME: Stock table state with ordered reconciliation of writes and refreshes
// ABOUTME: A completed quick update outranks any refresh issued before it finished

package stock

import (
	"sync"

	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
)

// Board holds the displayed stock rows. Every refresh and every completed
// write takes a ticket from one counter; a refresh result only overrides a
// written quantity when the refresh was issued after the write completed.
type Board struct {
	mu          sync.Mutex
	rows        []catalog.Stock
	seq         uint64
	lastRefresh uint64
	written     map[catalog.StockKey]write
}

type write struct {
	qty int
	seq uint64
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{written: make(map[catalog.StockKey]write)}
}

// BeginRefresh returns the ticket for a list request about to be sent
func (b *Board) BeginRefresh() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	return b.seq
}

// ApplyRefresh installs rows fetched by the refresh holding ticket. It
// reports false when a newer refresh has already been applied.
func (b *Board) ApplyRefresh(ticket uint64, rows []catalog.Stock) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ticket < b.lastRefresh {
		return false
	}
	b.lastRefresh = ticket

	merged := make([]catalog.Stock, len(rows))
	copy(merged, rows)
	for i := range merged {
		key := merged[i].Key()
		w, ok := b.written[key]
		if !ok {
			continue
		}
		if w.seq > ticket {
			merged[i].Quantity = w.qty
		} else {
			delete(b.written, key)
		}
	}
	b.rows = merged
	return true
}

// ApplyWrite records a successful quick update and shows qty immediately
func (b *Board) ApplyWrite(key catalog.StockKey, qty int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	b.written[key] = write{qty: qty, seq: b.seq}
	for i := range b.rows {
		if b.rows[i].Key() == key {
			b.rows[i].Quantity = qty
		}
	}
}

// Rows returns a copy of the displayed rows
func (b *Board) Rows() []catalog.Stock {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]catalog.Stock, len(b.rows))
	copy(out, b.rows)
	return out
}

// Quantity returns the displayed quantity for key
func (b *Board) Quantity(key catalog.StockKey) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.rows {
		if r.Key() == key {
			return r.Quantity, true
		}
	}
	return 0, false
}
