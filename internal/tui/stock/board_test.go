// ABOUTME: Tests for stock board reconciliation
// ABOUTME: Quick updates must survive refreshes issued before they completed

package stock

import (
	"sync"
	"testing"

	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
)

var key = catalog.StockKey{ProductID: "p1", SizeID: "s1"}

func row(qty int) catalog.Stock {
	return catalog.Stock{ID: "st1", Product: catalog.RefTo("p1"), Size: catalog.RefTo("s1"), Quantity: qty}
}

func qty(t *testing.T, b *Board) int {
	t.Helper()
	q, ok := b.Quantity(key)
	if !ok {
		t.Fatal("row missing")
	}
	return q
}

func TestWriteShowsNewQuantity(t *testing.T) {
	b := NewBoard()
	b.ApplyRefresh(b.BeginRefresh(), []catalog.Stock{row(4)})

	b.ApplyWrite(key, 9)
	if got := qty(t, b); got != 9 {
		t.Errorf("expected 9 after write, got %d", got)
	}
}

func TestStaleRefreshKeepsWrittenQuantity(t *testing.T) {
	b := NewBoard()
	b.ApplyRefresh(b.BeginRefresh(), []catalog.Stock{row(4)})

	// Refresh goes out, then the write completes, then the old list arrives
	ticket := b.BeginRefresh()
	b.ApplyWrite(key, 9)
	b.ApplyRefresh(ticket, []catalog.Stock{row(4)})

	if got := qty(t, b); got != 9 {
		t.Errorf("expected written 9 to survive stale refresh, got %d", got)
	}
}

func TestLaterRefreshWins(t *testing.T) {
	b := NewBoard()
	b.ApplyRefresh(b.BeginRefresh(), []catalog.Stock{row(4)})
	b.ApplyWrite(key, 9)

	// Someone else changed it after our write; a fresh refresh shows that
	b.ApplyRefresh(b.BeginRefresh(), []catalog.Stock{row(7)})
	if got := qty(t, b); got != 7 {
		t.Errorf("expected server value 7 from newer refresh, got %d", got)
	}

	// And the written override is gone for good
	b.ApplyRefresh(b.BeginRefresh(), []catalog.Stock{row(6)})
	if got := qty(t, b); got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
}

func TestOutOfOrderRefreshDropped(t *testing.T) {
	b := NewBoard()
	older := b.BeginRefresh()
	newer := b.BeginRefresh()

	if !b.ApplyRefresh(newer, []catalog.Stock{row(5)}) {
		t.Fatal("expected newer refresh applied")
	}
	if b.ApplyRefresh(older, []catalog.Stock{row(1)}) {
		t.Error("expected older refresh dropped")
	}
	if got := qty(t, b); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestWriteBeforeRowsLoaded(t *testing.T) {
	b := NewBoard()
	ticket := b.BeginRefresh()
	b.ApplyWrite(key, 2)
	b.ApplyRefresh(ticket, []catalog.Stock{row(8)})
	if got := qty(t, b); got != 2 {
		t.Errorf("expected written 2, got %d", got)
	}
}

func TestRowsReturnsCopy(t *testing.T) {
	b := NewBoard()
	b.ApplyRefresh(b.BeginRefresh(), []catalog.Stock{row(3)})
	rows := b.Rows()
	rows[0].Quantity = 100
	if got := qty(t, b); got != 3 {
		t.Errorf("expected board unchanged, got %d", got)
	}
}

func TestConcurrentWritesAndRefreshes(t *testing.T) {
	b := NewBoard()
	b.ApplyRefresh(b.BeginRefresh(), []catalog.Stock{row(0)})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			b.ApplyRefresh(b.BeginRefresh(), []catalog.Stock{row(0)})
		}()
		go func(n int) {
			defer wg.Done()
			b.ApplyWrite(key, n)
		}(i)
	}
	wg.Wait()

	if _, ok := b.Quantity(key); !ok {
		t.Error("expected row present after concurrent updates")
	}
}

func TestResolveNamesBareRefs(t *testing.T) {
	rows := []catalog.Stock{
		{ID: "s1", Product: catalog.RefTo("p1"), Size: catalog.RefTo("z1"), Quantity: 2},
		{ID: "s2", Product: catalog.Ref{ID: "p2", Name: "Shin Pad"}, Size: catalog.Ref{ID: "z2", Label: "M"}, Quantity: 1},
		{ID: "s3", Product: catalog.RefTo("gone"), Size: catalog.RefTo("z1")},
	}
	products := []catalog.Product{{ID: "p1", Name: "Predator Boot"}, {ID: "p2", Name: "Other"}}
	sizes := []catalog.Size{{ID: "z1", Label: "UK 9"}}

	got := Resolve(rows, products, sizes)

	if got[0].Product.Display() != "Predator Boot" || got[0].Size.Display() != "UK 9" {
		t.Errorf("bare refs not resolved: %+v", got[0])
	}
	if got[1].Product.Name != "Shin Pad" || got[1].Size.Label != "M" {
		t.Errorf("populated refs should be kept: %+v", got[1])
	}
	if got[2].Product.Display() != "gone" {
		t.Errorf("unknown product should fall back to id, got %q", got[2].Product.Display())
	}
	if rows[0].Product.Name != "" {
		t.Error("input rows should not be modified")
	}
}
