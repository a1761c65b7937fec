package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/omniweb-dev/omniweb/domain/quote"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestQuoteStoreGet(t *testing.T) {
	store := NewQuoteStore(testDB(t))
	ctx := context.Background()

	quotes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(quotes) == 0 {
		t.Fatal("seed data missing")
	}

	got, err := store.Get(ctx, quotes[0].ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != quotes[0] {
		t.Errorf("Get = %+v, want %+v", got, quotes[0])
	}

	_, err = store.Get(ctx, 999999)
	if !errors.Is(err, quote.ErrNotFound) {
		t.Errorf("Get missing = %v, want quote.ErrNotFound", err)
	}
}

func TestQuoteStoreRandom(t *testing.T) {
	store := NewQuoteStore(testDB(t))

	q, err := store.Random(context.Background())
	if err != nil {
		t.Fatalf("Random error: %v", err)
	}
	if q.Quote == "" || q.Author == "" {
		t.Errorf("Random = %+v", q)
	}
}

func TestQuoteStoreRate(t *testing.T) {
	store := NewQuoteStore(testDB(t))
	ctx := context.Background()

	q, err := store.Random(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Rate(ctx, q.ID, 1); err != nil {
		t.Fatalf("Rate error: %v", err)
	}

	rated, err := store.Get(ctx, q.ID)
	if err != nil {
		t.Fatal(err)
	}
	if rated.Rating != q.Rating+1 {
		t.Errorf("rating = %d, want %d", rated.Rating, q.Rating+1)
	}

	if err := store.Rate(ctx, 999999, 1); !errors.Is(err, quote.ErrNotFound) {
		t.Errorf("Rate missing = %v, want quote.ErrNotFound", err)
	}
}

func TestListOrderedByRating(t *testing.T) {
	store := NewQuoteStore(testDB(t))

	quotes, err := store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(quotes); i++ {
		if quotes[i].Rating > quotes[i-1].Rating {
			t.Fatalf("list not ordered by rating: %+v", quotes)
		}
	}
}
