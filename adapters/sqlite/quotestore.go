package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/omniweb-dev/omniweb/domain/quote"
)

// QuoteStore implements quote.Store using SQLite.
type QuoteStore struct {
	db *DB
}

// NewQuoteStore creates a new SQLite quote store.
func NewQuoteStore(db *DB) *QuoteStore {
	return &QuoteStore{db: db}
}

// Get retrieves one wrong quote by ID.
func (s *QuoteStore) Get(ctx context.Context, id int64) (quote.WrongQuote, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, quote, author, rating FROM wrong_quotes WHERE id = ?
	`, id)
	return scanQuote(row)
}

// Random returns a random wrong quote.
func (s *QuoteStore) Random(ctx context.Context) (quote.WrongQuote, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, quote, author, rating FROM wrong_quotes ORDER BY RANDOM() LIMIT 1
	`)
	return scanQuote(row)
}

// List returns all wrong quotes ordered by rating, best first.
func (s *QuoteStore) List(ctx context.Context) ([]quote.WrongQuote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, quote, author, rating FROM wrong_quotes ORDER BY rating DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []quote.WrongQuote
	for rows.Next() {
		var q quote.WrongQuote
		if err := rows.Scan(&q.ID, &q.Quote, &q.Author, &q.Rating); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// Rate adjusts the rating of a wrong quote by delta.
func (s *QuoteStore) Rate(ctx context.Context, id int64, delta int) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE wrong_quotes SET rating = rating + ? WHERE id = ?
	`, delta, id)
	if err != nil {
		return fmt.Errorf("rate quote: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rate quote: %w", err)
	}
	if affected == 0 {
		return quote.ErrNotFound
	}
	return nil
}

func scanQuote(row *sql.Row) (quote.WrongQuote, error) {
	var q quote.WrongQuote
	if err := row.Scan(&q.ID, &q.Quote, &q.Author, &q.Rating); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quote.WrongQuote{}, quote.ErrNotFound
		}
		return quote.WrongQuote{}, fmt.Errorf("scan quote: %w", err)
	}
	return q, nil
}
