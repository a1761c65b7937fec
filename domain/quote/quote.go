// Package quote holds the domain types of the wrong-quotes feature: real
// quotes deliberately attributed to the wrong author, rated by visitors.
package quote

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store implementations when the requested
// quote does not exist.
var ErrNotFound = errors.New("quote not found")

// WrongQuote is a quote paired with an author who never said it.
type WrongQuote struct {
	ID     int64
	Quote  string
	Author string
	Rating int
}

// Store persists wrong quotes and their ratings.
type Store interface {
	// Get retrieves one wrong quote by ID.
	Get(ctx context.Context, id int64) (WrongQuote, error)

	// Random returns a random wrong quote.
	Random(ctx context.Context) (WrongQuote, error)

	// List returns all wrong quotes ordered by rating, best first.
	List(ctx context.Context) ([]WrongQuote, error)

	// Rate adjusts the rating of a wrong quote by delta.
	Rate(ctx context.Context, id int64, delta int) error
}
