package repository

import (
	"context"
	"errors"
	"time"
)

// ErrTokenNotFound is returned when a token is absent from the store,
// whether it was never issued, already revoked, or expired out.
var ErrTokenNotFound = errors.New("token not found in store")

// TokenStore is the authoritative record of live access tokens. A token is
// valid only while present here; deleting an entry revokes the token even
// if its signature would still verify. Entries expire on their own after
// the supplied ttl so the store never outlives the tokens it tracks.
type TokenStore interface {
	// Put records a live token for a subject with the given ttl.
	Put(ctx context.Context, token string, subjectID int64, ttl time.Duration) error

	// Get returns the subject id a live token belongs to, or ErrTokenNotFound.
	Get(ctx context.Context, token string) (int64, error)

	// Delete revokes a single token. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteAllForSubject revokes every live token of a subject and returns
	// how many were removed.
	DeleteAllForSubject(ctx context.Context, subjectID int64) (int, error)
}
