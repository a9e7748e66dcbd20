// Package store provides persistence access for profiles, the opportunity
// catalog and the recommendation cache.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jonathan/opportunity-matcher/internal/types"
)

// ErrProfileNotFound indicates no user record exists for the requested ID.
var ErrProfileNotFound = errors.New("user profile not found")

// ProfileStore reads raw quiz payloads by user ID.
type ProfileStore interface {
	// GetQuizResponses returns the raw quiz payload for a user, or
	// ErrProfileNotFound when the user does not exist. A user without quiz
	// data returns an empty payload, not an error.
	GetQuizResponses(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

// CatalogStore reads the opportunity catalog.
type CatalogStore interface {
	// ListPublishedOpportunities returns all published opportunities with
	// cost ranges already parsed.
	ListPublishedOpportunities(ctx context.Context) ([]types.BusinessOpportunity, error)
}

// CacheStore persists at most one recommendation set per user. Puts replace
// the whole entry, so duplicate computations resolve last-write-wins.
type CacheStore interface {
	// GetEntry returns the cached entry for a user, or nil when absent.
	GetEntry(ctx context.Context, userID uuid.UUID) (*types.CacheEntry, error)
	// PutEntry overwrites any existing entry for the entry's user.
	PutEntry(ctx context.Context, entry *types.CacheEntry) error
	// DeleteEntry removes a user's entry; deleting an absent entry is not
	// an error.
	DeleteEntry(ctx context.Context, userID uuid.UUID) error
}
