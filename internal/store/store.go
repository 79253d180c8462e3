// Package store defines the datastore abstraction for trade-appraiser.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// AppraisalQuery defines optional filters for appraisal queries.
type AppraisalQuery struct {
	Position *domain.CompetitivePosition
	VIN      *string
	MinOffer *float64
	MaxOffer *float64
	Since    *time.Time
	Limit    int // default 50
	Offset   int
	OrderBy  string // "created_at", "recommended_offer"
}

// Store defines all data access operations for trade-appraiser.
type Store interface {
	// Appraisals
	CreateAppraisal(ctx context.Context, a *domain.Appraisal) error
	GetAppraisal(ctx context.Context, id string) (*domain.Appraisal, error)
	ListAppraisals(ctx context.Context, q *AppraisalQuery) ([]domain.Appraisal, int, error)
	DeleteAppraisalsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
