package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// DB is the subset of *pgxpool.Pool used by PostgresStore.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

const queryInsertAppraisal = `INSERT INTO appraisals (
	id, vin, zip_code, analysis_text, tags, extraction_strategy,
	breakdown, scenarios, recommended_offer, competitive_position, position,
	market_summary, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const queryGetAppraisal = baseAppraisalsSelect + " WHERE id = $1"

const queryDeleteAppraisalsBefore = "DELETE FROM appraisals WHERE created_at < $1"

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	db DB
}

// NewPostgresStore connects a pool and verifies it with a ping.
// Pool sizing comes from the connection string (pool_max_conns).
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{db: pool}, nil
}

// NewPostgresStoreWithDB wraps an existing pool.
func NewPostgresStoreWithDB(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.db.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.db)
}

// CreateAppraisal inserts an appraisal. A missing ID or CreatedAt is filled
// in on a.
func (s *PostgresStore) CreateAppraisal(ctx context.Context, a *domain.Appraisal) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.Tags == nil {
		a.Tags = []domain.ConditionTag{}
	}

	tags, breakdown, scenarios, position, summary, err := marshalAppraisal(a)
	if err != nil {
		return fmt.Errorf("encoding appraisal %s: %w", a.ID, err)
	}

	if _, err := s.db.Exec(ctx, queryInsertAppraisal,
		a.ID, strings.ToUpper(a.VIN), a.ZipCode, a.AnalysisText, tags, a.ExtractionStrategy,
		breakdown, scenarios, a.RecommendedOffer, string(a.Position.Position), position,
		summary, a.CreatedAt,
	); err != nil {
		return fmt.Errorf("inserting appraisal %s: %w", a.ID, err)
	}

	return nil
}

// GetAppraisal returns the appraisal with the given ID, or ErrNotFound.
// IDs that are not UUIDs cannot exist and also yield ErrNotFound.
func (s *PostgresStore) GetAppraisal(ctx context.Context, id string) (*domain.Appraisal, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("appraisal %q: %w", id, ErrNotFound)
	}

	a, err := scanAppraisal(s.db.QueryRow(ctx, queryGetAppraisal, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("appraisal %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting appraisal %s: %w", id, err)
	}

	return a, nil
}

// ListAppraisals returns one page of matching appraisals and the total
// number of matches.
func (s *PostgresStore) ListAppraisals(
	ctx context.Context,
	q *AppraisalQuery,
) ([]domain.Appraisal, int, error) {
	if q == nil {
		q = &AppraisalQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting appraisals: %w", err)
	}

	rows, err := s.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing appraisals: %w", err)
	}
	defer rows.Close()

	var out []domain.Appraisal
	for rows.Next() {
		a, err := scanAppraisal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning appraisal: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating appraisals: %w", err)
	}

	return out, total, nil
}

// DeleteAppraisalsBefore removes appraisals created before cutoff and
// reports how many were deleted.
func (s *PostgresStore) DeleteAppraisalsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, queryDeleteAppraisalsBefore, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting appraisals before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return tag.RowsAffected(), nil
}

func marshalAppraisal(a *domain.Appraisal) (tags, breakdown, scenarios, position, summary []byte, err error) {
	if tags, err = json.Marshal(a.Tags); err != nil {
		return
	}
	if breakdown, err = json.Marshal(a.Breakdown); err != nil {
		return
	}
	if scenarios, err = json.Marshal(a.Scenarios); err != nil {
		return
	}
	if position, err = json.Marshal(a.Position); err != nil {
		return
	}
	if a.MarketSummary != nil {
		summary, err = json.Marshal(a.MarketSummary)
	}
	return
}

type scannable interface {
	Scan(dest ...any) error
}

func scanAppraisal(row scannable) (*domain.Appraisal, error) {
	var a domain.Appraisal
	var tags, breakdown, scenarios, position, summary []byte

	if err := row.Scan(
		&a.ID, &a.VIN, &a.ZipCode, &a.AnalysisText, &tags, &a.ExtractionStrategy,
		&breakdown, &scenarios, &a.RecommendedOffer, &position, &summary, &a.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tags, &a.Tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}
	if err := json.Unmarshal(breakdown, &a.Breakdown); err != nil {
		return nil, fmt.Errorf("decoding breakdown: %w", err)
	}
	if err := json.Unmarshal(scenarios, &a.Scenarios); err != nil {
		return nil, fmt.Errorf("decoding scenarios: %w", err)
	}
	if err := json.Unmarshal(position, &a.Position); err != nil {
		return nil, fmt.Errorf("decoding position: %w", err)
	}
	if len(summary) > 0 {
		a.MarketSummary = &domain.MarketSummary{}
		if err := json.Unmarshal(summary, a.MarketSummary); err != nil {
			return nil, fmt.Errorf("decoding market summary: %w", err)
		}
	}

	return &a, nil
}
