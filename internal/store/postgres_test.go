package store

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

const testID = "0b8f1c9e-5d2a-4c1e-9f3b-7a6d5e4c3b2a"

var appraisalCols = []string{
	"id", "vin", "zip_code", "analysis_text", "tags", "extraction_strategy",
	"breakdown", "scenarios", "recommended_offer", "position", "market_summary", "created_at",
}

func newMockStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresStoreWithDB(mock), mock
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func sampleAppraisal() *domain.Appraisal {
	return &domain.Appraisal{
		VIN:                "1hgcm82633a004352",
		ZipCode:            "94105",
		AnalysisText:       `ISSUE_LIST_START["curb_rash"]ISSUE_LIST_END`,
		Tags:               []domain.ConditionTag{"curb_rash"},
		ExtractionStrategy: "marker",
		Breakdown: domain.CostBreakdown{
			LineItems:       map[string]float64{"Wheel curb rash repair (per wheel)": 150},
			TotalRepairCost: 150,
			NetAdjustment:   -150,
			IssuesAnalyzed:  1,
		},
		RecommendedOffer: 23607.5,
		Position: domain.PositionAnalysis{
			Position:   domain.PositionMarketRate,
			Assessment: "Offer near KBB, moderate win probability",
		},
	}
}

func TestPostgresStore_CreateAppraisal(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	a := sampleAppraisal()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO appraisals")).
		WithArgs(
			pgxmock.AnyArg(), "1HGCM82633A004352", "94105", a.AnalysisText,
			[]byte(`["curb_rash"]`), "marker",
			pgxmock.AnyArg(), pgxmock.AnyArg(), 23607.5, "Market Rate", pgxmock.AnyArg(),
			[]byte(nil), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.CreateAppraisal(context.Background(), a))
	assert.Len(t, a.ID, 36)
	assert.False(t, a.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateAppraisal_KeepsProvidedIdentity(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := sampleAppraisal()
	a.ID = testID
	a.CreatedAt = created
	a.MarketSummary = &domain.MarketSummary{AvgPrice: 25000, Count: 4}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO appraisals")).
		WithArgs(
			testID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			mustJSON(t, a.MarketSummary), created,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.CreateAppraisal(context.Background(), a))
	assert.Equal(t, testID, a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateAppraisal_Error(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	a := sampleAppraisal()

	args := make([]any, 13)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO appraisals")).
		WithArgs(args...).
		WillReturnError(errors.New("connection reset"))

	err := s.CreateAppraisal(context.Background(), a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting appraisal")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAppraisal(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	want := sampleAppraisal()

	rows := pgxmock.NewRows(appraisalCols).AddRow(
		testID, "1HGCM82633A004352", "94105", want.AnalysisText,
		[]byte(`["curb_rash"]`), "marker",
		mustJSON(t, want.Breakdown), mustJSON(t, want.Scenarios), 23607.5,
		mustJSON(t, want.Position), []byte(`{"avg_price":25000,"count":4}`), created,
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM appraisals WHERE id = $1")).
		WithArgs(testID).
		WillReturnRows(rows)

	got, err := s.GetAppraisal(context.Background(), testID)
	require.NoError(t, err)

	assert.Equal(t, testID, got.ID)
	assert.Equal(t, []domain.ConditionTag{"curb_rash"}, got.Tags)
	assert.Equal(t, want.Breakdown, got.Breakdown)
	assert.Equal(t, want.Position, got.Position)
	require.NotNil(t, got.MarketSummary)
	assert.InDelta(t, 25000.0, got.MarketSummary.AvgPrice, 0)
	assert.Equal(t, created, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAppraisal_NotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM appraisals WHERE id = $1")).
		WithArgs(testID).
		WillReturnRows(pgxmock.NewRows(appraisalCols))

	_, err := s.GetAppraisal(context.Background(), testID)
	require.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAppraisal_MalformedID(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)

	_, err := s.GetAppraisal(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListAppraisals(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	pos := domain.PositionCompetitive
	q := &AppraisalQuery{Position: &pos, Limit: 10}
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	position := mustJSON(t, domain.PositionAnalysis{Position: pos})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM appraisals WHERE competitive_position = $1")).
		WithArgs("Competitive").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT 10 OFFSET 0")).
		WithArgs("Competitive").
		WillReturnRows(pgxmock.NewRows(appraisalCols).
			AddRow(testID, "", "", "", []byte(`[]`), "none",
				[]byte(`{}`), []byte(`{}`), 24000.0, position, nil, created).
			AddRow("5a1d3c2b-0e9f-4a8b-b7c6-d5e4f3a2b1c0", "", "", "", []byte(`["dent_door"]`), "vocabulary",
				[]byte(`{}`), []byte(`{}`), 23000.0, position, nil, created))

	got, total, err := s.ListAppraisals(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, testID, got[0].ID)
	assert.Nil(t, got[0].MarketSummary)
	assert.Equal(t, []domain.ConditionTag{"dent_door"}, got[1].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListAppraisals_CountError(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM appraisals")).
		WillReturnError(errors.New("timeout"))

	_, _, err := s.ListAppraisals(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counting appraisals")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteAppraisalsBefore(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appraisals WHERE created_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 7))

	n, err := s.DeleteAppraisalsBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations(t *testing.T) {
	t.Parallel()

	versions, err := migrationVersions()
	require.NoError(t, err)
	require.Equal(t, []string{"001_create_appraisals.sql", "002_appraisal_indexes.sql"}, versions)

	tests := []struct {
		name    string
		applied map[string]bool
	}{
		{name: "fresh database", applied: map[string]bool{}},
		{name: "first already applied", applied: map[string]bool{versions[0]: true}},
		{name: "all applied", applied: map[string]bool{versions[0]: true, versions[1]: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, mock := newMockStore(t)
			mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
				WillReturnResult(pgxmock.NewResult("CREATE", 0))

			for _, v := range versions {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations")).
					WithArgs(v).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(tt.applied[v]))
				if tt.applied[v] {
					continue
				}
				mock.ExpectExec(".*").WillReturnResult(pgxmock.NewResult("CREATE", 0))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations")).
					WithArgs(v).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			require.NoError(t, s.Migrate(context.Background()))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunMigrations_ApplyError(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("001_create_appraisals.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(".*").WillReturnError(errors.New("syntax error"))

	err := s.Migrate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "applying migration 001_create_appraisals.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Ping(t *testing.T) {
	t.Parallel()

	s, mock := newMockStore(t)
	mock.ExpectPing()
	require.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
