package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestAppraisalQuery_ToSQL(t *testing.T) {
	t.Parallel()

	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		query         AppraisalQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string
		wantDataNotIn []string
	}{
		{
			name:  "empty query uses defaults",
			query: AppraisalQuery{},
			wantDataHas: []string{
				"FROM appraisals",
				"ORDER BY created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM appraisals",
			wantArgs:      nil,
		},
		{
			name:         "position filter",
			query:        AppraisalQuery{Position: ptr(domain.PositionMarketRate)},
			wantDataHas:  []string{"WHERE competitive_position = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals WHERE competitive_position = $1",
			wantArgs:     []any{"Market Rate"},
		},
		{
			name:         "vin filter is upper-cased",
			query:        AppraisalQuery{VIN: ptr("1hgcm82633a004352")},
			wantDataHas:  []string{"WHERE vin = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals WHERE vin = $1",
			wantArgs:     []any{"1HGCM82633A004352"},
		},
		{
			name: "offer range and since",
			query: AppraisalQuery{
				MinOffer: ptr(10000.0),
				MaxOffer: ptr(30000.0),
				Since:    &since,
			},
			wantDataHas: []string{
				"WHERE recommended_offer >= $1 AND recommended_offer <= $2 AND created_at >= $3",
			},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals " +
				"WHERE recommended_offer >= $1 AND recommended_offer <= $2 AND created_at >= $3",
			wantArgs: []any{10000.0, 30000.0, since},
		},
		{
			name: "all filters number params in order",
			query: AppraisalQuery{
				Position: ptr(domain.PositionCompetitive),
				VIN:      ptr("VIN1"),
				MinOffer: ptr(1.0),
				MaxOffer: ptr(2.0),
				Since:    &since,
			},
			wantDataHas: []string{
				"competitive_position = $1", "vin = $2",
				"recommended_offer >= $3", "recommended_offer <= $4", "created_at >= $5",
			},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals WHERE competitive_position = $1 AND vin = $2 " +
				"AND recommended_offer >= $3 AND recommended_offer <= $4 AND created_at >= $5",
			wantArgs: []any{"Competitive", "VIN1", 1.0, 2.0, since},
		},
		{
			name:         "order by offer",
			query:        AppraisalQuery{OrderBy: "recommended_offer"},
			wantDataHas:  []string{"ORDER BY recommended_offer DESC"},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals",
		},
		{
			name:          "unknown order by falls back to default",
			query:         AppraisalQuery{OrderBy: "id; DROP TABLE appraisals"},
			wantDataHas:   []string{"ORDER BY created_at DESC"},
			wantDataNotIn: []string{"DROP"},
			wantCountSQL:  "SELECT COUNT(*) FROM appraisals",
		},
		{
			name:         "limit clamped and offset floored",
			query:        AppraisalQuery{Limit: 10000, Offset: -5},
			wantDataHas:  []string{"LIMIT 500", "OFFSET 0"},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals",
		},
		{
			name:         "custom limit and offset",
			query:        AppraisalQuery{Limit: 20, Offset: 40},
			wantDataHas:  []string{"LIMIT 20", "OFFSET 40"},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s)
			}
			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s)
			}
			assert.Equal(t, tt.wantCountSQL, countSQL)
			assert.Equal(t, tt.wantArgs, args)
			assert.True(t, strings.HasPrefix(dataSQL, "SELECT id, vin"))
		})
	}
}

func TestAppraisalQuery_EffectiveLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 50, (&AppraisalQuery{}).EffectiveLimit())
	assert.Equal(t, 7, (&AppraisalQuery{Limit: 7}).EffectiveLimit())
	assert.Equal(t, 500, (&AppraisalQuery{Limit: 501}).EffectiveLimit())
}
