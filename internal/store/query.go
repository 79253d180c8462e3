package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreatedAt = "created_at"
	orderByOffer     = "recommended_offer"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreatedAt: "created_at DESC",
	orderByOffer:     "recommended_offer DESC",
}

const defaultOrderBy = "created_at DESC"

const appraisalColumns = `id, vin, zip_code, analysis_text, tags, extraction_strategy,
	breakdown, scenarios, recommended_offer, position, market_summary, created_at`

const baseAppraisalsSelect = "SELECT " + appraisalColumns + "\nFROM appraisals"

const countAppraisalsSelect = "SELECT COUNT(*) FROM appraisals"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an appraisal
// query. It returns the data query, the count query and their shared
// positional parameters.
func (q *AppraisalQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	add := func(expr string, v any) {
		conditions = append(conditions, fmt.Sprintf(expr, paramIdx))
		args = append(args, v)
		paramIdx++
	}

	if q.Position != nil {
		add("competitive_position = $%d", string(*q.Position))
	}
	if q.VIN != nil {
		add("vin = $%d", strings.ToUpper(*q.VIN))
	}
	if q.MinOffer != nil {
		add("recommended_offer >= $%d", *q.MinOffer)
	}
	if q.MaxOffer != nil {
		add("recommended_offer <= $%d", *q.MaxOffer)
	}
	if q.Since != nil {
		add("created_at >= $%d", *q.Since)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseAppraisalsSelect, whereClause, orderClause, q.EffectiveLimit(), max(q.Offset, 0),
	)

	countSQL = countAppraisalsSelect + whereClause

	return dataSQL, countSQL, args
}

// EffectiveLimit is the page size after defaults and clamping.
func (q *AppraisalQuery) EffectiveLimit() int {
	switch {
	case q.Limit <= 0:
		return defaultLimit
	case q.Limit > maxLimit:
		return maxLimit
	default:
		return q.Limit
	}
}
