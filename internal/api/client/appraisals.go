package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// AppraisalRequest is one vehicle to appraise. Leave Tags empty to have the
// server extract them from AnalysisText.
type AppraisalRequest struct {
	VIN             string              `json:"vin,omitempty"`
	ZipCode         string              `json:"zip_code,omitempty"`
	AnalysisText    string              `json:"analysis_text,omitempty"`
	Tags            []string            `json:"tags,omitempty"`
	MarketAvgPrice  float64             `json:"market_avg_price"`
	KBBInstantOffer float64             `json:"kbb_instant_offer"`
	Comparables     []domain.Comparable `json:"comparables,omitempty"`
}

// BatchItem is one result of a batch appraisal.
type BatchItem struct {
	Appraisal *domain.Appraisal `json:"appraisal,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// BatchResponse is the result of a batch appraisal.
type BatchResponse struct {
	Results   []BatchItem `json:"results"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

// AppraisalsResponse wraps a paginated appraisals response.
type AppraisalsResponse struct {
	Appraisals []domain.Appraisal `json:"appraisals"`
	Total      int                `json:"total"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// ListAppraisalsParams defines query parameters for appraisal queries.
type ListAppraisalsParams struct {
	Position string
	VIN      string
	MinOffer float64
	MaxOffer float64
	Since    time.Time
	Limit    int
	Offset   int
	OrderBy  string
}

// CreateAppraisal appraises one vehicle and stores the result.
func (c *Client) CreateAppraisal(ctx context.Context, req *AppraisalRequest) (*domain.Appraisal, error) {
	var a domain.Appraisal
	if err := c.post(ctx, "/api/v1/appraisals", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// BatchAppraise appraises many vehicles in one call.
func (c *Client) BatchAppraise(ctx context.Context, reqs []AppraisalRequest) (*BatchResponse, error) {
	var resp BatchResponse
	if err := c.post(ctx, "/api/v1/appraisals/batch", map[string]any{"requests": reqs}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListAppraisals returns appraisals matching the given parameters.
func (c *Client) ListAppraisals(
	ctx context.Context,
	params *ListAppraisalsParams,
) (*AppraisalsResponse, error) {
	q := url.Values{}
	if params.Position != "" {
		q.Set("position", params.Position)
	}
	if params.VIN != "" {
		q.Set("vin", params.VIN)
	}
	if params.MinOffer > 0 {
		q.Set("min_offer", strconv.FormatFloat(params.MinOffer, 'f', -1, 64))
	}
	if params.MaxOffer > 0 {
		q.Set("max_offer", strconv.FormatFloat(params.MaxOffer, 'f', -1, 64))
	}
	if !params.Since.IsZero() {
		q.Set("since", params.Since.UTC().Format(time.RFC3339))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/appraisals"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp AppraisalsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAppraisal returns a single appraisal by ID.
func (c *Client) GetAppraisal(ctx context.Context, id string) (*domain.Appraisal, error) {
	var a domain.Appraisal
	if err := c.get(ctx, "/api/v1/appraisals/"+url.PathEscape(id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}
