package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/trade-appraiser/internal/engine"
	"github.com/donaldgifford/trade-appraiser/internal/store"
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// Appraiser defines the engine operations the appraisal endpoints need.
type Appraiser interface {
	Appraise(ctx context.Context, req engine.Request) (*domain.Appraisal, error)
	AppraiseBatch(ctx context.Context, reqs []engine.Request) []engine.BatchResult
}

// AppraisalsHandler creates and queries appraisals.
type AppraisalsHandler struct {
	appraiser    Appraiser
	store        store.Store
	maxBatchSize int
}

// NewAppraisalsHandler creates a new AppraisalsHandler.
func NewAppraisalsHandler(a Appraiser, s store.Store, maxBatchSize int) *AppraisalsHandler {
	return &AppraisalsHandler{appraiser: a, store: s, maxBatchSize: maxBatchSize}
}

// --- Input/Output types ---

// AppraisalRequest is one vehicle to appraise. When tags is omitted they are
// extracted from analysis_text.
type AppraisalRequest struct {
	VIN             string              `json:"vin,omitempty"            doc:"Vehicle identification number"                            example:"1HGCM82633A004352"`
	ZipCode         string              `json:"zip_code,omitempty"       doc:"Seller ZIP code"                                          example:"94105"`
	AnalysisText    string              `json:"analysis_text,omitempty"  doc:"Damage analysis text to extract tags from"`
	Tags            []string            `json:"tags,omitempty"           doc:"Explicit condition tags; skips extraction when present"`
	MarketAvgPrice  float64             `json:"market_avg_price"         doc:"Average market price"                                     example:"25000"`
	KBBInstantOffer float64             `json:"kbb_instant_offer"        doc:"KBB instant cash offer"                                   example:"23800"`
	Comparables     []domain.Comparable `json:"comparables,omitempty"    doc:"Comparable listings; their filtered average replaces market_avg_price"`
}

func (r AppraisalRequest) toEngine() engine.Request {
	req := engine.Request{
		VIN:             r.VIN,
		ZipCode:         r.ZipCode,
		AnalysisText:    r.AnalysisText,
		MarketAvgPrice:  r.MarketAvgPrice,
		KBBInstantOffer: r.KBBInstantOffer,
		Comparables:     r.Comparables,
	}
	if r.Tags != nil {
		req.Tags = domain.TagsFromStrings(r.Tags)
	}
	return req
}

// CreateAppraisalInput is the request body for creating an appraisal.
type CreateAppraisalInput struct {
	Body AppraisalRequest
}

// AppraisalOutput wraps a single appraisal.
type AppraisalOutput struct {
	Body domain.Appraisal
}

// BatchAppraisalInput is the request body for batch appraisal.
type BatchAppraisalInput struct {
	Body struct {
		Requests []AppraisalRequest `json:"requests" minItems:"1" doc:"Vehicles to appraise"`
	}
}

// BatchItem is the outcome of one batch request.
type BatchItem struct {
	Appraisal *domain.Appraisal `json:"appraisal,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// BatchAppraisalOutput is the response body for batch appraisal.
type BatchAppraisalOutput struct {
	Body struct {
		Results   []BatchItem `json:"results"`
		Succeeded int         `json:"succeeded"`
		Failed    int         `json:"failed"`
	}
}

// ListAppraisalsInput is the input for listing appraisals with optional filters.
type ListAppraisalsInput struct {
	Position string  `query:"position"  doc:"Filter by competitive position" enum:"Highly Competitive,Competitive,Market Rate,Below Market,"`
	VIN      string  `query:"vin"       doc:"Filter by VIN (case-insensitive)"`
	MinOffer float64 `query:"min_offer" doc:"Minimum recommended offer"                                                   minimum:"0"`
	MaxOffer float64 `query:"max_offer" doc:"Maximum recommended offer"                                                   minimum:"0"`
	Since    string  `query:"since"     doc:"Only appraisals created at or after this RFC 3339 time"`
	Limit    int     `query:"limit"     doc:"Number of results (default 50)"                                              minimum:"1" maximum:"500"`
	Offset   int     `query:"offset"    doc:"Pagination offset"                                                           minimum:"0"`
	OrderBy  string  `query:"order_by"  doc:"Sort field"                      enum:"created_at,recommended_offer,"`
}

// ListAppraisalsOutput is the response for listing appraisals.
type ListAppraisalsOutput struct {
	Body struct {
		Appraisals []domain.Appraisal `json:"appraisals"`
		Total      int                `json:"total"`
		Limit      int                `json:"limit"`
		Offset     int                `json:"offset"`
	}
}

// GetAppraisalInput is the input for getting a single appraisal.
type GetAppraisalInput struct {
	ID string `path:"id" doc:"Appraisal UUID"`
}

// --- Handlers ---

// Create appraises one vehicle and stores the result.
func (h *AppraisalsHandler) Create(
	ctx context.Context,
	input *CreateAppraisalInput,
) (*AppraisalOutput, error) {
	a, err := h.appraiser.Appraise(ctx, input.Body.toEngine())
	if err != nil {
		return nil, apiError("appraisal failed", err)
	}
	return &AppraisalOutput{Body: *a}, nil
}

// Batch appraises many vehicles. Individual failures are reported per item.
func (h *AppraisalsHandler) Batch(
	ctx context.Context,
	input *BatchAppraisalInput,
) (*BatchAppraisalOutput, error) {
	if h.maxBatchSize > 0 && len(input.Body.Requests) > h.maxBatchSize {
		return nil, huma.Error422UnprocessableEntity(
			fmt.Sprintf("batch of %d exceeds limit of %d", len(input.Body.Requests), h.maxBatchSize),
		)
	}

	reqs := make([]engine.Request, len(input.Body.Requests))
	for i, r := range input.Body.Requests {
		reqs[i] = r.toEngine()
	}

	results := h.appraiser.AppraiseBatch(ctx, reqs)

	resp := &BatchAppraisalOutput{}
	resp.Body.Results = make([]BatchItem, len(results))
	for i, r := range results {
		if r.Err != nil {
			resp.Body.Results[i].Error = r.Err.Error()
			resp.Body.Failed++
			continue
		}
		resp.Body.Results[i].Appraisal = r.Appraisal
		resp.Body.Succeeded++
	}
	return resp, nil
}

// List returns stored appraisals with optional filters and pagination.
func (h *AppraisalsHandler) List(
	ctx context.Context,
	input *ListAppraisalsInput,
) (*ListAppraisalsOutput, error) {
	q := &store.AppraisalQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Position != "" {
		pos := domain.CompetitivePosition(input.Position)
		q.Position = &pos
	}

	if input.VIN != "" {
		q.VIN = &input.VIN
	}

	if input.MinOffer != 0 {
		q.MinOffer = &input.MinOffer
	}

	if input.MaxOffer != 0 {
		q.MaxOffer = &input.MaxOffer
	}

	if input.Since != "" {
		since, err := time.Parse(time.RFC3339, input.Since)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid since: " + err.Error())
		}
		q.Since = &since
	}

	appraisals, total, err := h.store.ListAppraisals(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("appraisal query failed: " + err.Error())
	}
	if appraisals == nil {
		appraisals = []domain.Appraisal{}
	}

	resp := &ListAppraisalsOutput{}
	resp.Body.Appraisals = appraisals
	resp.Body.Total = total
	resp.Body.Limit = q.EffectiveLimit()
	resp.Body.Offset = q.Offset

	return resp, nil
}

// Get returns a single appraisal by ID.
func (h *AppraisalsHandler) Get(
	ctx context.Context,
	input *GetAppraisalInput,
) (*AppraisalOutput, error) {
	a, err := h.store.GetAppraisal(ctx, input.ID)
	if err != nil {
		return nil, apiError("appraisal lookup failed", err)
	}
	return &AppraisalOutput{Body: *a}, nil
}

// RegisterAppraisalRoutes registers appraisal endpoints with the Huma API.
func RegisterAppraisalRoutes(api huma.API, h *AppraisalsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-appraisal",
		Method:        http.MethodPost,
		Path:          "/api/v1/appraisals",
		Summary:       "Appraise a vehicle",
		Description:   "Extracts tags, estimates reconditioning, prices offer scenarios and stores the result.",
		Tags:          []string{"appraisals"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "batch-appraisals",
		Method:      http.MethodPost,
		Path:        "/api/v1/appraisals/batch",
		Summary:     "Appraise many vehicles",
		Description: "Runs appraisals concurrently. One failed vehicle does not fail the batch.",
		Tags:        []string{"appraisals"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.Batch)

	huma.Register(api, huma.Operation{
		OperationID: "list-appraisals",
		Method:      http.MethodGet,
		Path:        "/api/v1/appraisals",
		Summary:     "List appraisals",
		Description: "Returns appraisals newest first with optional filters for position, VIN, offer range and age.",
		Tags:        []string{"appraisals"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-appraisal",
		Method:      http.MethodGet,
		Path:        "/api/v1/appraisals/{id}",
		Summary:     "Get an appraisal by ID",
		Tags:        []string{"appraisals"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)
}
