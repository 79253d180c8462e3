package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/trade-appraiser/internal/metrics"
	"github.com/donaldgifford/trade-appraiser/pkg/extract"
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// ExtractHandler handles issue tag extraction requests.
type ExtractHandler struct{}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler() *ExtractHandler {
	return &ExtractHandler{}
}

// ExtractInput is the request body for the extract endpoint.
type ExtractInput struct {
	Body struct {
		Text         string `json:"text" doc:"Free-form damage analysis text" example:"ISSUE_LIST_START[\"curb_rash\"]ISSUE_LIST_END"`
		Canonicalize bool   `json:"canonicalize,omitempty" doc:"Also map tags onto the known vocabulary"`
	}
}

// ExtractOutput is the response body for the extract endpoint.
type ExtractOutput struct {
	Body struct {
		Tags          []domain.ConditionTag `json:"tags" doc:"Tags in order of appearance, duplicates kept"`
		Strategy      extract.Strategy      `json:"strategy" example:"marker" doc:"Which pattern produced the tags"`
		CanonicalTags []domain.ConditionTag `json:"canonical_tags,omitempty" doc:"Tags mapped to the vocabulary; unmappable tags dropped"`
	}
}

// Extract pulls condition tags out of analysis text.
func (*ExtractHandler) Extract(_ context.Context, input *ExtractInput) (*ExtractOutput, error) {
	tags, strategy := extract.ExtractWithStrategy(input.Body.Text)
	metrics.ExtractionStrategyTotal.WithLabelValues(string(strategy)).Inc()

	resp := &ExtractOutput{}
	resp.Body.Tags = tags
	resp.Body.Strategy = strategy
	if input.Body.Canonicalize {
		resp.Body.CanonicalTags = extract.CanonicalizeAll(tags)
	}
	return resp, nil
}

// RegisterExtractRoutes registers extract endpoints with the Huma API.
func RegisterExtractRoutes(api huma.API, h *ExtractHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "extract-issue-tags",
		Method:      http.MethodPost,
		Path:        "/api/v1/extract",
		Summary:     "Extract condition tags from analysis text",
		Description: "Tries the marker block, detected_issues assignment, issues JSON field, " +
			"Detected Issues section and vocabulary scan in that order.",
		Tags: []string{"extract"},
	}, h.Extract)
}
