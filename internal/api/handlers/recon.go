package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/trade-appraiser/pkg/recon"
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// ReconHandler serves reconditioning estimates and the cost rule table.
type ReconHandler struct{}

// NewReconHandler creates a new ReconHandler.
func NewReconHandler() *ReconHandler {
	return &ReconHandler{}
}

// EstimateInput is the request body for the recon estimate endpoint.
type EstimateInput struct {
	Body struct {
		Tags []string `json:"tags" doc:"Condition tags; duplicates are charged twice" example:"[\"scratches_bumper\",\"seat_wear\"]"`
	}
}

// EstimateOutput is the response body for the recon estimate endpoint.
type EstimateOutput struct {
	Body domain.CostBreakdown
}

// RulesOutput is the response body for the rule table endpoint.
type RulesOutput struct {
	Body struct {
		Rules []domain.CostRule `json:"rules"`
	}
}

// Estimate prices a list of condition tags.
func (*ReconHandler) Estimate(_ context.Context, input *EstimateInput) (*EstimateOutput, error) {
	return &EstimateOutput{
		Body: recon.Estimate(domain.TagsFromStrings(input.Body.Tags)),
	}, nil
}

// Rules returns every cost rule in vocabulary order.
func (*ReconHandler) Rules(_ context.Context, _ *struct{}) (*RulesOutput, error) {
	resp := &RulesOutput{}
	resp.Body.Rules = recon.Rules()
	return resp, nil
}

// RegisterReconRoutes registers reconditioning endpoints with the Huma API.
func RegisterReconRoutes(api huma.API, h *ReconHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "estimate-recon",
		Method:      http.MethodPost,
		Path:        "/api/v1/recon/estimate",
		Summary:     "Estimate reconditioning cost",
		Description: "Prices condition tags against the cost rule table. Unknown tags are ignored.",
		Tags:        []string{"recon"},
	}, h.Estimate)

	huma.Register(api, huma.Operation{
		OperationID: "list-recon-rules",
		Method:      http.MethodGet,
		Path:        "/api/v1/recon/rules",
		Summary:     "List cost rules",
		Tags:        []string{"recon"},
	}, h.Rules)
}
