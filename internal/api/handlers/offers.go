package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/trade-appraiser/pkg/offer"
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// OffersHandler serves offer scenarios and competitive position checks.
type OffersHandler struct{}

// NewOffersHandler creates a new OffersHandler.
func NewOffersHandler() *OffersHandler {
	return &OffersHandler{}
}

// ScenariosInput is the request body for the scenarios endpoint.
type ScenariosInput struct {
	Body struct {
		MarketAvgPrice   float64 `json:"market_avg_price" doc:"Average market price for the vehicle" example:"25000"`
		KBBInstantOffer  float64 `json:"kbb_instant_offer" doc:"KBB instant cash offer" example:"23800"`
		ReconCost        float64 `json:"recon_cost,omitempty" doc:"Total reconditioning cost" example:"400"`
		AftermarketValue float64 `json:"aftermarket_value,omitempty" doc:"Value added by aftermarket parts" example:"800"`
	}
}

// ScenariosOutput is the response body for the scenarios endpoint.
type ScenariosOutput struct {
	Body domain.ScenarioSet
}

// PositionInput is the request body for the position endpoint.
type PositionInput struct {
	Body struct {
		OurOffer        float64 `json:"our_offer" example:"24500"`
		KBBInstantOffer float64 `json:"kbb_instant_offer" example:"23800"`
		MarketAvg       float64 `json:"market_avg" example:"25000"`
	}
}

// PositionOutput is the response body for the position endpoint.
type PositionOutput struct {
	Body domain.PositionAnalysis
}

// Scenarios computes the aggressive, balanced and conservative offers.
func (*OffersHandler) Scenarios(_ context.Context, input *ScenariosInput) (*ScenariosOutput, error) {
	set, err := offer.Scenarios(offer.Inputs{
		MarketAvgPrice:   input.Body.MarketAvgPrice,
		KBBInstantOffer:  input.Body.KBBInstantOffer,
		ReconCost:        input.Body.ReconCost,
		AftermarketValue: input.Body.AftermarketValue,
	})
	if err != nil {
		return nil, apiError("scenario calculation failed", err)
	}
	return &ScenariosOutput{Body: set}, nil
}

// Position classifies an offer against KBB and the market average.
func (*OffersHandler) Position(_ context.Context, input *PositionInput) (*PositionOutput, error) {
	pa, err := offer.Position(input.Body.OurOffer, input.Body.KBBInstantOffer, input.Body.MarketAvg)
	if err != nil {
		return nil, apiError("position analysis failed", err)
	}
	return &PositionOutput{Body: pa}, nil
}

// RegisterOfferRoutes registers offer endpoints with the Huma API.
func RegisterOfferRoutes(api huma.API, h *OffersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "calculate-offer-scenarios",
		Method:      http.MethodPost,
		Path:        "/api/v1/offers/scenarios",
		Summary:     "Calculate offer scenarios",
		Description: "Returns aggressive (0.92), balanced (0.95) and conservative (0.98) " +
			"offers from the market price net of reconditioning.",
		Tags:   []string{"offers"},
		Errors: []int{http.StatusUnprocessableEntity},
	}, h.Scenarios)

	huma.Register(api, huma.Operation{
		OperationID: "classify-offer-position",
		Method:      http.MethodPost,
		Path:        "/api/v1/offers/position",
		Summary:     "Classify competitive position",
		Tags:        []string{"offers"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.Position)
}
