// Package domain defines the core business types for the trade-in appraiser.
package domain

import (
	"time"
)

// ConditionTag names a detected damage type or aftermarket modification.
type ConditionTag string

// Category groups condition tags by the kind of work they imply.
type Category string

// Category constants.
const (
	CategoryPaint       Category = "paint"
	CategoryBodywork    Category = "bodywork"
	CategoryGlass       Category = "glass"
	CategoryWheels      Category = "wheels"
	CategoryTires       Category = "tires"
	CategoryInterior    Category = "interior"
	CategoryMechanical  Category = "mechanical"
	CategoryAftermarket Category = "aftermarket"
)

// CostRule prices a single condition tag. Repair rules carry a RepairCost;
// aftermarket rules carry a ValueAdded. Both are non-negative.
type CostRule struct {
	Tag         ConditionTag `json:"tag"`
	Category    Category     `json:"category"`
	RepairCost  float64      `json:"repair_cost"`
	ValueAdded  float64      `json:"value_added"`
	Description string       `json:"description"`
}

// IsAftermarket reports whether the rule adds value rather than costing a repair.
func (r CostRule) IsAftermarket() bool {
	return r.Category == CategoryAftermarket
}

// CostBreakdown is the reconditioning estimate for a set of condition tags.
// NetAdjustment is always AftermarketValueAdded - TotalRepairCost.
type CostBreakdown struct {
	LineItems             map[string]float64 `json:"line_items"`
	TotalRepairCost       float64            `json:"total_repair_cost"`
	AftermarketValueAdded float64            `json:"aftermarket_value_added"`
	NetAdjustment         float64            `json:"net_adjustment"`
	IssuesAnalyzed        int                `json:"issues_analyzed"`
}

// ScenarioLabel identifies one of the three pricing strategies.
type ScenarioLabel string

// Scenario label constants, in presentation order.
const (
	ScenarioAggressive   ScenarioLabel = "aggressive"
	ScenarioBalanced     ScenarioLabel = "balanced"
	ScenarioConservative ScenarioLabel = "conservative"
)

// OfferScenario is one priced offer with its win-rate and margin projection.
type OfferScenario struct {
	Label           ScenarioLabel `json:"label"`
	Multiplier      float64       `json:"multiplier"`
	OfferPrice      float64       `json:"offer_price"`
	WinRateEstimate float64       `json:"win_rate_estimate"`
	ExpectedProfit  float64       `json:"expected_profit"`
	ProfitMarginPct float64       `json:"profit_margin_pct"`
	Description     string        `json:"description"`
}

// ScenarioInputs echoes the pricing inputs back for traceability.
type ScenarioInputs struct {
	MarketAvgPrice   float64 `json:"market_avg_price"`
	KBBInstantOffer  float64 `json:"kbb_instant_offer"`
	ReconCost        float64 `json:"recon_cost"`
	AftermarketValue float64 `json:"aftermarket_value"`
	NetRecon         float64 `json:"net_recon_adjustment"`
	BaseOffer        float64 `json:"base_offer"`
}

// ScenarioSet holds the three offer scenarios in aggressive, balanced,
// conservative order.
type ScenarioSet struct {
	Aggressive   OfferScenario  `json:"aggressive"`
	Balanced     OfferScenario  `json:"balanced"`
	Conservative OfferScenario  `json:"conservative"`
	Inputs       ScenarioInputs `json:"market_inputs"`
}

// All returns the scenarios in their fixed order.
func (s *ScenarioSet) All() []OfferScenario {
	return []OfferScenario{s.Aggressive, s.Balanced, s.Conservative}
}

// CompetitivePosition classifies an offer against the KBB benchmark.
type CompetitivePosition string

// Competitive position constants.
const (
	PositionHighlyCompetitive CompetitivePosition = "Highly Competitive"
	PositionCompetitive       CompetitivePosition = "Competitive"
	PositionMarketRate        CompetitivePosition = "Market Rate"
	PositionBelowMarket       CompetitivePosition = "Below Market"
)

// Comparison is the signed gap between an offer and one benchmark.
type Comparison struct {
	Difference    float64 `json:"difference"`
	DifferencePct float64 `json:"difference_pct"`
}

// PositionAnalysis describes how an offer sits against KBB and the market.
type PositionAnalysis struct {
	Position   CompetitivePosition `json:"competitive_position"`
	Assessment string              `json:"assessment"`
	VsKBB      Comparison          `json:"vs_kbb"`
	VsMarket   Comparison          `json:"vs_market_avg"`
}

// Comparable is a market listing for a similar vehicle.
type Comparable struct {
	Source        string  `json:"source,omitempty"`
	Dealer        string  `json:"dealer,omitempty"`
	Price         float64 `json:"price"`
	Mileage       int     `json:"mileage,omitempty"`
	DistanceMiles float64 `json:"distance_miles,omitempty"`
	DaysOnMarket  int     `json:"days_on_market,omitempty"`
}

// MarketSummary is the outlier-filtered price summary of a comparable set.
type MarketSummary struct {
	AvgPrice        float64 `json:"avg_price"`
	OriginalAvg     float64 `json:"original_avg"`
	StdDev          float64 `json:"std_dev"`
	MinPrice        float64 `json:"min_price"`
	MaxPrice        float64 `json:"max_price"`
	Count           int     `json:"count"`
	OutliersRemoved int     `json:"outliers_removed"`
}

// Appraisal is a completed, persisted trade-in appraisal.
type Appraisal struct {
	ID                 string           `json:"id"                        db:"id"`
	VIN                string           `json:"vin,omitempty"             db:"vin"`
	ZipCode            string           `json:"zip_code,omitempty"        db:"zip_code"`
	AnalysisText       string           `json:"analysis_text,omitempty"   db:"analysis_text"`
	Tags               []ConditionTag   `json:"tags"                      db:"tags"`
	ExtractionStrategy string           `json:"extraction_strategy"       db:"extraction_strategy"`
	Breakdown          CostBreakdown    `json:"breakdown"                 db:"breakdown"`
	Scenarios          ScenarioSet      `json:"scenarios"                 db:"scenarios"`
	RecommendedOffer   float64          `json:"recommended_offer"         db:"recommended_offer"`
	Position           PositionAnalysis `json:"position"                  db:"position"`
	MarketSummary      *MarketSummary   `json:"market_summary,omitempty"  db:"market_summary"`
	CreatedAt          time.Time        `json:"created_at"                db:"created_at"`
}
