// Package engine composes tag extraction, reconditioning estimation and
// offer pricing into persisted appraisals, and prunes old appraisals on a
// schedule.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/trade-appraiser/internal/metrics"
	"github.com/donaldgifford/trade-appraiser/internal/store"
	"github.com/donaldgifford/trade-appraiser/pkg/extract"
	"github.com/donaldgifford/trade-appraiser/pkg/market"
	"github.com/donaldgifford/trade-appraiser/pkg/offer"
	"github.com/donaldgifford/trade-appraiser/pkg/recon"
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// StrategyExplicit marks appraisals whose tags were supplied by the caller.
const StrategyExplicit = "explicit"

const (
	defaultConcurrency     = 4
	defaultRetentionMaxAge = 90 * 24 * time.Hour
)

// Request describes one vehicle to appraise. Tags, when non-nil, are used
// as-is; otherwise they are extracted from AnalysisText.
type Request struct {
	VIN             string
	ZipCode         string
	AnalysisText    string
	Tags            []domain.ConditionTag
	MarketAvgPrice  float64
	KBBInstantOffer float64
	Comparables     []domain.Comparable
}

// BatchResult is the outcome of one request in a batch. Exactly one of
// Appraisal and Err is set.
type BatchResult struct {
	Appraisal *domain.Appraisal
	Err       error
}

// Engine produces and stores appraisals.
type Engine struct {
	store store.Store
	log   *slog.Logger

	concurrency         int
	canonicalizeUnknown bool
	stdDevThreshold     float64
	retentionMaxAge     time.Duration
	now                 func() time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:           s,
		log:             slog.Default(),
		concurrency:     defaultConcurrency,
		stdDevThreshold: market.DefaultStdDevThreshold,
		retentionMaxAge: defaultRetentionMaxAge,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithConcurrency bounds how many batch requests run at once.
func WithConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithCanonicalizeUnknown maps tags outside the vocabulary onto known tags
// where a keyword rule applies.
func WithCanonicalizeUnknown(on bool) EngineOption {
	return func(e *Engine) {
		e.canonicalizeUnknown = on
	}
}

// WithOutlierThreshold sets the comparable outlier cutoff in standard
// deviations.
func WithOutlierThreshold(sd float64) EngineOption {
	return func(e *Engine) {
		if sd > 0 {
			e.stdDevThreshold = sd
		}
	}
}

// WithRetentionMaxAge sets how long appraisals are kept.
func WithRetentionMaxAge(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.retentionMaxAge = d
		}
	}
}

// Evaluate computes an appraisal without storing it.
func (eng *Engine) Evaluate(req Request) (*domain.Appraisal, error) {
	tags, strategy := eng.resolveTags(req)

	marketAvg := req.MarketAvgPrice
	var summary *domain.MarketSummary
	if len(req.Comparables) > 0 {
		s := market.Summarize(req.Comparables, eng.stdDevThreshold)
		summary = &s
		marketAvg = s.AvgPrice
	}

	breakdown := recon.Estimate(tags)

	set, err := offer.Scenarios(offer.Inputs{
		MarketAvgPrice:   marketAvg,
		KBBInstantOffer:  req.KBBInstantOffer,
		ReconCost:        breakdown.TotalRepairCost,
		AftermarketValue: breakdown.AftermarketValueAdded,
	})
	if err != nil {
		return nil, err
	}

	pos, err := offer.Position(set.Balanced.OfferPrice, req.KBBInstantOffer, marketAvg)
	if err != nil {
		return nil, err
	}

	return &domain.Appraisal{
		VIN:                strings.ToUpper(strings.TrimSpace(req.VIN)),
		ZipCode:            strings.TrimSpace(req.ZipCode),
		AnalysisText:       req.AnalysisText,
		Tags:               tags,
		ExtractionStrategy: strategy,
		Breakdown:          breakdown,
		Scenarios:          set,
		RecommendedOffer:   set.Balanced.OfferPrice,
		Position:           pos,
		MarketSummary:      summary,
	}, nil
}

// Appraise evaluates a request and persists the result.
func (eng *Engine) Appraise(ctx context.Context, req Request) (*domain.Appraisal, error) {
	start := eng.now()
	defer func() {
		metrics.AppraisalDuration.Observe(time.Since(start).Seconds())
	}()

	a, err := eng.Evaluate(req)
	if err != nil {
		metrics.AppraisalErrorsTotal.Inc()
		return nil, fmt.Errorf("evaluating appraisal: %w", err)
	}

	a.CreatedAt = eng.now().UTC()
	if err := eng.store.CreateAppraisal(ctx, a); err != nil {
		metrics.AppraisalErrorsTotal.Inc()
		return nil, fmt.Errorf("creating appraisal: %w", err)
	}

	metrics.AppraisalsTotal.Inc()
	metrics.ExtractionStrategyTotal.WithLabelValues(a.ExtractionStrategy).Inc()
	metrics.ReconCost.Observe(a.Breakdown.TotalRepairCost)
	metrics.CompetitivePositionTotal.WithLabelValues(string(a.Position.Position)).Inc()

	eng.log.Info("appraisal created",
		"id", a.ID,
		"vin", a.VIN,
		"tags", len(a.Tags),
		"strategy", a.ExtractionStrategy,
		"recommended_offer", a.RecommendedOffer,
		"position", a.Position.Position,
	)

	return a, nil
}

// AppraiseBatch appraises requests concurrently. Results are in request
// order; one failed request never aborts the others.
func (eng *Engine) AppraiseBatch(ctx context.Context, reqs []Request) []BatchResult {
	results := make([]BatchResult, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(eng.concurrency)

	for i := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			a, err := eng.Appraise(gctx, reqs[i])
			results[i] = BatchResult{Appraisal: a, Err: err}
			return nil
		})
	}

	// Workers never return an error; failures live in results.
	_ = g.Wait()

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	eng.log.Info("batch appraisal complete", "requests", len(reqs), "failed", failed)

	return results
}

// RunRetention deletes appraisals older than the retention window.
func (eng *Engine) RunRetention(ctx context.Context) (int64, error) {
	cutoff := eng.now().Add(-eng.retentionMaxAge)

	n, err := eng.store.DeleteAppraisalsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("running retention: %w", err)
	}

	metrics.RetentionDeletedTotal.Add(float64(n))
	metrics.RetentionLastRunTimestamp.SetToCurrentTime()
	eng.log.Info("retention complete", "deleted", n, "cutoff", cutoff)

	return n, nil
}

func (eng *Engine) resolveTags(req Request) ([]domain.ConditionTag, string) {
	var tags []domain.ConditionTag
	strategy := StrategyExplicit
	if req.Tags != nil {
		tags = append([]domain.ConditionTag{}, req.Tags...)
	} else {
		var s extract.Strategy
		tags, s = extract.ExtractWithStrategy(req.AnalysisText)
		strategy = string(s)
	}

	if !eng.canonicalizeUnknown {
		return tags, strategy
	}

	for i, t := range tags {
		if recon.IsKnown(t) {
			continue
		}
		if c, ok := extract.Canonicalize(string(t)); ok {
			tags[i] = c
		}
	}
	return tags, strategy
}
