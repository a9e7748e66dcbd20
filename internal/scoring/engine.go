package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/opportunity-matcher/internal/metrics"
	"github.com/jonathan/opportunity-matcher/internal/profile"
	"github.com/jonathan/opportunity-matcher/internal/store"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

const defaultConcurrency = 4

// Engine orchestrates a recommendation pass: cache lookup, profile
// normalization, avoidance filtering, parallel scoring, ranking and the
// cache write. Requests for different users share no mutable state, so one
// Engine serves concurrent requests without coordination.
type Engine struct {
	profiles    store.ProfileStore
	catalog     store.CatalogStore
	cache       store.CacheStore
	matcher     *SkillMatcher
	log         *zap.Logger
	concurrency int
}

// NewEngine creates an engine. Concurrency bounds the in-flight skill-match
// evaluations per request.
func NewEngine(profiles store.ProfileStore, catalog store.CatalogStore, cache store.CacheStore, matcher *SkillMatcher, log *zap.Logger, concurrency int) *Engine {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		profiles:    profiles,
		catalog:     catalog,
		cache:       cache,
		matcher:     matcher,
		log:         log,
		concurrency: concurrency,
	}
}

// Recommend runs one recommendation pass for the request's user.
func (e *Engine) Recommend(ctx context.Context, req *types.RecommendRequest) (*types.RecommendResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", req.UserID, err)
	}

	limit := req.EffectiveLimit()
	minScore := req.EffectiveMinScore()
	useAI := req.EffectiveUseAI()

	if !req.Refresh {
		if entry := e.cachedEntry(ctx, userID); entry != nil {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return &types.RecommendResponse{
				Success:         true,
				UserID:          req.UserID,
				Recommendations: entry.Recommendations,
				TotalAnalyzed:   entry.TotalAnalyzed,
				TotalMatches:    len(entry.Recommendations),
				Cached:          true,
			}, nil
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	raw, err := e.profiles.GetQuizResponses(ctx, userID)
	if err != nil {
		return nil, err
	}
	if schemaErr := profile.CheckSchema(raw); schemaErr != nil {
		e.log.Warn("quiz payload failed schema check",
			zap.String("user_id", req.UserID),
			zap.Error(schemaErr))
	}
	prof := profile.Normalize(userID, raw)

	opps, err := e.catalog.ListPublishedOpportunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunity catalog: %w", err)
	}
	totalAnalyzed := len(opps)

	start := time.Now()
	eligible := FilterAvoidances(prof, opps)
	scored, err := e.ScoreCatalog(ctx, prof, eligible, useAI)
	if err != nil {
		return nil, err
	}
	recs := Rank(scored, minScore, limit)
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())

	e.log.Info("scoring pass complete",
		zap.String("user_id", req.UserID),
		zap.Int("total_analyzed", totalAnalyzed),
		zap.Int("eligible", len(eligible)),
		zap.Int("matches", len(recs)),
		zap.Bool("use_ai", useAI))

	entry := &types.CacheEntry{
		UserID:          userID,
		Recommendations: recs,
		TotalAnalyzed:   totalAnalyzed,
		UpdatedAt:       time.Now().UTC(),
	}
	if e.cache != nil {
		// Cache write failures cost a recomputation later, never the request.
		if err := e.cache.PutEntry(ctx, entry); err != nil {
			e.log.Warn("cache write failed", zap.String("user_id", req.UserID), zap.Error(err))
		}
	}

	return &types.RecommendResponse{
		Success:         true,
		UserID:          req.UserID,
		Recommendations: recs,
		TotalAnalyzed:   totalAnalyzed,
		TotalMatches:    len(recs),
	}, nil
}

// ScoreCatalog scores every eligible opportunity against the profile. Rule
// factors are cheap and computed inline; the potentially-blocking skill-match
// call bounds the pool size. Result order matches the input; Rank sorts
// afterward.
func (e *Engine) ScoreCatalog(ctx context.Context, prof *types.UserProfile, opps []types.BusinessOpportunity, useAI bool) ([]types.Recommendation, error) {
	results := make([]types.Recommendation, len(opps))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i := range opps {
		g.Go(func() error {
			o := &opps[i]
			skillScore, source := e.matcher.Match(gCtx, prof, o, useAI)
			metrics.SkillMatchTotal.WithLabelValues(string(source)).Inc()
			results[i] = ScoreOpportunity(prof, o, skillScore, source)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Cached returns the user's cache entry, or nil when absent.
func (e *Engine) Cached(ctx context.Context, userID uuid.UUID) (*types.CacheEntry, error) {
	if e.cache == nil {
		return nil, nil
	}
	return e.cache.GetEntry(ctx, userID)
}

// Invalidate drops the user's cache entry, forcing the next request to
// recompute.
func (e *Engine) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if e.cache == nil {
		return nil
	}
	return e.cache.DeleteEntry(ctx, userID)
}

// cachedEntry looks up the cache, treating lookup errors as misses.
func (e *Engine) cachedEntry(ctx context.Context, userID uuid.UUID) *types.CacheEntry {
	if e.cache == nil {
		return nil
	}
	entry, err := e.cache.GetEntry(ctx, userID)
	if err != nil {
		e.log.Warn("cache lookup failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil
	}
	return entry
}
