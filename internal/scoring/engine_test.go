package scoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/opportunity-matcher/internal/parsing"
	"github.com/jonathan/opportunity-matcher/internal/store"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

type fakeProfiles struct {
	data map[uuid.UUID][]byte
}

func (f *fakeProfiles) GetQuizResponses(_ context.Context, userID uuid.UUID) ([]byte, error) {
	raw, ok := f.data[userID]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	return raw, nil
}

type fakeCatalog struct {
	opps  []types.BusinessOpportunity
	err   error
	calls int
}

func (f *fakeCatalog) ListPublishedOpportunities(_ context.Context) ([]types.BusinessOpportunity, error) {
	f.calls++
	return f.opps, f.err
}

type fakeCache struct {
	entries map[uuid.UUID]*types.CacheEntry
	puts    int
	failPut bool
	failGet bool
}

func (f *fakeCache) GetEntry(_ context.Context, userID uuid.UUID) (*types.CacheEntry, error) {
	if f.failGet {
		return nil, errors.New("cache unavailable")
	}
	return f.entries[userID], nil
}

func (f *fakeCache) PutEntry(_ context.Context, entry *types.CacheEntry) error {
	f.puts++
	if f.failPut {
		return errors.New("cache unavailable")
	}
	if f.entries == nil {
		f.entries = make(map[uuid.UUID]*types.CacheEntry)
	}
	f.entries[entry.UserID] = entry
	return nil
}

func (f *fakeCache) DeleteEntry(_ context.Context, userID uuid.UUID) error {
	delete(f.entries, userID)
	return nil
}

func catalogOpp(id, title, cost string, required ...string) types.BusinessOpportunity {
	o := types.BusinessOpportunity{
		ID:             uuid.MustParse(id),
		Title:          title,
		StartupCost:    cost,
		HoursPerWeek:   5,
		RequiredSkills: required,
		Published:      true,
	}
	o.CostRange = parsing.ParseCostRange(cost)
	return o
}

func testEngine(t *testing.T, catalog *fakeCatalog, cache *fakeCache, userID uuid.UUID, quiz []byte) *Engine {
	t.Helper()
	profiles := &fakeProfiles{data: map[uuid.UUID][]byte{}}
	if quiz != nil {
		profiles.data[userID] = quiz
	}
	matcher := NewSkillMatcher(nil, time.Second, nil)
	return NewEngine(profiles, catalog, cache, matcher, nil, 2)
}

var testQuiz = []byte(`{
	"skills": ["photography", "writing"],
	"willing_to_learn": "no",
	"weekly_hours": 3,
	"investment_budget": 1000,
	"avoidances": ["driving"]
}`)

func TestRecommendHappyPath(t *testing.T) {
	userID := uuid.New()
	catalog := &fakeCatalog{opps: []types.BusinessOpportunity{
		catalogOpp("00000000-0000-0000-0000-000000000001", "Stock Photography", "$200", "photography"),
		catalogOpp("00000000-0000-0000-0000-000000000002", "Copywriting", "$50", "writing"),
	}}
	cache := &fakeCache{}
	engine := testEngine(t, catalog, cache, userID, testQuiz)

	resp, err := engine.Recommend(context.Background(), &types.RecommendRequest{UserID: userID.String()})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, 2, resp.TotalAnalyzed)
	assert.Equal(t, len(resp.Recommendations), resp.TotalMatches)
	assert.False(t, resp.Cached)

	for i := 1; i < len(resp.Recommendations); i++ {
		assert.GreaterOrEqual(t, resp.Recommendations[i-1].TotalScore, resp.Recommendations[i].TotalScore)
	}

	require.Contains(t, cache.entries, userID, "result should be cached")
	assert.Equal(t, resp.Recommendations, cache.entries[userID].Recommendations)
}

func TestRecommendCacheHit(t *testing.T) {
	userID := uuid.New()
	cached := &types.CacheEntry{
		UserID:          userID,
		Recommendations: []types.Recommendation{{Title: "Cached Result", TotalScore: 0.9}},
		TotalAnalyzed:   7,
		UpdatedAt:       time.Now().UTC(),
	}
	catalog := &fakeCatalog{}
	cache := &fakeCache{entries: map[uuid.UUID]*types.CacheEntry{userID: cached}}
	engine := testEngine(t, catalog, cache, userID, testQuiz)

	resp, err := engine.Recommend(context.Background(), &types.RecommendRequest{UserID: userID.String()})
	require.NoError(t, err)

	assert.True(t, resp.Cached)
	assert.Equal(t, 7, resp.TotalAnalyzed)
	assert.Equal(t, "Cached Result", resp.Recommendations[0].Title)
	assert.Zero(t, catalog.calls, "cache hit must not touch the catalog")
}

func TestRecommendRefreshBypassesCache(t *testing.T) {
	userID := uuid.New()
	cached := &types.CacheEntry{UserID: userID, Recommendations: []types.Recommendation{{Title: "Stale"}}}
	catalog := &fakeCatalog{opps: []types.BusinessOpportunity{
		catalogOpp("00000000-0000-0000-0000-000000000001", "Fresh", "$50", "photography"),
	}}
	cache := &fakeCache{entries: map[uuid.UUID]*types.CacheEntry{userID: cached}}
	engine := testEngine(t, catalog, cache, userID, testQuiz)

	resp, err := engine.Recommend(context.Background(), &types.RecommendRequest{UserID: userID.String(), Refresh: true})
	require.NoError(t, err)

	assert.False(t, resp.Cached)
	assert.Equal(t, 1, catalog.calls)
	assert.Equal(t, "Fresh", cache.entries[userID].Recommendations[0].Title, "refresh replaces the entry")
}

func TestRecommendProfileNotFound(t *testing.T) {
	engine := testEngine(t, &fakeCatalog{}, &fakeCache{}, uuid.New(), nil)

	_, err := engine.Recommend(context.Background(), &types.RecommendRequest{UserID: uuid.New().String()})
	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestRecommendInvalidUserID(t *testing.T) {
	engine := testEngine(t, &fakeCatalog{}, &fakeCache{}, uuid.New(), nil)

	_, err := engine.Recommend(context.Background(), &types.RecommendRequest{UserID: "not-a-uuid"})
	assert.Error(t, err)
}

func TestRecommendCacheFailuresNonFatal(t *testing.T) {
	userID := uuid.New()
	catalog := &fakeCatalog{opps: []types.BusinessOpportunity{
		catalogOpp("00000000-0000-0000-0000-000000000001", "Venture", "$50", "photography"),
	}}
	cache := &fakeCache{failGet: true, failPut: true}
	engine := testEngine(t, catalog, cache, userID, testQuiz)

	resp, err := engine.Recommend(context.Background(), &types.RecommendRequest{UserID: userID.String()})
	require.NoError(t, err, "cache failures must not fail the request")
	assert.True(t, resp.Success)
	assert.Equal(t, 1, cache.puts)
}

func TestRecommendAppliesAvoidanceFilter(t *testing.T) {
	userID := uuid.New()
	hazardous := catalogOpp("00000000-0000-0000-0000-000000000001", "Courier", "$50", "photography")
	hazardous.HazardTags = []string{"driving"}
	catalog := &fakeCatalog{opps: []types.BusinessOpportunity{
		hazardous,
		catalogOpp("00000000-0000-0000-0000-000000000002", "Copywriting", "$50", "writing"),
	}}
	engine := testEngine(t, catalog, &fakeCache{}, userID, testQuiz)

	resp, err := engine.Recommend(context.Background(), &types.RecommendRequest{UserID: userID.String()})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalAnalyzed, "filtered entries still count as analyzed")
	for _, rec := range resp.Recommendations {
		assert.NotEqual(t, "Courier", rec.Title)
	}
}

func TestRecommendDeterministicWithoutAI(t *testing.T) {
	userID := uuid.New()
	catalog := &fakeCatalog{opps: []types.BusinessOpportunity{
		catalogOpp("00000000-0000-0000-0000-000000000001", "Stock Photography", "$200", "photography"),
		catalogOpp("00000000-0000-0000-0000-000000000002", "Copywriting", "$50", "writing"),
		catalogOpp("00000000-0000-0000-0000-000000000003", "Woodworking", "$800", "carpentry"),
	}}
	useAI := false
	req := &types.RecommendRequest{UserID: userID.String(), UseAI: &useAI, Refresh: true}
	engine := testEngine(t, catalog, &fakeCache{}, userID, testQuiz)

	first, err := engine.Recommend(context.Background(), req)
	require.NoError(t, err)
	second, err := engine.Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Recommendations, second.Recommendations)
}

func TestRecommendAIFailureMatchesFallbackPass(t *testing.T) {
	userID := uuid.New()
	opps := []types.BusinessOpportunity{
		catalogOpp("00000000-0000-0000-0000-000000000001", "Stock Photography", "$200", "photography"),
		catalogOpp("00000000-0000-0000-0000-000000000002", "Copywriting", "$50", "writing"),
	}

	profiles := &fakeProfiles{data: map[uuid.UUID][]byte{userID: testQuiz}}
	broken := NewSkillMatcher(&mockLLMClient{err: errors.New("quota exceeded")}, time.Second, nil)
	aiEngine := NewEngine(profiles, &fakeCatalog{opps: opps}, nil, broken, nil, 2)
	fallbackEngine := NewEngine(profiles, &fakeCatalog{opps: opps}, nil, NewSkillMatcher(nil, 0, nil), nil, 2)

	useAI := false
	aiResp, err := aiEngine.Recommend(context.Background(), &types.RecommendRequest{UserID: userID.String()})
	require.NoError(t, err)
	fbResp, err := fallbackEngine.Recommend(context.Background(), &types.RecommendRequest{UserID: userID.String(), UseAI: &useAI})
	require.NoError(t, err)

	assert.Equal(t, fbResp.Recommendations, aiResp.Recommendations)
}

func TestCachedAndInvalidate(t *testing.T) {
	userID := uuid.New()
	entry := &types.CacheEntry{UserID: userID, TotalAnalyzed: 3}
	cache := &fakeCache{entries: map[uuid.UUID]*types.CacheEntry{userID: entry}}
	engine := testEngine(t, &fakeCatalog{}, cache, userID, testQuiz)

	got, err := engine.Cached(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	require.NoError(t, engine.Invalidate(context.Background(), userID))
	got, err = engine.Cached(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
