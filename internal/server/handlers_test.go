package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melissa/career-advisor/internal/discovery"
	"github.com/melissa/career-advisor/internal/scoring"
	"github.com/melissa/career-advisor/internal/types"
)

type memorySeenStore struct {
	seen map[string]map[string]struct{}
}

func newMemorySeenStore() *memorySeenStore {
	return &memorySeenStore{seen: make(map[string]map[string]struct{})}
}

func (m *memorySeenStore) LoadSeen(_ context.Context, profileID string) (map[string]struct{}, error) {
	out := make(map[string]struct{}, len(m.seen[profileID]))
	for id := range m.seen[profileID] {
		out[id] = struct{}{}
	}
	return out, nil
}

func (m *memorySeenStore) MarkSeen(_ context.Context, profileID string, postingIDs []string) error {
	if m.seen[profileID] == nil {
		m.seen[profileID] = make(map[string]struct{})
	}
	for _, id := range postingIDs {
		m.seen[profileID][id] = struct{}{}
	}
	return nil
}

func newTestServer(t *testing.T, store *memorySeenStore) *Server {
	t.Helper()
	scorer, err := scoring.NewScorer(scoring.DefaultWeights())
	require.NoError(t, err)
	pipeline := discovery.NewPipeline(scorer, discovery.Options{}, nil)

	cfg := Config{Pipeline: pipeline}
	if store != nil {
		cfg.SeenStore = store
	}
	srv, err := New(cfg)
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func testProfile() types.Profile {
	return types.Profile{
		ID:              "user-1",
		Skills:          []string{"Go", "PostgreSQL", "Docker"},
		TargetDomain:    "backend",
		TargetLocations: []string{"Berlin"},
		MinSalary:       60000,
		Experience:      types.ExperienceMid,
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestClassifyEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	rec := doJSON(t, srv, http.MethodPost, "/v1/classify", ClassifyRequest{
		ReferenceDate: now.AddDate(0, 2, 0),
		Now:           &now,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, types.TierUrgent, resp.Tier)
	assert.Equal(t, 2, resp.Strategy.MonthsRemaining)
}

func TestClassifyEndpointRejectsMissingDate(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/v1/classify", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "body", resp.Field)
}

func TestClassifyEndpointRejectsMalformedJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/classify", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiscoverEndpointRanksAndMarksSeen(t *testing.T) {
	store := newMemorySeenStore()
	srv := newTestServer(t, store)
	posted := time.Now().AddDate(0, 0, -1)

	rec := doJSON(t, srv, http.MethodPost, "/v1/discover", DiscoverRequest{
		Profile: testProfile(),
		Postings: []types.Posting{
			{ID: "job-a", Title: "Backend Engineer", Company: "Acme",
				Skills: []string{"Go", "PostgreSQL"}, Location: "Berlin",
				Salary: &types.SalaryRange{Min: 70000, Max: 90000}, PostedAt: posted},
			{ID: "job-b", Title: "Frontend Engineer", Company: "Acme",
				Skills: []string{"React", "CSS"}, Location: "Paris", PostedAt: posted},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DiscoverResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Discovery.Results, 2)
	assert.Equal(t, "job-a", resp.Discovery.Results[0].PostingID)
	assert.False(t, resp.SkipsNoted)
	assert.ElementsMatch(t, []string{"job-a", "job-b"}, resp.NewlySeen)

	seen, err := store.LoadSeen(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, seen, 2)

	// A repeat of the same batch surfaces nothing new.
	rec = doJSON(t, srv, http.MethodPost, "/v1/discover", DiscoverRequest{
		Profile: testProfile(),
		Postings: []types.Posting{
			{ID: "job-a", Title: "Backend Engineer", Company: "Acme",
				Skills: []string{"Go"}, Location: "Berlin", PostedAt: posted},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.NewlySeen)
	assert.Empty(t, resp.Discovery.Results)
}

func TestDiscoverEndpointReportsSkips(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/v1/discover", DiscoverRequest{
		Profile: testProfile(),
		Postings: []types.Posting{
			{ID: "", Title: "Nameless", Company: "Acme", PostedAt: time.Now()},
			{ID: "job-ok", Title: "Backend Engineer", Company: "Acme",
				Skills: []string{"Go"}, Location: "Berlin", PostedAt: time.Now()},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DiscoverResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.SkipsNoted)
	require.Len(t, resp.Discovery.Skipped, 1)
	assert.Equal(t, []string{"job-ok"}, resp.NewlySeen)
}

func TestOptimizeEndpointWithRescore(t *testing.T) {
	srv := newTestServer(t, nil)
	posting := types.Posting{
		ID: "job-a", Title: "Backend Engineer", Company: "Acme",
		Skills:   []string{"Go", "PostgreSQL"},
		PostedAt: time.Now(),
	}

	rec := doJSON(t, srv, http.MethodPost, "/v1/optimize", OptimizeRequest{
		ResumeText:  "Skills\nGo developer with API experience.",
		Posting:     posting,
		RevisedText: "Skills\nGo developer with PostgreSQL and API experience.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ResumeOptimizationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.ATSScore)
	require.NotNil(t, resp.RevisedATSScore)
	assert.Equal(t, 10, *resp.RevisedATSScore)
}

func TestMarketEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/v1/market", MarketRequest{
		Domain:   "backend",
		Location: "Berlin",
		Samples: []types.MarketSample{
			{Salary: 80000, Skills: []string{"Go"}, DemandIndex: 8, AutomationRisk: 2, GrowthRate: 12},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var insight types.MarketInsight
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insight))
	assert.Equal(t, "backend", insight.Domain)
	assert.InDelta(t, 8.0, insight.SecurityScore, 0.001)
}

func TestMarketEndpointInsufficientData(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/v1/market", MarketRequest{
		Domain:  "backend",
		Samples: []types.MarketSample{},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
