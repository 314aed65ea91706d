package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/melissa/career-advisor/internal/discovery"
	"github.com/melissa/career-advisor/internal/market"
	"github.com/melissa/career-advisor/internal/resume"
	"github.com/melissa/career-advisor/internal/timeline"
	"github.com/melissa/career-advisor/internal/types"
)

var validate = validator.New()

// ClassifyRequest asks for an urgency classification of a reference date
type ClassifyRequest struct {
	ReferenceDate time.Time  `json:"reference_date" validate:"required"`
	Now           *time.Time `json:"now,omitempty"` // defaults to server time
}

// ClassifyResponse carries the tier and strategy for a reference date
type ClassifyResponse struct {
	Tier     types.UrgencyTier `json:"tier"`
	Strategy types.Strategy    `json:"strategy"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if !s.decode(w, r, &req) {
		return
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	tier, strategy, err := timeline.Classify(req.ReferenceDate, now)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ClassifyResponse{Tier: tier, Strategy: strategy})
}

// DiscoverRequest carries one discovery batch. SeenIDs may be omitted when
// the server was wired with a seen-store collaborator.
type DiscoverRequest struct {
	Profile  types.Profile   `json:"profile"`
	Postings []types.Posting `json:"postings"`
	SeenIDs  []string        `json:"seen_ids,omitempty"`
}

// DiscoverResponse carries the ranked results and the newly surfaced IDs
type DiscoverResponse struct {
	Discovery  *types.RankedDiscovery `json:"discovery"`
	NewlySeen  []string               `json:"newly_seen"`
	SkipsNoted bool                   `json:"skips_noted"` // true when some postings were skipped
}

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	// No struct-tag validation here: malformed postings must reach the
	// pipeline so they are reported as skips instead of failing the batch.
	var req DiscoverRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	seen := make(map[string]struct{}, len(req.SeenIDs))
	for _, id := range req.SeenIDs {
		seen[id] = struct{}{}
	}
	if s.seenStore != nil {
		stored, err := s.seenStore.LoadSeen(r.Context(), req.Profile.ID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		for id := range stored {
			seen[id] = struct{}{}
		}
	}

	result, newlySeen, err := s.pipeline.Discover(r.Context(), &req.Profile, req.Postings, seen)

	var partial *discovery.PartialBatchFailure
	skipsNoted := errors.As(err, &partial)
	if err != nil && !skipsNoted {
		s.writeError(w, r, err)
		return
	}

	if s.seenStore != nil && len(newlySeen) > 0 {
		if err := s.seenStore.MarkSeen(r.Context(), req.Profile.ID, newlySeen); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, DiscoverResponse{
		Discovery:  result,
		NewlySeen:  newlySeen,
		SkipsNoted: skipsNoted,
	})
}

// OptimizeRequest scores resume text against one posting. RevisedText, when
// present, triggers the follow-up rescore that fills the revised ATS score.
type OptimizeRequest struct {
	ResumeText  string        `json:"resume_text" validate:"required"`
	Posting     types.Posting `json:"posting" validate:"required"`
	RevisedText string        `json:"revised_text,omitempty"`
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if !s.decode(w, r, &req) {
		return
	}

	result, err := resume.Optimize(req.ResumeText, &req.Posting)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.RevisedText != "" {
		if err := resume.Rescore(result, req.RevisedText, &req.Posting); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, result)
}

// MarketRequest asks for a synthesis of raw market samples
type MarketRequest struct {
	Domain   string               `json:"domain" validate:"required"`
	Location string               `json:"location"`
	Samples  []types.MarketSample `json:"samples"`
}

func (s *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	var req MarketRequest
	if !s.decode(w, r, &req) {
		return
	}

	insight, err := market.Synthesize(req.Domain, req.Location, req.Samples)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, insight)
}

// decode unmarshals and validates the request body, writing the error
// response itself when the body is unusable.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !s.decodeJSON(w, r, dst) {
		return false
	}
	if err := validate.Struct(dst); err != nil {
		s.writeError(w, r, &types.InvalidInputError{Field: "body", Message: err.Error()})
		return false
	}
	return true
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, r, &types.InvalidInputError{Field: "body", Message: "malformed JSON: " + err.Error()})
		return false
	}
	return true
}

// requestID tags log lines so concurrent request logs stay separable
func requestID() string {
	return uuid.NewString()
}

func (s *Server) logRequestError(r *http.Request, status int, err error) {
	s.log.Warn("request failed",
		zap.String("request_id", requestID()),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err))
}
