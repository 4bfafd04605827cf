package recommend

import (
	"fmt"
	"log"
	"sort"

	"github.com/alexkim/job-recommender/internal/catalog"
	"github.com/alexkim/job-recommender/internal/model"
)

// TopN is how many recommendations a request returns at most.
const TopN = 3

// Recommendation is one scored catalog entry. Higher scores are more relevant.
type Recommendation struct {
	Title string
	Score float64
}

// ErrModelIncompatible indicates the loaded artifact cannot transform feature
// vectors, so no scores can be computed for any request.
type ErrModelIncompatible struct {
	Kind string
}

func (e *ErrModelIncompatible) Error() string {
	return fmt.Sprintf("model artifact kind %q does not support transform", e.Kind)
}

// Scorer ranks catalog jobs for a user. It only reads the artifact and the
// catalog, both immutable after startup, so a single Scorer serves concurrent
// requests without locking.
type Scorer struct {
	artifact model.Artifact
	catalog  catalog.Catalog
	encoder  Encoder

	// Warnf receives per-job skip warnings. Defaults to log.Printf.
	Warnf func(format string, args ...any)
}

// NewScorer creates a scorer over the given artifact and catalog with the
// default one-hot feature encoding.
func NewScorer(artifact model.Artifact, cat catalog.Catalog) *Scorer {
	return NewScorerWithEncoder(artifact, cat, OneHotEncoder{Length: artifact.Features()})
}

// NewScorerWithEncoder creates a scorer with a custom feature encoding policy.
func NewScorerWithEncoder(artifact model.Artifact, cat catalog.Catalog, enc Encoder) *Scorer {
	return &Scorer{
		artifact: artifact,
		catalog:  cat,
		encoder:  enc,
		Warnf:    log.Printf,
	}
}

// WithWarnf returns a copy of the scorer whose skip warnings go to fn.
// Handlers use this to surface per-job warnings to the requesting user.
func (s *Scorer) WithWarnf(fn func(format string, args ...any)) *Scorer {
	clone := *s
	clone.Warnf = fn
	return &clone
}

// Recommend returns up to TopN catalog jobs ranked by descending score for the
// given user. Jobs whose model column is out of range are skipped with a
// warning; a partial result is still valid. A missing transform capability
// aborts the whole request with ErrModelIncompatible.
func (s *Scorer) Recommend(userID int64) ([]Recommendation, error) {
	features, err := s.encoder.Encode(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user %d: %w", userID, err)
	}

	transformer, ok := s.artifact.(model.Transformer)
	if !ok {
		return nil, &ErrModelIncompatible{Kind: s.artifact.Kind()}
	}

	latent, err := transformer.Transform(features)
	if err != nil {
		return nil, fmt.Errorf("failed to transform features for user %d: %w", userID, err)
	}

	recs := make([]Recommendation, 0, len(s.catalog))
	for _, job := range s.catalog {
		column, ok := s.artifact.Component(job.Column)
		if !ok {
			s.Warnf("job %d (%s): model column %d out of range, skipping", job.ID, job.Title, job.Column)
			continue
		}
		recs = append(recs, Recommendation{
			Title: job.Title,
			Score: dot(latent, column),
		})
	}

	// Stable keeps catalog order for equal scores
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > TopN {
		recs = recs[:TopN]
	}
	return recs, nil
}

// dot computes the inner product of two equal-length vectors.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
