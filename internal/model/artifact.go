// Package model loads the precomputed factorization artifact the scoring
// service reads from. The artifact is produced out-of-band, loaded once at
// startup and never mutated, so it is safe to share across requests.
package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed model_artifact.schema.json
var artifactSchema string

// KindNMFProjection is the artifact kind that carries projection weights and
// therefore supports Transform.
const KindNMFProjection = "nmf-projection"

// Artifact is a loaded factorization model. Component gives bounds-checked
// access to a column of the components matrix (the latent vector of one
// feature/item column).
type Artifact interface {
	Kind() string
	Rank() int
	Features() int
	Component(col int) ([]float64, bool)
}

// Transformer is the optional capability of mapping a raw feature vector to a
// latent vector. Callers must type-assert for it instead of assuming every
// artifact kind can transform.
type Transformer interface {
	Transform(features []float64) ([]float64, error)
}

// document is the on-disk JSON layout of an artifact.
type document struct {
	Kind       string      `json:"kind"`
	Rank       int         `json:"rank"`
	Features   int         `json:"features"`
	Components [][]float64 `json:"components"` // rank rows, features columns
}

// matrixArtifact holds the decoded components matrix. It satisfies Artifact
// but not Transformer.
type matrixArtifact struct {
	kind       string
	rank       int
	features   int
	components [][]float64
}

func (a *matrixArtifact) Kind() string  { return a.kind }
func (a *matrixArtifact) Rank() int     { return a.rank }
func (a *matrixArtifact) Features() int { return a.features }

// Component returns column col of the components matrix, or false when col is
// outside the matrix.
func (a *matrixArtifact) Component(col int) ([]float64, bool) {
	if col < 0 || col >= a.features {
		return nil, false
	}
	vec := make([]float64, a.rank)
	for r := 0; r < a.rank; r++ {
		vec[r] = a.components[r][col]
	}
	return vec, true
}

// projectionArtifact additionally supports Transform as a linear projection of
// the feature vector onto the components.
type projectionArtifact struct {
	matrixArtifact
}

// Transform maps a raw feature vector to a latent vector of length Rank.
func (a *projectionArtifact) Transform(features []float64) ([]float64, error) {
	if len(features) != a.features {
		return nil, fmt.Errorf("feature vector has length %d, model expects %d", len(features), a.features)
	}
	latent := make([]float64, a.rank)
	for r := 0; r < a.rank; r++ {
		var sum float64
		row := a.components[r]
		for f, x := range features {
			if x != 0 {
				sum += row[f] * x
			}
		}
		latent[r] = sum
	}
	return latent, nil
}

// ValidationError reports schema violations in an artifact file
type ValidationError struct {
	Path   string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("artifact %s failed schema validation: %v", e.Path, e.Errors)
}

// Load reads, validates and decodes the artifact at path. Any problem here is
// a startup failure: the server must not come up with a broken model.
func Load(path string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(artifactSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate model artifact %s: %w", path, err)
	}
	if !result.Valid() {
		ve := &ValidationError{Path: path}
		for _, desc := range result.Errors() {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, ve
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact %s: %w", path, err)
	}

	if len(doc.Components) != doc.Rank {
		return nil, fmt.Errorf("model artifact %s: components has %d rows, rank is %d", path, len(doc.Components), doc.Rank)
	}
	for r, row := range doc.Components {
		if len(row) != doc.Features {
			return nil, fmt.Errorf("model artifact %s: components row %d has %d columns, features is %d", path, r, len(row), doc.Features)
		}
	}

	base := matrixArtifact{
		kind:       doc.Kind,
		rank:       doc.Rank,
		features:   doc.Features,
		components: doc.Components,
	}

	if doc.Kind == KindNMFProjection {
		return &projectionArtifact{matrixArtifact: base}, nil
	}
	return &base, nil
}
