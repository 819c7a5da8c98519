package scoring

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/skillsync/internal/schemas"
)

// ModelArtifactSchema is the repo-relative path of the JSON Schema used to
// validate model artifacts before they are accepted.
const ModelArtifactSchema = "schemas/model_artifact.schema.json"

// Model is the predictive capability injected into the Scorer. Implementations
// must be safe for concurrent use; Predict receives the feature vector in the
// order declared by Features.
type Model interface {
	Features() []string
	Predict(features []float64) (float64, error)
}

// ModelLoadError represents a failure to load or validate a model artifact.
// Callers recover by running the fallback strategy.
type ModelLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ModelLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model load error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("model load error for %s: %s", e.Path, e.Message)
}

func (e *ModelLoadError) Unwrap() error {
	return e.Cause
}

// LinearModel is a precomputed linear scoring function: the dot product of
// the feature vector with per-feature weights, plus a bias term.
type LinearModel struct {
	features []string
	weights  []float64
	bias     float64
}

// Features returns the ordered feature names the model expects.
func (m *LinearModel) Features() []string {
	return m.features
}

// Predict computes the raw readiness score for a feature vector. The caller
// is responsible for clamping the output into the score range.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.features) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(features), len(m.features))
	}
	score := m.bias
	for i, v := range features {
		score += m.weights[i] * v
	}
	return score, nil
}

// modelArtifact mirrors the on-disk JSON artifact.
type modelArtifact struct {
	Features []string           `json:"features"`
	Weights  map[string]float64 `json:"weights"`
	Bias     float64            `json:"bias"`
}

// LoadModel reads a linear model artifact from path, validating it against
// the artifact schema first. Any failure returns a *ModelLoadError; callers
// log a degraded-mode notice and continue with the fallback strategy.
func LoadModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelLoadError{Path: path, Message: "cannot read artifact", Cause: err}
	}

	schemaPath := schemas.ResolveSchemaPath(ModelArtifactSchema)
	if schemaPath == "" {
		return nil, &ModelLoadError{Path: path, Message: "artifact schema not found: " + ModelArtifactSchema}
	}
	if err := schemas.ValidateBytes(schemaPath, data); err != nil {
		return nil, &ModelLoadError{Path: path, Message: "artifact failed schema validation", Cause: err}
	}

	var artifact modelArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, &ModelLoadError{Path: path, Message: "cannot parse artifact", Cause: err}
	}

	// Features without a declared weight contribute 0.
	weights := make([]float64, len(artifact.Features))
	for i, name := range artifact.Features {
		weights[i] = artifact.Weights[name]
	}

	return &LinearModel{
		features: artifact.Features,
		weights:  weights,
		bias:     artifact.Bias,
	}, nil
}
