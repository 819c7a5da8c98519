package scoring

import "log"

// Scorer produces job readiness scores. With a model it builds a feature
// vector and clamps the prediction; without one it runs the fallback formula.
type Scorer struct {
	model Model
}

// NewScorer creates a Scorer. A nil model selects the fallback strategy for
// every call.
func NewScorer(model Model) *Scorer {
	return &Scorer{model: model}
}

// Score returns the readiness score for userSkills against roleID, always in
// [0,100]. A model prediction failure degrades to the fallback score for that
// call; it is logged, never surfaced.
func (s *Scorer) Score(userSkills map[string]string, roleID string) int {
	if s == nil || s.model == nil {
		return FallbackScore(userSkills, roleID)
	}

	vector := BuildFeatureVector(userSkills, roleID, s.model.Features())
	raw, err := s.model.Predict(vector)
	if err != nil {
		log.Printf("scoring: model prediction failed, using fallback: %v", err)
		return FallbackScore(userSkills, roleID)
	}

	return clampScore(raw)
}

// clampScore forces a raw model output into [0,100] and truncates to int, so
// a misbehaving model cannot produce out-of-range results.
func clampScore(raw float64) int {
	if raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return int(raw)
}
