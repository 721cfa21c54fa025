package scoring

import "careerfit/internal/model"

// Recommendation thresholds on the overall score
const (
	YesThreshold = 75
	NoThreshold  = 50
)

const (
	reasonYes   = "Strong performance across all sections"
	reasonMaybe = "Moderate performance across sections"
	reasonNo    = "Performance below threshold in multiple sections"
)

// Aggregate is the cross-section verdict
type Aggregate struct {
	OverallScore         int
	ConfidenceScore      float64
	Recommendation       model.Recommendation
	RecommendationReason string
}

// AggregateSections combines the three section overalls with an unweighted mean.
// Section weights from the catalog are deliberately not applied.
func AggregateSections(psychometric, technical, wiscar int) Aggregate {
	overall := round(float64(psychometric+technical+wiscar) / 3)
	rec, reason := Recommend(overall)
	return Aggregate{
		OverallScore:         overall,
		ConfidenceScore:      float64(overall) / 100,
		Recommendation:       rec,
		RecommendationReason: reason,
	}
}

// Recommend maps an overall score to a verdict and its reason
func Recommend(overall int) (model.Recommendation, string) {
	switch {
	case overall >= YesThreshold:
		return model.RecommendationYes, reasonYes
	case overall < NoThreshold:
		return model.RecommendationNo, reasonNo
	default:
		return model.RecommendationMaybe, reasonMaybe
	}
}
