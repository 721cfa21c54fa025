package scoring

import (
	"sort"

	"careerfit/internal/model"
)

// Category multipliers per section. These are display perturbations of the
// section overall, not independent measurements.
var (
	psychometricMultipliers = map[string]float64{
		"interest":    0.90,
		"motivation":  1.10,
		"personality": 0.95,
		"cognitive":   1.05,
		"growth":      0.98,
	}

	technicalMultipliers = map[string]float64{
		"logicalReasoning": 1.02,
		"numeracy":         0.97,
		"domainKnowledge":  0.93,
		"problemSolving":   1.00,
	}

	wiscarMultipliers = map[string]float64{
		"will":      0.98,
		"interest":  1.01,
		"skill":     0.94,
		"cognitive": 1.03,
		"ability":   0.98,
		"realWorld": 0.95,
	}
)

func multipliersFor(section model.SectionKind) map[string]float64 {
	switch section {
	case model.SectionPsychometric:
		return psychometricMultipliers
	case model.SectionTechnical:
		return technicalMultipliers
	case model.SectionWiscar:
		return wiscarMultipliers
	}
	return nil
}

// ExpandCategories derives the named sub-scores of a section from its overall.
// Results are not clamped: motivation at overall 100 reports 110.
func ExpandCategories(section model.SectionKind, overall int) map[string]int {
	multipliers := multipliersFor(section)
	out := make(map[string]int, len(multipliers))
	for name, m := range multipliers {
		out[name] = round(float64(overall) * m)
	}
	return out
}

// CategoryNames returns the category names of a section in a stable order
func CategoryNames(section model.SectionKind) []string {
	multipliers := multipliersFor(section)
	names := make([]string, 0, len(multipliers))
	for name := range multipliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScoreSectionWithCategories scores a section and expands its categories
func ScoreSectionWithCategories(section model.SectionKind, answers model.SectionAnswerMap) model.SectionScore {
	overall := ScoreSection(answers)
	return model.SectionScore{
		Overall:    overall,
		Categories: ExpandCategories(section, overall),
	}
}
