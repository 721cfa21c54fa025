// Package scoring turns raw section answers into section scores, category
// breakdowns and the final assessment report. Everything here is pure and
// safe for concurrent use.
package scoring

import (
	"math"
	"sort"

	"careerfit/internal/model"
)

// DefaultSectionScore is returned for a section with nothing scorable in it
const DefaultSectionScore = 70

const answerMaxPoints = 100.0

// answerPoints returns the points an answer earns and the maximum it could
// have earned. Skipped answers return ok == false and count towards neither.
func answerPoints(a model.Answer) (points, maxPoints float64, ok bool) {
	switch a.Kind() {
	case model.AnswerNumber:
		n := a.Number()
		if n >= 1 && n <= 5 {
			return n / 5 * 100, answerMaxPoints, true
		}
		return math.Min(100, n*10), answerMaxPoints, true

	case model.AnswerText:
		length := a.TextLength()
		switch {
		case length == 0:
			return 0, 0, false
		case length > 50:
			return 90, answerMaxPoints, true
		case length > 20:
			return 70, answerMaxPoints, true
		default:
			return 50, answerMaxPoints, true
		}

	case model.AnswerFlag:
		if a.Flag() {
			return 80, answerMaxPoints, true
		}
		return 20, answerMaxPoints, true

	case model.AnswerChoices:
		if a.ChoiceCount() == 0 {
			return 0, 0, false
		}
		return math.Min(100, float64(a.ChoiceCount())*25), answerMaxPoints, true
	}
	return 0, 0, false
}

// ScoreSection computes a section's 0-100 score from its answers.
// An empty map, or one whose answers are all skipped, scores DefaultSectionScore.
func ScoreSection(answers model.SectionAnswerMap) int {
	if len(answers) == 0 {
		return DefaultSectionScore
	}

	// Sum in key order so float accumulation is identical across calls.
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var totalPoints, maxPossible float64
	for _, id := range ids {
		points, maxPoints, ok := answerPoints(answers[id])
		if !ok {
			continue
		}
		totalPoints += points
		maxPossible += maxPoints
	}

	if maxPossible == 0 {
		return DefaultSectionScore
	}

	percentage := totalPoints / maxPossible * 100
	return round(clamp(percentage, 0, 100))
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
