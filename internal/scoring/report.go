package scoring

import (
	"sort"

	"careerfit/internal/model"
)

// ReportInput is everything the assembler needs: the three scored sections
// and how many questions were answered in each.
type ReportInput struct {
	Psychometric model.SectionScore
	Technical    model.SectionScore
	Wiscar       model.SectionScore
	Answered     map[model.SectionKind]int
}

// Score is the scoring boundary: section answers in, full report out.
// It never fails; sparse input degrades to default scores.
func Score(answers model.SectionAnswers) model.AssessmentResult {
	return Assemble(ReportInput{
		Psychometric: ScoreSectionWithCategories(model.SectionPsychometric, answers.Psychometric),
		Technical:    ScoreSectionWithCategories(model.SectionTechnical, answers.Technical),
		Wiscar:       ScoreSectionWithCategories(model.SectionWiscar, answers.Wiscar),
		Answered: map[model.SectionKind]int{
			model.SectionPsychometric: len(answers.Psychometric),
			model.SectionTechnical:    len(answers.Technical),
			model.SectionWiscar:       len(answers.Wiscar),
		},
	})
}

// Assemble packages scored sections into the report shape
func Assemble(in ReportInput) model.AssessmentResult {
	agg := AggregateSections(in.Psychometric.Overall, in.Technical.Overall, in.Wiscar.Overall)
	technicalAnswered := in.Answered[model.SectionTechnical]

	return model.AssessmentResult{
		OverallScore:         agg.OverallScore,
		ConfidenceScore:      agg.ConfidenceScore,
		Recommendation:       agg.Recommendation,
		RecommendationReason: agg.RecommendationReason,
		Psychometric: model.PsychometricBlock{
			SectionScore:      in.Psychometric,
			QuestionsAnswered: in.Answered[model.SectionPsychometric],
		},
		Technical: model.TechnicalBlock{
			SectionScore:   in.Technical,
			CorrectAnswers: technicalAnswered,
			TotalQuestions: technicalAnswered,
		},
		Wiscar: model.WiscarBlock{
			SectionScore:      in.Wiscar,
			QuestionsAnswered: in.Answered[model.SectionWiscar],
		},
		CareerMatches:    careerMatches(agg.OverallScore),
		SkillGaps:        skillGaps(in.Technical),
		ImprovementAreas: improvementAreas(in),
		LearningPath:     learningPath(agg.Recommendation),
	}
}

func careerMatches(overall int) []model.CareerMatch {
	matches := make([]model.CareerMatch, 0, len(careerTemplates))
	for _, t := range careerTemplates {
		skills := make([]string, len(t.skills))
		copy(skills, t.skills)
		matches = append(matches, model.CareerMatch{
			Title:       t.title,
			MatchScore:  round(clamp(float64(overall+t.offset), 0, 100)),
			SalaryRange: t.salaryRange,
			Description: t.description,
			Skills:      skills,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}

func skillGaps(technical model.SectionScore) []model.SkillGap {
	gaps := make([]model.SkillGap, 0, len(skillTargets))
	for _, t := range skillTargets {
		score, ok := technical.Categories[t.category]
		if !ok {
			score = technical.Overall
		}
		current := round(float64(score) / 10)
		gap := t.requiredLevel - current
		if gap < 0 {
			gap = 0
		}
		gaps = append(gaps, model.SkillGap{
			Skill:         t.label,
			CurrentLevel:  current,
			RequiredLevel: t.requiredLevel,
			Gap:           gap,
			Priority:      gapPriority(gap),
		})
	}
	return gaps
}

func gapPriority(gap int) string {
	switch {
	case gap >= 3:
		return "high"
	case gap >= 1:
		return "medium"
	default:
		return "low"
	}
}

const maxImprovementAreas = 3

type categoryScore struct {
	section model.SectionKind
	order   int
	name    string
	score   int
}

func improvementAreas(in ReportInput) []model.ImprovementArea {
	sections := []struct {
		kind  model.SectionKind
		score model.SectionScore
	}{
		{model.SectionPsychometric, in.Psychometric},
		{model.SectionTechnical, in.Technical},
		{model.SectionWiscar, in.Wiscar},
	}

	var all []categoryScore
	for i, s := range sections {
		for _, name := range CategoryNames(s.kind) {
			score, ok := s.score.Categories[name]
			if !ok {
				continue
			}
			all = append(all, categoryScore{section: s.kind, order: i, name: name, score: score})
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score < all[j].score
		}
		if all[i].order != all[j].order {
			return all[i].order < all[j].order
		}
		return all[i].name < all[j].name
	})

	if len(all) > maxImprovementAreas {
		all = all[:maxImprovementAreas]
	}

	areas := make([]model.ImprovementArea, 0, len(all))
	for _, c := range all {
		areas = append(areas, model.ImprovementArea{
			Area:    categoryLabel(c.name),
			Section: c.section,
			Score:   c.score,
			Tips:    tipsFor(c.name),
		})
	}
	return areas
}

func learningPath(rec model.Recommendation) []model.LearningStep {
	start := startPhase(rec)
	steps := make([]model.LearningStep, 0, len(learningPhases))
	for i, p := range learningPhases {
		focus := make([]string, len(p.focus))
		copy(focus, p.focus)
		steps = append(steps, model.LearningStep{
			Phase:    i + 1,
			Title:    p.title,
			Duration: p.duration,
			Focus:    focus,
			Current:  i+1 == start,
		})
	}
	return steps
}
