package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerfit/internal/model"
)

func scenarioAnswers() model.SectionAnswers {
	return model.SectionAnswers{
		Psychometric: model.SectionAnswerMap{
			"q1": model.NumberAnswer(4),
			"q2": model.TextAnswer("I really enjoy working with complex systems and solving hard problems daily"),
		},
		Technical: model.SectionAnswerMap{
			"q1": model.FlagAnswer(true),
		},
		Wiscar: model.SectionAnswerMap{},
	}
}

func TestScore_Scenario(t *testing.T) {
	result := Score(scenarioAnswers())

	assert.Equal(t, 85, result.Psychometric.Overall)
	assert.Equal(t, 80, result.Technical.Overall)
	assert.Equal(t, 70, result.Wiscar.Overall)

	assert.Equal(t, 78, result.OverallScore)
	assert.InDelta(t, 0.78, result.ConfidenceScore, 1e-9)
	assert.Equal(t, model.RecommendationYes, result.Recommendation)
	assert.Equal(t, "Strong performance across all sections", result.RecommendationReason)
}

func TestScore_CountsAnsweredQuestions(t *testing.T) {
	result := Score(scenarioAnswers())

	assert.Equal(t, 2, result.Psychometric.QuestionsAnswered)
	assert.Equal(t, 1, result.Technical.CorrectAnswers)
	assert.Equal(t, 1, result.Technical.TotalQuestions)
	assert.Equal(t, 0, result.Wiscar.QuestionsAnswered)
}

func TestScore_CategoryBreakdowns(t *testing.T) {
	result := Score(scenarioAnswers())

	assert.Len(t, result.Psychometric.Categories, 5)
	assert.Len(t, result.Technical.Categories, 4)
	assert.Len(t, result.Wiscar.Categories, 6)
	assert.Equal(t, 94, result.Psychometric.Categories["motivation"])
	assert.NotContains(t, result.Psychometric.Categories, "domainKnowledge")
}

func TestScore_AllSectionsEmpty(t *testing.T) {
	result := Score(model.SectionAnswers{})

	assert.Equal(t, 70, result.OverallScore)
	assert.Equal(t, model.RecommendationMaybe, result.Recommendation)
	assert.Equal(t, 0, result.Technical.TotalQuestions)
}

func TestScore_Deterministic(t *testing.T) {
	assert.Equal(t, Score(scenarioAnswers()), Score(scenarioAnswers()))
}

func TestAssemble_SkillGaps(t *testing.T) {
	result := Score(scenarioAnswers())

	require.Len(t, result.SkillGaps, 4)
	assert.Equal(t, model.SkillGap{
		Skill: "Logical Reasoning", CurrentLevel: 8, RequiredLevel: 8, Gap: 0, Priority: "low",
	}, result.SkillGaps[0])
	assert.Equal(t, model.SkillGap{
		Skill: "Numeracy", CurrentLevel: 8, RequiredLevel: 7, Gap: 0, Priority: "low",
	}, result.SkillGaps[1])
	assert.Equal(t, model.SkillGap{
		Skill: "Domain Knowledge", CurrentLevel: 7, RequiredLevel: 8, Gap: 1, Priority: "medium",
	}, result.SkillGaps[2])
}

func TestAssemble_SkillGapPriorityHigh(t *testing.T) {
	result := Score(model.SectionAnswers{
		Technical: model.SectionAnswerMap{"q1": model.FlagAnswer(false)},
	})

	for _, gap := range result.SkillGaps {
		assert.Equal(t, 2, gap.CurrentLevel, gap.Skill)
		assert.Equal(t, "high", gap.Priority, gap.Skill)
	}
}

func TestAssemble_CareerMatchesOrderedAndClamped(t *testing.T) {
	result := Score(scenarioAnswers())

	require.Len(t, result.CareerMatches, len(careerTemplates))
	assert.Equal(t, "Data Analyst", result.CareerMatches[0].Title)
	assert.Equal(t, 83, result.CareerMatches[0].MatchScore)
	for i := 1; i < len(result.CareerMatches); i++ {
		assert.GreaterOrEqual(t, result.CareerMatches[i-1].MatchScore, result.CareerMatches[i].MatchScore)
	}

	perfect := Assemble(ReportInput{
		Psychometric: model.SectionScore{Overall: 100},
		Technical:    model.SectionScore{Overall: 100},
		Wiscar:       model.SectionScore{Overall: 100},
	})
	assert.Equal(t, 100, perfect.CareerMatches[0].MatchScore)
}

func TestAssemble_ImprovementAreasAreLowestCategories(t *testing.T) {
	result := Score(scenarioAnswers())

	require.Len(t, result.ImprovementAreas, 3)
	assert.Equal(t, "Skill", result.ImprovementAreas[0].Area)
	assert.Equal(t, 66, result.ImprovementAreas[0].Score)
	assert.Equal(t, model.SectionWiscar, result.ImprovementAreas[0].Section)
	assert.Equal(t, "Real-World Fit", result.ImprovementAreas[1].Area)
	assert.Equal(t, "Ability to Learn", result.ImprovementAreas[2].Area)
	for _, area := range result.ImprovementAreas {
		assert.NotEmpty(t, area.Tips)
	}
}

func TestAssemble_LearningPathStartPhase(t *testing.T) {
	yes := Score(scenarioAnswers())
	require.Len(t, yes.LearningPath, 3)
	assert.False(t, yes.LearningPath[0].Current)
	assert.True(t, yes.LearningPath[1].Current)

	no := Score(model.SectionAnswers{
		Psychometric: model.SectionAnswerMap{"q1": model.FlagAnswer(false)},
		Technical:    model.SectionAnswerMap{"q1": model.FlagAnswer(false)},
		Wiscar:       model.SectionAnswerMap{"q1": model.FlagAnswer(false)},
	})
	assert.Equal(t, model.RecommendationNo, no.Recommendation)
	assert.True(t, no.LearningPath[0].Current)
}

func TestAssemble_TemplatesNotShared(t *testing.T) {
	first := Score(scenarioAnswers())
	first.CareerMatches[0].Skills[0] = "changed"
	first.ImprovementAreas[0].Tips[0] = "changed"

	second := Score(scenarioAnswers())
	assert.NotEqual(t, "changed", second.CareerMatches[0].Skills[0])
	assert.NotEqual(t, "changed", second.ImprovementAreas[0].Tips[0])
}
