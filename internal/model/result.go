package model

import "time"

// Recommendation is the categorical verdict derived from the overall score
type Recommendation string

const (
	RecommendationYes   Recommendation = "YES"
	RecommendationMaybe Recommendation = "MAYBE"
	RecommendationNo    Recommendation = "NO"
)

// SectionScore is one section's 0-100 score and its derived category breakdown
type SectionScore struct {
	Overall    int            `json:"overall" bson:"overall"`
	Categories map[string]int `json:"categories" bson:"categories"`
}

// PsychometricBlock is the psychometric tab of the report
type PsychometricBlock struct {
	SectionScore      `bson:",inline"`
	QuestionsAnswered int `json:"questionsAnswered" bson:"questionsAnswered"`
}

// TechnicalBlock is the technical tab of the report.
// CorrectAnswers always equals TotalQuestions: both count answered questions,
// no answer key is ever consulted.
type TechnicalBlock struct {
	SectionScore   `bson:",inline"`
	CorrectAnswers int `json:"correctAnswers" bson:"correctAnswers"`
	TotalQuestions int `json:"totalQuestions" bson:"totalQuestions"`
}

// WiscarBlock is the FB6 index tab of the report
type WiscarBlock struct {
	SectionScore      `bson:",inline"`
	QuestionsAnswered int `json:"questionsAnswered" bson:"questionsAnswered"`
}

// CareerMatch is a templated career suggestion
type CareerMatch struct {
	Title       string   `json:"title" bson:"title"`
	MatchScore  int      `json:"matchScore" bson:"matchScore"`
	SalaryRange string   `json:"salaryRange" bson:"salaryRange"`
	Description string   `json:"description" bson:"description"`
	Skills      []string `json:"skills" bson:"skills"`
}

// SkillGap compares a derived technical level with a target level
type SkillGap struct {
	Skill         string `json:"skill" bson:"skill"`
	CurrentLevel  int    `json:"currentLevel" bson:"currentLevel"` // 0-10
	RequiredLevel int    `json:"requiredLevel" bson:"requiredLevel"`
	Gap           int    `json:"gap" bson:"gap"`
	Priority      string `json:"priority" bson:"priority"` // "high", "medium", "low"
}

// ImprovementArea is a weak category with canned tips
type ImprovementArea struct {
	Area    string      `json:"area" bson:"area"`
	Section SectionKind `json:"section" bson:"section"`
	Score   int         `json:"score" bson:"score"`
	Tips    []string    `json:"tips" bson:"tips"`
}

// LearningStep is one phase of the suggested learning path
type LearningStep struct {
	Phase    int      `json:"phase" bson:"phase"`
	Title    string   `json:"title" bson:"title"`
	Duration string   `json:"duration" bson:"duration"`
	Focus    []string `json:"focus" bson:"focus"`
	Current  bool     `json:"current" bson:"current"` // Where the participant should start
}

// AssessmentResult is the terminal report consumed by the renderer
type AssessmentResult struct {
	AssessmentID         string            `json:"assessmentId,omitempty" bson:"assessmentId"`
	SessionID            string            `json:"sessionId,omitempty" bson:"sessionId"`
	OverallScore         int               `json:"overallScore" bson:"overallScore"`
	ConfidenceScore      float64           `json:"confidenceScore" bson:"confidenceScore"` // overallScore/100, not an interval
	Recommendation       Recommendation    `json:"recommendation" bson:"recommendation"`
	RecommendationReason string            `json:"recommendationReason" bson:"recommendationReason"`
	Psychometric         PsychometricBlock `json:"psychometric" bson:"psychometric"`
	Technical            TechnicalBlock    `json:"technical" bson:"technical"`
	Wiscar               WiscarBlock       `json:"wiscar" bson:"wiscar"`
	CareerMatches        []CareerMatch     `json:"careerMatches" bson:"careerMatches"`
	SkillGaps            []SkillGap        `json:"skillGaps" bson:"skillGaps"`
	ImprovementAreas     []ImprovementArea `json:"improvementAreas" bson:"improvementAreas"`
	LearningPath         []LearningStep    `json:"learningPath" bson:"learningPath"`
	CompletedAt          *time.Time        `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// Standing places a result within the distribution of an assessment's results
type Standing struct {
	Rank       int64 `json:"rank"` // 1 is best
	Total      int64 `json:"total"`
	Percentile int   `json:"percentile"` // Share of results strictly below this one
}
