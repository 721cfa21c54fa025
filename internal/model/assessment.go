package model

import "time"

// QuestionType defines how a question is presented
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeSlider         QuestionType = "slider"
	QuestionTypeBoolean        QuestionType = "boolean"
	QuestionTypeText           QuestionType = "text"
	QuestionTypeLikert         QuestionType = "likert"
	QuestionTypeScenario       QuestionType = "scenario"
)

// Valid reports whether t is one of the known question types
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeSlider, QuestionTypeBoolean,
		QuestionTypeText, QuestionTypeLikert, QuestionTypeScenario:
		return true
	}
	return false
}

// SectionKind identifies one of the three scored parts of an assessment
type SectionKind string

const (
	SectionPsychometric SectionKind = "psychometric"
	SectionTechnical    SectionKind = "technical"
	SectionWiscar       SectionKind = "wiscar" // FB6 composite readiness
)

// SectionKinds lists the scored sections in presentation order
var SectionKinds = []SectionKind{SectionPsychometric, SectionTechnical, SectionWiscar}

// Valid reports whether k is one of the scored sections
func (k SectionKind) Valid() bool {
	switch k {
	case SectionPsychometric, SectionTechnical, SectionWiscar:
		return true
	}
	return false
}

// Option is a selectable answer for multiple-choice and likert questions
type Option struct {
	ID    string  `json:"id" bson:"id" yaml:"id"`
	Label string  `json:"label" bson:"label" yaml:"label"`
	Value string  `json:"value" bson:"value" yaml:"value"`
	Score float64 `json:"score" bson:"score" yaml:"score"` // Display only, the scorer never reads it
}

// ScaleLabels names the two ends of a slider
type ScaleLabels struct {
	Min string `json:"min" bson:"min" yaml:"min"`
	Max string `json:"max" bson:"max" yaml:"max"`
}

// Scale bounds a slider question
type Scale struct {
	Min    float64     `json:"min" bson:"min" yaml:"min"`
	Max    float64     `json:"max" bson:"max" yaml:"max"`
	Labels ScaleLabels `json:"labels" bson:"labels" yaml:"labels"`
}

// Question is one prompt within a section
type Question struct {
	ID       string       `json:"id" bson:"id" yaml:"id"`
	Type     QuestionType `json:"type" bson:"type" yaml:"type"`
	Prompt   string       `json:"prompt" bson:"prompt" yaml:"prompt"`
	Category string       `json:"category,omitempty" bson:"category,omitempty" yaml:"category"` // Display grouping only
	Required bool         `json:"required" bson:"required" yaml:"required"`                     // UI gate, not enforced when scoring
	Options  []Option     `json:"options,omitempty" bson:"options,omitempty" yaml:"options"`
	Scale    *Scale       `json:"scale,omitempty" bson:"scale,omitempty" yaml:"scale"`
}

// Section groups the questions of one scored part
type Section struct {
	Type        SectionKind `json:"type" bson:"type" yaml:"type"`
	Title       string      `json:"title" bson:"title" yaml:"title"`
	Description string      `json:"description" bson:"description" yaml:"description"`
	Weight      int         `json:"weight" bson:"weight" yaml:"weight"` // Catalog metadata; the aggregate is an unweighted mean
	Questions   []Question  `json:"questions" bson:"questions" yaml:"questions"`
}

// Assessment is a quiz definition served by the catalog
type Assessment struct {
	ID          string    `json:"id" bson:"_id,omitempty" yaml:"-"`
	Slug        string    `json:"slug" bson:"slug" yaml:"slug"`
	Title       string    `json:"title" bson:"title" yaml:"title"`
	Description string    `json:"description" bson:"description" yaml:"description"`
	Category    string    `json:"category" bson:"category" yaml:"category"`
	DurationMin int       `json:"durationMinutes" bson:"durationMinutes" yaml:"durationMinutes"`
	Published   bool      `json:"published" bson:"published" yaml:"published"`
	Sections    []Section `json:"sections" bson:"sections" yaml:"sections"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt" yaml:"-"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt" yaml:"-"`
}

// Section returns the section of the given kind, or nil
func (a *Assessment) Section(kind SectionKind) *Section {
	for i := range a.Sections {
		if a.Sections[i].Type == kind {
			return &a.Sections[i]
		}
	}
	return nil
}

// HasQuestion reports whether the section defines a question with the given id
func (s *Section) HasQuestion(id string) bool {
	for _, q := range s.Questions {
		if q.ID == id {
			return true
		}
	}
	return false
}

// QuestionCount returns the number of questions across all sections
func (a *Assessment) QuestionCount() int {
	n := 0
	for _, s := range a.Sections {
		n += len(s.Questions)
	}
	return n
}
