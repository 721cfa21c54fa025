package scoring

import (
	"errors"

	"careerfit/internal/model"
)

// ErrSectionFrozen is returned when recording into a completed section
var ErrSectionFrozen = errors.New("section already completed")

// Collector accumulates one section's answers until the section is completed
type Collector struct {
	section model.SectionKind
	answers model.SectionAnswerMap
	frozen  bool
}

// NewCollector starts an empty collector for a section
func NewCollector(section model.SectionKind) *Collector {
	return &Collector{
		section: section,
		answers: make(model.SectionAnswerMap),
	}
}

// RestoreCollector rebuilds a collector from persisted state
func RestoreCollector(section model.SectionKind, answers model.SectionAnswerMap, frozen bool) *Collector {
	c := NewCollector(section)
	for id, a := range answers {
		c.answers[id] = a
	}
	c.frozen = frozen
	return c
}

// Section returns the section this collector belongs to
func (c *Collector) Section() model.SectionKind {
	return c.section
}

// Record stores or overwrites the answer to a question. Values are not
// checked against the question type; mismatches simply score poorly.
func (c *Collector) Record(questionID string, value model.Answer) error {
	if c.frozen {
		return ErrSectionFrozen
	}
	c.answers[questionID] = value
	return nil
}

// Current returns a snapshot of the answers recorded so far
func (c *Collector) Current() model.SectionAnswerMap {
	return c.answers.Clone()
}

// Freeze completes the section and returns its final answer map.
// Freezing twice returns the same answers.
func (c *Collector) Freeze() model.SectionAnswerMap {
	c.frozen = true
	return c.answers.Clone()
}

// Frozen reports whether the section has been completed
func (c *Collector) Frozen() bool {
	return c.frozen
}

// Len returns the number of answered questions
func (c *Collector) Len() int {
	return len(c.answers)
}
