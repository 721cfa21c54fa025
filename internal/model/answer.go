package model

import (
	"encoding/json"
	"fmt"
	"unicode/utf16"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnswerKind tags the runtime shape of an answer value
type AnswerKind int

const (
	AnswerUnknown AnswerKind = iota // null, objects, anything the scorer skips
	AnswerNumber                    // slider, likert
	AnswerText                      // text, selected multiple-choice value
	AnswerFlag                      // boolean
	AnswerChoices                   // multi-select
)

func (k AnswerKind) String() string {
	switch k {
	case AnswerNumber:
		return "number"
	case AnswerText:
		return "text"
	case AnswerFlag:
		return "flag"
	case AnswerChoices:
		return "choices"
	default:
		return "unknown"
	}
}

// Answer is a single response value. Exactly one payload field is meaningful,
// selected by Kind.
type Answer struct {
	kind    AnswerKind
	number  float64
	text    string
	flag    bool
	choices []string
}

// NumberAnswer builds a numeric answer
func NumberAnswer(n float64) Answer { return Answer{kind: AnswerNumber, number: n} }

// TextAnswer builds a free-text answer
func TextAnswer(s string) Answer { return Answer{kind: AnswerText, text: s} }

// FlagAnswer builds a boolean answer
func FlagAnswer(b bool) Answer { return Answer{kind: AnswerFlag, flag: b} }

// ChoicesAnswer builds a multi-select answer
func ChoicesAnswer(choices ...string) Answer {
	c := make([]string, len(choices))
	copy(c, choices)
	return Answer{kind: AnswerChoices, choices: c}
}

func (a Answer) Kind() AnswerKind { return a.kind }
func (a Answer) Number() float64 { return a.number }
func (a Answer) Text() string { return a.text }
func (a Answer) Flag() bool { return a.flag }
func (a Answer) Choices() []string { return a.choices }
func (a Answer) IsUnknown() bool { return a.kind == AnswerUnknown }
func (a Answer) ChoiceCount() int { return len(a.choices) }

// TextLength counts UTF-16 code units, matching how the web client measures answers
func (a Answer) TextLength() int {
	return len(utf16.Encode([]rune(a.text)))
}

// AnswerFromValue converts a decoded JSON/YAML value into an Answer
func AnswerFromValue(v interface{}) Answer {
	switch val := v.(type) {
	case float64:
		return NumberAnswer(val)
	case float32:
		return NumberAnswer(float64(val))
	case int:
		return NumberAnswer(float64(val))
	case int32:
		return NumberAnswer(float64(val))
	case int64:
		return NumberAnswer(float64(val))
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return Answer{}
		}
		return NumberAnswer(f)
	case string:
		return TextAnswer(val)
	case bool:
		return FlagAnswer(val)
	case []string:
		return ChoicesAnswer(val...)
	case primitive.A:
		return AnswerFromValue([]interface{}(val))
	case []interface{}:
		choices := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				choices = append(choices, s)
				continue
			}
			choices = append(choices, fmt.Sprint(item))
		}
		return Answer{kind: AnswerChoices, choices: choices}
	default:
		return Answer{}
	}
}

// Value returns the answer as a plain Go value
func (a Answer) Value() interface{} {
	switch a.kind {
	case AnswerNumber:
		return a.number
	case AnswerText:
		return a.text
	case AnswerFlag:
		return a.flag
	case AnswerChoices:
		return a.choices
	default:
		return nil
	}
}

// MarshalJSON encodes the answer as its bare value
func (a Answer) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value())
}

// UnmarshalJSON accepts any JSON value
func (a *Answer) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = AnswerFromValue(v)
	return nil
}

// MarshalBSONValue stores the bare value, null for unknown answers
func (a Answer) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if a.kind == AnswerUnknown {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(a.Value())
}

// UnmarshalBSONValue accepts any BSON value
func (a *Answer) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null || t == bsontype.Undefined {
		*a = Answer{}
		return nil
	}
	var v interface{}
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&v); err != nil {
		return err
	}
	*a = AnswerFromValue(v)
	return nil
}

// SectionAnswerMap holds one section's answers keyed by question id
type SectionAnswerMap map[string]Answer

// Clone returns an independent copy of the map
func (m SectionAnswerMap) Clone() SectionAnswerMap {
	out := make(SectionAnswerMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// SectionAnswers is the full input of the scoring boundary
type SectionAnswers struct {
	Psychometric SectionAnswerMap `json:"psychometric" bson:"psychometric"`
	Technical    SectionAnswerMap `json:"technical" bson:"technical"`
	Wiscar       SectionAnswerMap `json:"wiscar" bson:"wiscar"`
}

// For returns the answer map of a section (nil for unknown kinds)
func (s SectionAnswers) For(kind SectionKind) SectionAnswerMap {
	switch kind {
	case SectionPsychometric:
		return s.Psychometric
	case SectionTechnical:
		return s.Technical
	case SectionWiscar:
		return s.Wiscar
	}
	return nil
}
