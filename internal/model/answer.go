package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Answer is the typed value recorded for one question. The set of
// implementations is closed: only the six shapes below satisfy it.
type Answer interface {
	Kind() QuestionKind
	isAnswer()
}

type SingleChoice struct {
	OptionID string `json:"optionId"`
}

type MultiSelect struct {
	OptionIDs []string `json:"optionIds"`
}

type ScenarioChoice struct {
	OptionID string `json:"optionId"`
}

type Slider struct {
	Value int `json:"value"`
}

// SkillGrid maps a declared skill name to a 0..10 self-rating
type SkillGrid struct {
	Ratings map[string]int `json:"ratings"`
}

// Ranking is a preference order over every option, most preferred first
type Ranking struct {
	OptionIDs []string `json:"optionIds"`
}

func (SingleChoice) Kind() QuestionKind   { return KindSingleChoice }
func (MultiSelect) Kind() QuestionKind    { return KindMultiSelect }
func (ScenarioChoice) Kind() QuestionKind { return KindScenario }
func (Slider) Kind() QuestionKind         { return KindSlider }
func (SkillGrid) Kind() QuestionKind      { return KindSkillGrid }
func (Ranking) Kind() QuestionKind        { return KindRanking }

func (SingleChoice) isAnswer()   {}
func (MultiSelect) isAnswer()    {}
func (ScenarioChoice) isAnswer() {}
func (Slider) isAnswer()         {}
func (SkillGrid) isAnswer()      {}
func (Ranking) isAnswer()        {}

// CheckAnswer verifies that a has the shape q declares and stays inside its domain
func CheckAnswer(q *Question, a Answer) error {
	if a == nil {
		return shapeErr(q, "missing answer")
	}
	if a.Kind() != q.Kind {
		return shapeErr(q, fmt.Sprintf("expected %s answer, got %s", q.Kind, a.Kind()))
	}

	switch v := a.(type) {
	case SingleChoice:
		return checkOption(q, v.OptionID)
	case ScenarioChoice:
		return checkOption(q, v.OptionID)
	case MultiSelect:
		if len(v.OptionIDs) == 0 {
			return shapeErr(q, "select at least one option")
		}
		seen := make(map[string]bool, len(v.OptionIDs))
		for _, id := range v.OptionIDs {
			if seen[id] {
				return shapeErr(q, fmt.Sprintf("option %q selected twice", id))
			}
			seen[id] = true
			if err := checkOption(q, id); err != nil {
				return err
			}
		}
	case Slider:
		if v.Value < q.Min || v.Value > q.Max {
			return shapeErr(q, fmt.Sprintf("value %d outside %d..%d", v.Value, q.Min, q.Max))
		}
	case SkillGrid:
		if len(v.Ratings) == 0 {
			return shapeErr(q, "rate at least one skill")
		}
		for name, rating := range v.Ratings {
			if _, ok := q.Skill(name); !ok {
				return shapeErr(q, fmt.Sprintf("unknown skill %q", name))
			}
			if rating < SkillRatingMin || rating > SkillRatingMax {
				return shapeErr(q, fmt.Sprintf("rating %d for %q outside %d..%d", rating, name, SkillRatingMin, SkillRatingMax))
			}
		}
	case Ranking:
		if len(v.OptionIDs) != len(q.Options) {
			return shapeErr(q, fmt.Sprintf("rank all %d options", len(q.Options)))
		}
		seen := make(map[string]bool, len(v.OptionIDs))
		for _, id := range v.OptionIDs {
			if seen[id] {
				return shapeErr(q, fmt.Sprintf("option %q ranked twice", id))
			}
			seen[id] = true
			if err := checkOption(q, id); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkOption(q *Question, id string) error {
	if _, ok := q.Option(id); !ok {
		return shapeErr(q, fmt.Sprintf("unknown option %q", id))
	}
	return nil
}

func shapeErr(q *Question, reason string) error {
	return &AnswerShapeError{QuestionID: q.ID, Kind: q.Kind, Reason: reason}
}

// EncodeAnswer renders a into the self-describing raw form the host persists:
// bare ids for single and scenario choices, a decimal integer for sliders,
// JSON arrays for multi-select and ranking, and a JSON object for skill grids.
func EncodeAnswer(a Answer) (string, error) {
	switch v := a.(type) {
	case SingleChoice:
		return v.OptionID, nil
	case ScenarioChoice:
		return v.OptionID, nil
	case Slider:
		return strconv.Itoa(v.Value), nil
	case MultiSelect:
		return marshalRaw(v.OptionIDs)
	case Ranking:
		return marshalRaw(v.OptionIDs)
	case SkillGrid:
		return marshalRaw(v.Ratings)
	}
	return "", fmt.Errorf("%w: cannot encode %T", ErrInvalidAnswerShape, a)
}

func marshalRaw(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode answer: %w", err)
	}
	return string(b), nil
}

// DecodeAnswer parses a raw persisted value for q and checks its shape
func DecodeAnswer(q *Question, raw string) (Answer, error) {
	var a Answer
	switch q.Kind {
	case KindSingleChoice:
		a = SingleChoice{OptionID: strings.TrimSpace(raw)}
	case KindScenario:
		a = ScenarioChoice{OptionID: strings.TrimSpace(raw)}
	case KindSlider:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, shapeErr(q, fmt.Sprintf("slider value %q is not an integer", raw))
		}
		a = Slider{Value: n}
	case KindMultiSelect:
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			return nil, shapeErr(q, "expected a JSON array of option ids")
		}
		a = MultiSelect{OptionIDs: ids}
	case KindRanking:
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			return nil, shapeErr(q, "expected a JSON array of option ids")
		}
		a = Ranking{OptionIDs: ids}
	case KindSkillGrid:
		var ratings map[string]int
		if err := json.Unmarshal([]byte(raw), &ratings); err != nil {
			return nil, shapeErr(q, "expected a JSON object of skill ratings")
		}
		a = SkillGrid{Ratings: ratings}
	default:
		return nil, shapeErr(q, fmt.Sprintf("unknown question kind %q", q.Kind))
	}

	if err := CheckAnswer(q, a); err != nil {
		return nil, err
	}
	return a, nil
}
