package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"careercompass/internal/model"
)

// undoInput is what a student types at a free-text prompt to go back
const undoInput = "u"

// hint describes the expected input for prompts that are not a plain select
func hint(q *model.Question) string {
	switch q.Kind {
	case model.KindMultiSelect:
		return "Pick one or more, e.g. 1,3"
	case model.KindRanking:
		return fmt.Sprintf("Rank all %d, most preferred first, e.g. 2,1,3", len(q.Options))
	case model.KindSlider:
		return fmt.Sprintf("Enter %d-%d", q.Min, q.Max)
	case model.KindSkillGrid:
		return fmt.Sprintf("Rate each skill %d-%d in order, comma separated; leave blank to skip", model.SkillRatingMin, model.SkillRatingMax)
	}
	return ""
}

// writeChoices lists options or skills with the numbers the parsers accept
func writeChoices(w io.Writer, q *model.Question) {
	if q.Kind == model.KindSkillGrid {
		for i, s := range q.Skills {
			fmt.Fprintf(w, "  %d. %s\n", i+1, s.Name)
		}
		return
	}
	for i, o := range q.Options {
		fmt.Fprintf(w, "  %d. %s\n", i+1, o.Label)
	}
}

// parseAnswer turns free-text input into an answer for q. The result always
// passes model.CheckAnswer.
func parseAnswer(q *model.Question, input string) (model.Answer, error) {
	input = strings.TrimSpace(input)

	var (
		a   model.Answer
		err error
	)
	switch q.Kind {
	case model.KindMultiSelect:
		var ids []string
		ids, err = optionList(q, input)
		a = model.MultiSelect{OptionIDs: ids}
	case model.KindRanking:
		var ids []string
		ids, err = optionList(q, input)
		a = model.Ranking{OptionIDs: ids}
	case model.KindSlider:
		var n int
		n, err = strconv.Atoi(input)
		if err != nil {
			err = fmt.Errorf("enter a whole number")
		}
		a = model.Slider{Value: n}
	case model.KindSkillGrid:
		a, err = skillRatings(q, input)
	case model.KindSingleChoice, model.KindScenario:
		var ids []string
		ids, err = optionList(q, input)
		if err == nil && len(ids) != 1 {
			err = fmt.Errorf("pick exactly one option")
		}
		if err == nil {
			if q.Kind == model.KindScenario {
				a = model.ScenarioChoice{OptionID: ids[0]}
			} else {
				a = model.SingleChoice{OptionID: ids[0]}
			}
		}
	default:
		err = fmt.Errorf("unsupported question kind %q", q.Kind)
	}
	if err != nil {
		return nil, err
	}
	if err := model.CheckAnswer(q, a); err != nil {
		return nil, err
	}
	return a, nil
}

// optionList maps "2, 1,3" to option ids by 1-based position
func optionList(q *model.Question, input string) ([]string, error) {
	if input == "" {
		return nil, fmt.Errorf("enter at least one number")
	}
	parts := strings.Split(input, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 || n > len(q.Options) {
			return nil, fmt.Errorf("%q is not a number from 1 to %d", strings.TrimSpace(p), len(q.Options))
		}
		ids = append(ids, q.Options[n-1].ID)
	}
	return ids, nil
}

// skillRatings reads one rating per skill in declared order; blanks are skipped
func skillRatings(q *model.Question, input string) (model.SkillGrid, error) {
	parts := strings.Split(input, ",")
	if len(parts) > len(q.Skills) {
		return model.SkillGrid{}, fmt.Errorf("%d ratings for %d skills", len(parts), len(q.Skills))
	}
	ratings := make(map[string]int, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return model.SkillGrid{}, fmt.Errorf("rating for %s must be a whole number", q.Skills[i].Name)
		}
		ratings[q.Skills[i].Name] = n
	}
	return model.SkillGrid{Ratings: ratings}, nil
}
