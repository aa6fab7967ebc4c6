package session

import (
	"sort"
	"testing"

	"careercompass/internal/catalog"
	"careercompass/internal/model"
)

func newMachine(t *testing.T) *Machine {
	t.Helper()
	bank, err := catalog.DefaultBank()
	if err != nil {
		t.Fatalf("default bank: %v", err)
	}
	return NewMachine(bank)
}

// leaningAnswer picks, for any question, the answer that favours dimension d
func leaningAnswer(q *model.Question, d model.Dimension) model.Answer {
	best := func() string {
		id, top := "", -1.0
		for _, o := range q.Options {
			if w := o.Weights[d]; w > top {
				id, top = o.ID, w
			}
		}
		return id
	}

	switch q.Kind {
	case model.KindSingleChoice:
		return model.SingleChoice{OptionID: best()}
	case model.KindScenario:
		return model.ScenarioChoice{OptionID: best()}
	case model.KindMultiSelect:
		var ids []string
		for _, o := range q.Options {
			if o.Weights[d] > 0 {
				ids = append(ids, o.ID)
			}
		}
		if len(ids) == 0 {
			ids = []string{best()}
		}
		return model.MultiSelect{OptionIDs: ids}
	case model.KindSlider:
		if q.Weights[d] > 0 {
			return model.Slider{Value: q.Max}
		}
		return model.Slider{Value: q.Min}
	case model.KindSkillGrid:
		ratings := make(map[string]int, len(q.Skills))
		for _, s := range q.Skills {
			ratings[s.Name] = 1
			if s.Dimension == d {
				ratings[s.Name] = 10
			}
		}
		return model.SkillGrid{Ratings: ratings}
	case model.KindRanking:
		opts := append([]model.Option(nil), q.Options...)
		sort.SliceStable(opts, func(i, j int) bool { return opts[i].Weights[d] > opts[j].Weights[d] })
		ids := make([]string, len(opts))
		for i, o := range opts {
			ids[i] = o.ID
		}
		return model.Ranking{OptionIDs: ids}
	}
	return nil
}

// firstAnswer picks the first declared option or the lowest slider value
func firstAnswer(q *model.Question) model.Answer {
	switch q.Kind {
	case model.KindSingleChoice:
		return model.SingleChoice{OptionID: q.Options[0].ID}
	case model.KindScenario:
		return model.ScenarioChoice{OptionID: q.Options[0].ID}
	case model.KindMultiSelect:
		return model.MultiSelect{OptionIDs: []string{q.Options[0].ID}}
	case model.KindSlider:
		return model.Slider{Value: q.Min}
	case model.KindSkillGrid:
		return model.SkillGrid{Ratings: map[string]int{q.Skills[0].Name: 5}}
	case model.KindRanking:
		ids := make([]string, len(q.Options))
		for i, o := range q.Options {
			ids[len(ids)-1-i] = o.ID
		}
		return model.Ranking{OptionIDs: ids}
	}
	return nil
}

// runToCompletion answers Next with pick until the machine reports completion
func runToCompletion(t *testing.T, m *Machine, s State, pick func(*model.Question) model.Answer) State {
	t.Helper()
	for steps := 0; !m.IsComplete(s); steps++ {
		if steps > 100 {
			t.Fatal("session never completed")
		}
		q := m.Next(s)
		var err error
		s, err = m.Advance(s, q.ID, pick(q))
		if err != nil {
			t.Fatalf("advance %s: %v", q.ID, err)
		}
	}
	return s
}

func sameLog(a, b State) bool {
	if a.Count() != b.Count() {
		return false
	}
	ea, eb := a.Entries(), b.Entries()
	for i := range ea {
		if ea[i].QuestionID != eb[i].QuestionID {
			return false
		}
	}
	return true
}
