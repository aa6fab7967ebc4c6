// Package scoring turns recorded answers into a six-dimensional interest vector.
// Every function is pure: the same inputs always produce bit-identical vectors.
package scoring

import (
	"careercompass/internal/catalog"
	"careercompass/internal/model"
)

// RankScale converts a ranking position (0 = first choice) into a multiplier
// for that option's weights.
var RankScale = []float64{1.0, 0.8, 0.6, 0.4, 0.2}

// RankTail is the multiplier for positions past the end of RankScale.
const RankTail = 0.1

// Entry is one recorded (question, answer) pair in log order
type Entry struct {
	QuestionID string
	Answer     model.Answer
}

// RankWeight returns the multiplier for a zero-based rank position
func RankWeight(pos int) float64 {
	if pos < 0 {
		return 0
	}
	if pos < len(RankScale) {
		return RankScale[pos]
	}
	return RankTail
}

// Contribution returns the per-dimension deltas a single answer adds. The
// answer is assumed to already fit q; values outside the declared domain are
// ignored rather than reported.
func Contribution(q *model.Question, a model.Answer) model.ScoreVector {
	var v model.ScoreVector

	switch ans := a.(type) {
	case model.SingleChoice:
		if o, ok := q.Option(ans.OptionID); ok {
			v = v.Plus(o.Weights.Vector())
		}
	case model.ScenarioChoice:
		if o, ok := q.Option(ans.OptionID); ok {
			v = v.Plus(o.Weights.Vector())
		}
	case model.MultiSelect:
		// Summed in the question's option order so selection order never matters.
		selected := make(map[string]bool, len(ans.OptionIDs))
		for _, id := range ans.OptionIDs {
			selected[id] = true
		}
		for _, o := range q.Options {
			if selected[o.ID] {
				v = v.Plus(o.Weights.Vector())
			}
		}
	case model.Slider:
		if q.Max <= 0 {
			break
		}
		scale := float64(ans.Value) / float64(q.Max)
		for _, d := range model.Dimensions {
			v = v.Add(d, scale*q.Weights[d])
		}
	case model.SkillGrid:
		for _, s := range q.Skills {
			if rating, ok := ans.Ratings[s.Name]; ok {
				v = v.Add(s.Dimension, float64(rating))
			}
		}
	case model.Ranking:
		for pos, id := range ans.OptionIDs {
			o, ok := q.Option(id)
			if !ok {
				continue
			}
			w := RankWeight(pos)
			for _, d := range model.Dimensions {
				v = v.Add(d, w*o.Weights[d])
			}
		}
	}
	return v
}

// Aggregate scores a session log. Later entries for a question replace earlier
// ones, and contributions are summed in canonical catalog order so a log and
// the flat map it flattens to always produce bit-identical vectors. Entries
// for questions missing from the bank, or whose answer no longer fits the
// question, are skipped. Each dimension is clamped to [0, model.MaxDimensionScore].
func Aggregate(bank *catalog.QuestionBank, entries []Entry) model.ScoreVector {
	latest := make(map[string]model.Answer, len(entries))
	for _, e := range entries {
		latest[e.QuestionID] = e.Answer
	}
	return AggregateAnswers(bank, latest)
}

// AggregateAnswers scores a flat answer map
func AggregateAnswers(bank *catalog.QuestionBank, answers map[string]model.Answer) model.ScoreVector {
	var total model.ScoreVector
	for _, e := range CanonicalEntries(bank, answers) {
		q, _ := bank.Question(e.QuestionID)
		if model.CheckAnswer(q, e.Answer) != nil {
			continue
		}
		total = total.Plus(Contribution(q, e.Answer))
	}
	return total.Clamp(model.MaxDimensionScore)
}

// CanonicalEntries orders a flat answer map by catalog declaration order,
// dropping ids the bank does not know.
func CanonicalEntries(bank *catalog.QuestionBank, answers map[string]model.Answer) []Entry {
	entries := make([]Entry, 0, len(answers))
	for _, q := range bank.Ordered() {
		if a, ok := answers[q.ID]; ok {
			entries = append(entries, Entry{QuestionID: q.ID, Answer: a})
		}
	}
	return entries
}
