package scoring

import (
	"math"
	"testing"

	"careercompass/internal/catalog"
	"careercompass/internal/model"
)

func mustBank(t *testing.T) *catalog.QuestionBank {
	t.Helper()
	bank, err := catalog.DefaultBank()
	if err != nil {
		t.Fatalf("default bank: %v", err)
	}
	return bank
}

// sampleAnswer builds a valid answer for any question kind
func sampleAnswer(q *model.Question) model.Answer {
	ids := make([]string, len(q.Options))
	for i, o := range q.Options {
		ids[i] = o.ID
	}
	switch q.Kind {
	case model.KindSingleChoice:
		return model.SingleChoice{OptionID: ids[0]}
	case model.KindScenario:
		return model.ScenarioChoice{OptionID: ids[len(ids)-1]}
	case model.KindMultiSelect:
		return model.MultiSelect{OptionIDs: ids}
	case model.KindSlider:
		return model.Slider{Value: q.Max}
	case model.KindSkillGrid:
		ratings := make(map[string]int, len(q.Skills))
		for _, s := range q.Skills {
			ratings[s.Name] = 7
		}
		return model.SkillGrid{Ratings: ratings}
	case model.KindRanking:
		return model.Ranking{OptionIDs: ids}
	}
	return nil
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestContributionPerKind(t *testing.T) {
	choice := &model.Question{
		ID: "q", Kind: model.KindMultiSelect,
		Options: []model.Option{
			{ID: "a", Weights: model.Weights{model.Investigative: 2}},
			{ID: "b", Weights: model.Weights{model.Investigative: 1, model.Artistic: 3}},
		},
	}
	slider := &model.Question{ID: "s", Kind: model.KindSlider, Min: 1, Max: 10, Weights: model.Weights{model.Social: 3}}
	grid := &model.Question{ID: "g", Kind: model.KindSkillGrid, Skills: []model.SkillScale{
		{Name: "coding", Dimension: model.Investigative},
		{Name: "drawing", Dimension: model.Artistic},
	}}
	ranking := &model.Question{
		ID: "r", Kind: model.KindRanking,
		Options: []model.Option{
			{ID: "x", Weights: model.Weights{model.Realistic: 10}},
			{ID: "y", Weights: model.Weights{model.Enterprising: 10}},
		},
	}

	got := Contribution(choice, model.MultiSelect{OptionIDs: []string{"b", "a"}})
	if !approx(got.Investigative, 3) || !approx(got.Artistic, 3) {
		t.Fatalf("multi-select: unexpected %+v", got)
	}

	got = Contribution(slider, model.Slider{Value: 7})
	if !approx(got.Social, 2.1) {
		t.Fatalf("slider: expected social 2.1, got %+v", got)
	}

	got = Contribution(grid, model.SkillGrid{Ratings: map[string]int{"coding": 8, "drawing": 2}})
	if got.Investigative != 8 || got.Artistic != 2 {
		t.Fatalf("skill grid: unexpected %+v", got)
	}

	got = Contribution(ranking, model.Ranking{OptionIDs: []string{"y", "x"}})
	if !approx(got.Enterprising, 10) || !approx(got.Realistic, 8) {
		t.Fatalf("ranking: unexpected %+v", got)
	}
}

func TestRankWeightDescends(t *testing.T) {
	prev := math.Inf(1)
	for pos := 0; pos < len(RankScale)+3; pos++ {
		w := RankWeight(pos)
		if w > prev {
			t.Fatalf("rank weight rose at position %d: %v > %v", pos, w, prev)
		}
		prev = w
	}
	if RankWeight(len(RankScale)+5) != RankTail {
		t.Fatalf("expected tail weight %v", RankTail)
	}
}

func TestAggregateEmptyLogIsZero(t *testing.T) {
	bank := mustBank(t)
	if v := Aggregate(bank, nil); !v.IsZero() {
		t.Fatalf("expected zero vector, got %+v", v)
	}
}

func TestAggregateSkipsUnknownAndStaleAnswers(t *testing.T) {
	bank := mustBank(t)

	entries := []Entry{
		{QuestionID: "retired_question", Answer: model.Slider{Value: 5}},
		{QuestionID: "b_weekend", Answer: model.SingleChoice{OptionID: "no_longer_exists"}},
		{QuestionID: "b_subject", Answer: model.SingleChoice{OptionID: "science"}},
	}
	got := Aggregate(bank, entries)
	want := model.ScoreVector{Investigative: 3}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	bank := mustBank(t)

	var entries []Entry
	for _, q := range bank.Ordered() {
		entries = append(entries, Entry{QuestionID: q.ID, Answer: sampleAnswer(q)})
	}

	first := Aggregate(bank, entries)
	for i := 0; i < 20; i++ {
		if got := Aggregate(bank, entries); got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestAggregateIgnoresLogOrder(t *testing.T) {
	bank := mustBank(t)

	var entries []Entry
	for _, q := range bank.Ordered() {
		entries = append(entries, Entry{QuestionID: q.ID, Answer: sampleAnswer(q)})
	}
	reversed := make([]Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	if a, b := Aggregate(bank, entries), Aggregate(bank, reversed); a != b {
		t.Fatalf("log order changed the vector: %+v vs %+v", a, b)
	}
}

func TestAggregateLaterEntryReplacesEarlier(t *testing.T) {
	bank := mustBank(t)

	got := Aggregate(bank, []Entry{
		{QuestionID: "b_subject", Answer: model.SingleChoice{OptionID: "science"}},
		{QuestionID: "b_subject", Answer: model.SingleChoice{OptionID: "literature"}},
	})
	if got != (model.ScoreVector{Artistic: 3}) {
		t.Fatalf("expected only the latest answer to count, got %+v", got)
	}
}

// Adding an answer never lowers a dimension the question targets. Checked
// against the live catalog for every question.
func TestAggregateMonotonicOverLiveCatalog(t *testing.T) {
	bank := mustBank(t)

	for _, q := range bank.Ordered() {
		for _, o := range q.Options {
			for d, w := range o.Weights {
				if w < 0 {
					t.Fatalf("%s/%s: negative %s weight", q.ID, o.ID, d)
				}
			}
		}
		for d, w := range q.Weights {
			if w < 0 {
				t.Fatalf("%s: negative %s weight", q.ID, d)
			}
		}
	}

	ordered := bank.Ordered()
	for i, q := range ordered {
		var without []Entry
		for j, other := range ordered {
			if j != i && j%3 == 0 {
				without = append(without, Entry{QuestionID: other.ID, Answer: sampleAnswer(other)})
			}
		}
		with := append(append([]Entry(nil), without...), Entry{QuestionID: q.ID, Answer: sampleAnswer(q)})

		before := Aggregate(bank, without)
		after := Aggregate(bank, with)
		delta := Contribution(q, sampleAnswer(q))
		for _, d := range model.Dimensions {
			if after.Get(d) < before.Get(d) {
				t.Fatalf("%s lowered %s: %v -> %v", q.ID, d, before.Get(d), after.Get(d))
			}
			if delta.Get(d) > 0 && before.Get(d) < model.MaxDimensionScore && after.Get(d) <= before.Get(d) {
				t.Fatalf("%s targets %s but did not raise it", q.ID, d)
			}
		}
	}
}

func TestAggregateClampsToMax(t *testing.T) {
	bank := mustBank(t)

	ratings := map[string]int{}
	q, _ := bank.Question("sk_self_rating")
	for _, s := range q.Skills {
		ratings[s.Name] = 10
	}
	entries := []Entry{{QuestionID: q.ID, Answer: model.SkillGrid{Ratings: ratings}}}
	for _, other := range bank.Ordered() {
		entries = append(entries, Entry{QuestionID: other.ID, Answer: sampleAnswer(other)})
	}

	v := Aggregate(bank, entries)
	for _, d := range model.Dimensions {
		if v.Get(d) < 0 || v.Get(d) > model.MaxDimensionScore {
			t.Fatalf("%s out of bounds: %v", d, v.Get(d))
		}
	}
}
