package cli

import (
	"errors"
	"reflect"
	"testing"

	"careercompass/internal/model"
)

func opts(ids ...string) []model.Option {
	out := make([]model.Option, len(ids))
	for i, id := range ids {
		out[i] = model.Option{ID: id, Label: "Option " + id}
	}
	return out
}

func TestParseAnswer(t *testing.T) {
	multi := &model.Question{ID: "m", Kind: model.KindMultiSelect, Options: opts("a", "b", "c")}
	rank := &model.Question{ID: "r", Kind: model.KindRanking, Options: opts("a", "b", "c")}
	slider := &model.Question{ID: "s", Kind: model.KindSlider, Min: 1, Max: 10}
	grid := &model.Question{ID: "g", Kind: model.KindSkillGrid, Skills: []model.SkillScale{
		{Name: "coding", Dimension: model.Investigative},
		{Name: "drawing", Dimension: model.Artistic},
	}}
	single := &model.Question{ID: "c", Kind: model.KindSingleChoice, Options: opts("x", "y")}
	scenario := &model.Question{ID: "sc", Kind: model.KindScenario, Options: opts("x", "y")}

	tests := []struct {
		name  string
		q     *model.Question
		input string
		want  model.Answer
	}{
		{"multi", multi, "3, 1", model.MultiSelect{OptionIDs: []string{"c", "a"}}},
		{"ranking", rank, "2,3,1", model.Ranking{OptionIDs: []string{"b", "c", "a"}}},
		{"slider", slider, " 7 ", model.Slider{Value: 7}},
		{"skill grid", grid, "8,3", model.SkillGrid{Ratings: map[string]int{"coding": 8, "drawing": 3}}},
		{"skill grid skips blanks", grid, ",6", model.SkillGrid{Ratings: map[string]int{"drawing": 6}}},
		{"single", single, "2", model.SingleChoice{OptionID: "y"}},
		{"scenario", scenario, "1", model.ScenarioChoice{OptionID: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnswer(tt.q, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseAnswerRejects(t *testing.T) {
	multi := &model.Question{ID: "m", Kind: model.KindMultiSelect, Options: opts("a", "b")}
	rank := &model.Question{ID: "r", Kind: model.KindRanking, Options: opts("a", "b", "c")}
	slider := &model.Question{ID: "s", Kind: model.KindSlider, Min: 1, Max: 10}
	grid := &model.Question{ID: "g", Kind: model.KindSkillGrid, Skills: []model.SkillScale{{Name: "coding", Dimension: model.Investigative}}}
	single := &model.Question{ID: "c", Kind: model.KindSingleChoice, Options: opts("x", "y")}

	tests := []struct {
		name  string
		q     *model.Question
		input string
		shape bool // rejected by model.CheckAnswer rather than by parsing
	}{
		{"empty", multi, "", false},
		{"out of range option", multi, "3", false},
		{"not a number", multi, "a", false},
		{"duplicate option", multi, "1,1", true},
		{"partial ranking", rank, "1,2", true},
		{"slider below min", slider, "0", true},
		{"slider not a number", slider, "seven", false},
		{"rating too high", grid, "11", true},
		{"too many ratings", grid, "1,2", false},
		{"no ratings", grid, "", true},
		{"two picks for single", single, "1,2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAnswer(tt.q, tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, model.ErrInvalidAnswerShape); got != tt.shape {
				t.Fatalf("shape error = %v, want %v (%v)", got, tt.shape, err)
			}
		})
	}
}

func TestBuildProfile(t *testing.T) {
	p, err := buildProfile("class_10", "", -1)
	if err != nil || p.Marks != nil || p.Stream != "" {
		t.Fatalf("unexpected profile %+v (%v)", p, err)
	}

	p, err = buildProfile("class_12", "commerce", 72.5)
	if err != nil || p.Marks == nil || *p.Marks != 72.5 {
		t.Fatalf("unexpected profile %+v (%v)", p, err)
	}

	for _, bad := range [][2]string{{"class_9", ""}, {"class_12", "medicine"}} {
		if _, err := buildProfile(bad[0], bad[1], -1); err == nil {
			t.Fatalf("expected %v to be rejected", bad)
		}
	}
	if _, err := buildProfile("class_12", "", 101); err == nil {
		t.Fatal("expected marks over 100 to be rejected")
	}
}
