package model

import (
	"reflect"
	"testing"
)

func TestScoreVectorTopKeepsDimensionOrderOnTies(t *testing.T) {
	v := ScoreVector{}.
		Add(Artistic, 4).
		Add(Realistic, 4).
		Add(Social, 9)

	got := v.Top(3)
	want := []Dimension{Social, Realistic, Artistic}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := v.Top(1); !reflect.DeepEqual(got, []Dimension{Social}) {
		t.Fatalf("expected [social], got %v", got)
	}
}

func TestScoreVectorTopSkipsZero(t *testing.T) {
	if got := (ScoreVector{}).Top(2); len(got) != 0 {
		t.Fatalf("expected no dimensions, got %v", got)
	}
}

func TestScoreVectorClamp(t *testing.T) {
	v := ScoreVector{Realistic: -3, Investigative: 250, Artistic: 40}.Clamp(MaxDimensionScore)
	want := ScoreVector{Realistic: 0, Investigative: 100, Artistic: 40}
	if v != want {
		t.Fatalf("expected %+v, got %+v", want, v)
	}
}

func TestWeightsVectorIgnoresUnknownDimensions(t *testing.T) {
	v := Weights{Investigative: 2, Dimension("spiritual"): 5}.Vector()
	if v != (ScoreVector{Investigative: 2}) {
		t.Fatalf("unexpected vector %+v", v)
	}
}

func TestDimensionTitle(t *testing.T) {
	if got := Investigative.Title(); got != "Investigative" {
		t.Fatalf("expected Investigative, got %s", got)
	}
	if got := StreamScience.Title(); got != "Science" {
		t.Fatalf("expected Science, got %s", got)
	}
}
