package catalog

import (
	"errors"
	"testing"

	"careercompass/internal/model"
)

func TestDefaultCourseCatalog(t *testing.T) {
	courses, err := DefaultCourseCatalog()
	if err != nil {
		t.Fatalf("default courses failed validation: %v", err)
	}
	if courses.Len() != len(DefaultCourses()) {
		t.Fatalf("expected %d courses, got %d", len(DefaultCourses()), courses.Len())
	}

	levels := make(map[model.ClassLevel]int)
	for _, c := range courses.All() {
		for _, l := range c.ClassLevels {
			levels[l]++
		}
		for d, w := range c.Profile {
			if w < 0 {
				t.Fatalf("course %s has negative %s weight", c.ID, d)
			}
		}
	}
	if levels[model.Class10] == 0 || levels[model.Class12] == 0 {
		t.Fatalf("expected courses for both class levels, got %v", levels)
	}

	if _, ok := courses.Course("mbbs"); !ok {
		t.Fatal("expected mbbs in catalog")
	}
}

func TestNewCourseCatalogRejectsBadCourses(t *testing.T) {
	base := model.Course{
		ID:          "c1",
		Name:        "Course",
		Stream:      model.StreamScience,
		Profile:     model.Weights{model.Investigative: 1},
		ClassLevels: []model.ClassLevel{model.Class12},
	}

	tests := map[string]func(c *model.Course){
		"bad stream":      func(c *model.Course) { c.Stream = "sports" },
		"no class levels": func(c *model.Course) { c.ClassLevels = nil },
		"bad class level": func(c *model.Course) { c.ClassLevels = []model.ClassLevel{"class_8"} },
		"negative weight": func(c *model.Course) { c.Profile = model.Weights{model.Social: -0.5} },
		"unknown dim":     func(c *model.Course) { c.Profile = model.Weights{"spiritual": 1} },
		"marks too high":  func(c *model.Course) { c.MinMarks = 120 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			if _, err := NewCourseCatalog([]model.Course{c}); !errors.Is(err, model.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}

	if _, err := NewCourseCatalog([]model.Course{base, base}); !errors.Is(err, model.ErrConfiguration) {
		t.Fatalf("expected duplicate id to fail, got %v", err)
	}
}
