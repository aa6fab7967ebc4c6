package catalog

import (
	"fmt"

	"careercompass/internal/model"
	"careercompass/internal/validation"
)

// CourseCatalog is the validated, read-only course list in declaration order
type CourseCatalog struct {
	courses []model.Course
	byID    map[string]int
}

// NewCourseCatalog validates courses and keeps their declaration order
func NewCourseCatalog(courses []model.Course) (*CourseCatalog, error) {
	c := &CourseCatalog{
		courses: make([]model.Course, 0, len(courses)),
		byID:    make(map[string]int, len(courses)),
	}

	for i, course := range courses {
		path := fmt.Sprintf("courses[%d]", i)
		if err := validation.ValidateStruct(&course); err != nil {
			cerr := configErrFromValidation(err).(*model.ConfigurationError)
			cerr.Path = path + "." + cerr.Path
			return nil, cerr
		}
		if _, dup := c.byID[course.ID]; dup {
			return nil, &model.ConfigurationError{Path: path, Reason: fmt.Sprintf("duplicate course id %q", course.ID)}
		}
		if err := checkWeights(course.Profile); err != nil {
			return nil, &model.ConfigurationError{Path: path + ".profile", Reason: err.Error()}
		}
		c.byID[course.ID] = len(c.courses)
		c.courses = append(c.courses, course)
	}

	return c, nil
}

// All returns the courses in declaration order
func (c *CourseCatalog) All() []model.Course {
	return append([]model.Course(nil), c.courses...)
}

// Course looks up one course by id
func (c *CourseCatalog) Course(id string) (model.Course, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Course{}, false
	}
	return c.courses[i], true
}

func (c *CourseCatalog) Len() int { return len(c.courses) }

// DefaultCourseCatalog validates the built-in course list
func DefaultCourseCatalog() (*CourseCatalog, error) {
	return NewCourseCatalog(DefaultCourses())
}
