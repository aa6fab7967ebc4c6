package service

import (
	"context"
	"fmt"

	"careercompass/internal/cache"
	"careercompass/internal/catalog"
	"careercompass/internal/model"
	"careercompass/internal/repository"
)

// TrendingCourse is a course with how often it was recommended first
type TrendingCourse struct {
	CourseID string       `json:"courseId"`
	Name     string       `json:"name"`
	Stream   model.Stream `json:"stream"`
	Count    int          `json:"count"`
	Rank     int          `json:"rank"`
}

// CourseService serves the validated course catalog
type CourseService struct {
	catalog  *catalog.CourseCatalog
	trending cache.TrendingCache
}

// NewCourseService creates a new course service
func NewCourseService(courses *catalog.CourseCatalog, trending cache.TrendingCache) *CourseService {
	return &CourseService{
		catalog:  courses,
		trending: trending,
	}
}

// Catalog returns the catalog recommendations are matched against
func (s *CourseService) Catalog() *catalog.CourseCatalog {
	return s.catalog
}

// List returns courses in catalog order, optionally only those open to level
func (s *CourseService) List(level model.ClassLevel) []model.Course {
	all := s.catalog.All()
	if level == "" {
		return all
	}
	out := make([]model.Course, 0, len(all))
	for _, c := range all {
		if c.EligibleFor(level) {
			out = append(out, c)
		}
	}
	return out
}

// GetByID returns nil when the course does not exist
func (s *CourseService) GetByID(id string) *model.Course {
	c, ok := s.catalog.Course(id)
	if !ok {
		return nil
	}
	return &c
}

// Trending returns the most often top-recommended courses. Courses that have
// left the catalog since they were tallied are skipped.
func (s *CourseService) Trending(ctx context.Context, limit int) ([]TrendingCourse, error) {
	entries, err := s.trending.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read trending courses: %w", err)
	}
	out := make([]TrendingCourse, 0, len(entries))
	for _, e := range entries {
		c, ok := s.catalog.Course(e.CourseID)
		if !ok {
			continue
		}
		out = append(out, TrendingCourse{
			CourseID: c.ID,
			Name:     c.Name,
			Stream:   c.Stream,
			Count:    e.Count,
			Rank:     len(out) + 1,
		})
	}
	return out, nil
}

// LoadCourses returns the seeded catalog from MongoDB when one exists,
// otherwise the built-in course list.
func LoadCourses(ctx context.Context, repo repository.CourseRepo) (*catalog.CourseCatalog, bool, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to count seeded courses: %w", err)
	}
	if n == 0 {
		c, err := catalog.DefaultCourseCatalog()
		return c, false, err
	}

	courses, err := repo.List(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load seeded courses: %w", err)
	}
	c, err := catalog.NewCourseCatalog(courses)
	return c, true, err
}
