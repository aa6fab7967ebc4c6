// Package matcher ranks a course catalog against a student's interest vector
// and declared profile. Output is deterministic: equal scores keep catalog order.
package matcher

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"careercompass/internal/model"
)

// Weights control how the match score is composed
type Weights struct {
	Similarity  float64 `koanf:"similarity" validate:"gte=0,lte=1"`
	StreamBonus float64 `koanf:"stream_bonus" validate:"gte=0,lte=100"`
	MarksBonus  float64 `koanf:"marks_bonus" validate:"gte=0,lte=100"`
}

// DefaultWeights: interest overlap dominates, stream match outweighs marks.
func DefaultWeights() Weights {
	return Weights{Similarity: 0.80, StreamBonus: 15, MarksBonus: 5}
}

// Step reports how many courses a filter kept
type Step struct {
	Initial int
	Dropped int
	Left    int
}

type Matcher struct {
	weights Weights
	log     zerolog.Logger
}

type Option func(*Matcher)

// WithLogger attaches a logger for filter-step debug lines
func WithLogger(l zerolog.Logger) Option {
	return func(m *Matcher) { m.log = l }
}

func New(w Weights, opts ...Option) *Matcher {
	m := &Matcher{weights: w, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match returns every course eligible for the student's class level, scored,
// explained and sorted by score descending. Class-level eligibility is a hard
// filter; every other factor only adds to the score.
func (m *Matcher) Match(score model.ScoreVector, profile model.StudentProfile, courses []model.Course) []model.Recommendation {
	eligible, step := filterClassLevel(courses, profile.ClassLevel)
	m.log.Debug().
		Str("filter", "class_level").
		Str("class_level", string(profile.ClassLevel)).
		Int("initial", step.Initial).
		Int("dropped", step.Dropped).
		Int("left", step.Left).
		Msg("course filter applied")

	recs := make([]model.Recommendation, 0, len(eligible))
	for i := range eligible {
		recs = append(recs, m.score(score, profile, &eligible[i]))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs
}

func filterClassLevel(courses []model.Course, level model.ClassLevel) ([]model.Course, Step) {
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if c.EligibleFor(level) {
			out = append(out, c)
		}
	}
	return out, Step{Initial: len(courses), Dropped: len(courses) - len(out), Left: len(out)}
}

func (m *Matcher) score(v model.ScoreVector, profile model.StudentProfile, c *model.Course) model.Recommendation {
	rec := model.Recommendation{CourseID: c.ID, Name: c.Name, Stream: c.Stream}

	courseVec := c.Profile.Vector()
	sim := Cosine(v, courseVec)
	total := m.weights.Similarity * sim * 100
	if sim > 0 {
		rec.Reasons = append(rec.Reasons, interestReason(v, courseVec))
	}

	if profile.Stream != "" && profile.Stream == c.Stream {
		total += m.weights.StreamBonus
		rec.Reasons = append(rec.Reasons, fmt.Sprintf("Aligns with your declared %s stream", c.Stream.Title()))
	}

	if profile.Marks != nil && c.MinMarks > 0 && *profile.Marks >= c.MinMarks {
		total += m.weights.MarksBonus
		rec.Reasons = append(rec.Reasons, fmt.Sprintf("Your marks (%s%%) meet the %s%% eligibility threshold",
			formatMarks(*profile.Marks), formatMarks(c.MinMarks)))
	}

	if len(rec.Reasons) == 0 {
		rec.Reasons = append(rec.Reasons, fmt.Sprintf("Open to %s students", profile.ClassLevel.Title()))
	}

	rec.Score = round1(math.Min(math.Max(total, 0), 100))
	return rec
}

// Cosine is the cosine similarity of two vectors; 0 when either is zero
func Cosine(a, b model.ScoreVector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return a.Dot(b) / (na * nb)
}

// interestReason names the (up to two) dimensions contributing most to the overlap
func interestReason(v, course model.ScoreVector) string {
	var overlap model.ScoreVector
	for _, d := range model.Dimensions {
		overlap = overlap.Add(d, v.Get(d)*course.Get(d))
	}
	top := overlap.Top(2)

	names := make([]string, len(top))
	for i, d := range top {
		names[i] = string(d)
	}
	return fmt.Sprintf("Matches your %s interests", strings.Join(names, " and "))
}

func formatMarks(x float64) string {
	if x == math.Trunc(x) {
		return fmt.Sprintf("%.0f", x)
	}
	return fmt.Sprintf("%.1f", x)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
