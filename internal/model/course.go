package model

// ClassLevel is the student's current school class
type ClassLevel string

const (
	Class10 ClassLevel = "class_10"
	Class12 ClassLevel = "class_12"
)

func (c ClassLevel) Valid() bool {
	return c == Class10 || c == Class12
}

// Stream is an academic stream classification
type Stream string

const (
	StreamScience    Stream = "science"
	StreamCommerce   Stream = "commerce"
	StreamArts       Stream = "arts"
	StreamVocational Stream = "vocational"
)

func (s Stream) Valid() bool {
	switch s {
	case StreamScience, StreamCommerce, StreamArts, StreamVocational:
		return true
	}
	return false
}

// Title returns the display name of the stream
func (s Stream) Title() string {
	return Dimension(s).Title()
}

// Tier grades demand and difficulty
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// SalaryBand holds display salary figures (e.g. "6 LPA")
type SalaryBand struct {
	Average string `json:"average" bson:"average"`
	Top     string `json:"top" bson:"top"`
}

// Course is read-only reference data loaded once at start
type Course struct {
	ID            string       `json:"id" bson:"_id" validate:"required"`
	Name          string       `json:"name" bson:"name" validate:"required"`
	FullName      string       `json:"fullName" bson:"fullName"`
	Stream        Stream       `json:"stream" bson:"stream" validate:"required,oneof=science commerce arts vocational"`
	Duration      string       `json:"duration" bson:"duration"`
	Eligibility   string       `json:"eligibility" bson:"eligibility"`
	EntranceExams []string     `json:"entranceExams" bson:"entranceExams"`
	Salary        SalaryBand   `json:"salary" bson:"salary"`
	Demand        Tier         `json:"demand" bson:"demand" validate:"omitempty,oneof=low medium high"`
	Difficulty    Tier         `json:"difficulty" bson:"difficulty" validate:"omitempty,oneof=low medium high"`
	Skills        []string     `json:"skills" bson:"skills"`
	Careers       []string     `json:"careers" bson:"careers"`
	TopColleges   []string     `json:"topColleges" bson:"topColleges"`

	// Matching inputs
	Profile     Weights      `json:"profile" bson:"profile"`
	ClassLevels []ClassLevel `json:"classLevels" bson:"classLevels" validate:"min=1,dive,oneof=class_10 class_12"` // hard gate
	MinMarks    float64      `json:"minMarks,omitempty" bson:"minMarks,omitempty" validate:"gte=0,lte=100"`        // 0 = no threshold
}

// EligibleFor reports whether the course admits students of the given class
func (c *Course) EligibleFor(level ClassLevel) bool {
	for _, l := range c.ClassLevels {
		if l == level {
			return true
		}
	}
	return false
}

// StudentProfile is the static attributes the host supplies to the matcher
type StudentProfile struct {
	ClassLevel ClassLevel `json:"classLevel" bson:"classLevel" validate:"required,oneof=class_10 class_12"`
	Stream     Stream     `json:"stream,omitempty" bson:"stream,omitempty" validate:"omitempty,oneof=science commerce arts vocational"`
	Marks      *float64   `json:"marks,omitempty" bson:"marks,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// Recommendation is one ranked, explained course match
type Recommendation struct {
	CourseID string   `json:"courseId" bson:"courseId"`
	Name     string   `json:"name" bson:"name"`
	Score    float64  `json:"score" bson:"score"` // 0-100
	Stream   Stream   `json:"stream" bson:"stream"`
	Reasons  []string `json:"reasons" bson:"reasons"`
}

// Title returns the display name of the class level
func (c ClassLevel) Title() string {
	switch c {
	case Class10:
		return "Class 10"
	case Class12:
		return "Class 12"
	}
	return string(c)
}
