package model

// QuestionKind defines the answer shape a question accepts
type QuestionKind string

const (
	KindSingleChoice QuestionKind = "single_choice" // One option id
	KindMultiSelect  QuestionKind = "multi_select"  // Set of option ids
	KindScenario     QuestionKind = "scenario"      // One scenario option id
	KindSlider       QuestionKind = "slider"        // Integer between Min and Max
	KindSkillGrid    QuestionKind = "skill_grid"    // Named skill -> 0..10
	KindRanking      QuestionKind = "ranking"       // Permutation of option ids
)

// Valid reports whether k is one of the six answer shapes
func (k QuestionKind) Valid() bool {
	switch k {
	case KindSingleChoice, KindMultiSelect, KindScenario, KindSlider, KindSkillGrid, KindRanking:
		return true
	}
	return false
}

// HasOptions reports whether questions of this kind declare options
func (k QuestionKind) HasOptions() bool {
	switch k {
	case KindSingleChoice, KindMultiSelect, KindScenario, KindRanking:
		return true
	}
	return false
}

// Partition tags where a question lives in the catalog
type Partition string

const (
	PartitionBaseline      Partition = "baseline"
	PartitionDeepDive      Partition = "deep_dive"
	PartitionAcademic      Partition = "academic"
	PartitionValues        Partition = "values"
	PartitionSkills        Partition = "skills"
	PartitionLearningStyle Partition = "learning_style"
)

// OptionalPartitions are offered round-robin after baseline and deep-dives, in this order.
var OptionalPartitions = []Partition{PartitionAcademic, PartitionValues, PartitionSkills, PartitionLearningStyle}

// Optional reports whether p is one of the round-robin partitions
func (p Partition) Optional() bool {
	for _, o := range OptionalPartitions {
		if o == p {
			return true
		}
	}
	return false
}

const (
	SliderMin = 1
	SliderMax = 10

	SkillRatingMin = 0
	SkillRatingMax = 10
)

// Option is one selectable choice of a choice or ranking question
type Option struct {
	ID      string  `json:"id" bson:"id" validate:"required"`
	Label   string  `json:"label" bson:"label" validate:"required"`
	Weights Weights `json:"weights,omitempty" bson:"weights,omitempty"`
}

// SkillScale is one row of a skill grid, feeding a single dimension
type SkillScale struct {
	Name      string    `json:"name" bson:"name" validate:"required"`
	Dimension Dimension `json:"dimension" bson:"dimension" validate:"required"`
}

// Question is an immutable catalog entry
type Question struct {
	ID        string       `json:"id" bson:"id" validate:"required"`
	Text      string       `json:"text" bson:"text" validate:"required"`
	Kind      QuestionKind `json:"kind" bson:"kind" validate:"required"`
	Partition Partition    `json:"partition" bson:"partition"`
	Options   []Option     `json:"options,omitempty" bson:"options,omitempty" validate:"dive"`
	Weights   Weights      `json:"weights,omitempty" bson:"weights,omitempty"` // slider: tagged dimensions
	Min       int          `json:"min,omitempty" bson:"min,omitempty"`         // slider only
	Max       int          `json:"max,omitempty" bson:"max,omitempty"`         // slider only
	Skills    []SkillScale `json:"skills,omitempty" bson:"skills,omitempty" validate:"dive"`
}

// Option looks up a declared option by id
func (q *Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Skill looks up a declared skill row by name
func (q *Question) Skill(name string) (SkillScale, bool) {
	for _, s := range q.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return SkillScale{}, false
}

// Condition holds when the answer to a baseline question selected,
// included or ranked first one of OptionIDs.
type Condition struct {
	QuestionID string   `json:"questionId" bson:"questionId" validate:"required"`
	OptionIDs  []string `json:"optionIds" bson:"optionIds" validate:"min=1,dive,required"`
}

// Matches evaluates the condition against the answer recorded for QuestionID
func (c Condition) Matches(a Answer) bool {
	switch v := a.(type) {
	case SingleChoice:
		return c.contains(v.OptionID)
	case ScenarioChoice:
		return c.contains(v.OptionID)
	case MultiSelect:
		for _, id := range v.OptionIDs {
			if c.contains(id) {
				return true
			}
		}
	case Ranking:
		return len(v.OptionIDs) > 0 && c.contains(v.OptionIDs[0])
	}
	return false
}

func (c Condition) contains(id string) bool {
	for _, o := range c.OptionIDs {
		if o == id {
			return true
		}
	}
	return false
}

// Activation is satisfied when any of its conditions holds
type Activation struct {
	AnyOf []Condition `json:"anyOf" bson:"anyOf" validate:"min=1,dive"`
}

// Satisfied evaluates the activation against the current answers
func (a Activation) Satisfied(answers map[string]Answer) bool {
	for _, c := range a.AnyOf {
		if ans, ok := answers[c.QuestionID]; ok && c.Matches(ans) {
			return true
		}
	}
	return false
}

// DeepDiveGroup is a block of follow-up questions gated by baseline answers
type DeepDiveGroup struct {
	ID         string     `json:"id" bson:"id" validate:"required"`
	Title      string     `json:"title" bson:"title"`
	Activation Activation `json:"activation" bson:"activation"`
	Questions  []Question `json:"questions" bson:"questions" validate:"min=1,dive"`
}

// QuestionCatalog is the full versioned bank, partitioned in declaration order
type QuestionCatalog struct {
	Version       string          `json:"version" bson:"version" validate:"required"`
	Baseline      []Question      `json:"baseline" bson:"baseline" validate:"min=1,dive"`
	DeepDives     []DeepDiveGroup `json:"deepDives" bson:"deepDives" validate:"dive"`
	Academic      []Question      `json:"academic" bson:"academic" validate:"dive"`
	Values        []Question      `json:"values" bson:"values" validate:"dive"`
	Skills        []Question      `json:"skills" bson:"skills" validate:"dive"`
	LearningStyle []Question      `json:"learningStyle" bson:"learningStyle" validate:"dive"`
}

// Optional returns the questions of one round-robin partition
func (c *QuestionCatalog) Optional(p Partition) []Question {
	switch p {
	case PartitionAcademic:
		return c.Academic
	case PartitionValues:
		return c.Values
	case PartitionSkills:
		return c.Skills
	case PartitionLearningStyle:
		return c.LearningStyle
	}
	return nil
}
