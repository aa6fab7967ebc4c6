// Package catalog holds the built-in question and course catalogs and the
// validated, indexed views the session engine and matcher read from.
package catalog

import (
	"errors"
	"fmt"

	"careercompass/internal/model"
	"careercompass/internal/validation"
)

// QuestionBank is a validated, read-only index over a QuestionCatalog.
// It is safe for concurrent use since nothing mutates it after construction.
type QuestionBank struct {
	version   string
	ordered   []*model.Question // canonical declaration order
	byID      map[string]*model.Question
	position  map[string]int
	baseline  []*model.Question
	groups    []Group
	optionals map[model.Partition][]*model.Question
}

// Group is a deep-dive group with its members resolved to bank entries
type Group struct {
	ID         string
	Title      string
	Activation model.Activation
	Questions  []*model.Question
}

// NewQuestionBank validates c eagerly and indexes it. Any problem is returned as
// *model.ConfigurationError; a bank is never built from malformed data.
func NewQuestionBank(c model.QuestionCatalog) (*QuestionBank, error) {
	if err := validation.ValidateStruct(&c); err != nil {
		return nil, configErrFromValidation(err)
	}

	b := &QuestionBank{
		version:   c.Version,
		byID:      make(map[string]*model.Question),
		position:  make(map[string]int),
		optionals: make(map[model.Partition][]*model.Question),
	}

	for i := range c.Baseline {
		q, err := b.add(c.Baseline[i], model.PartitionBaseline, fmt.Sprintf("baseline[%d]", i))
		if err != nil {
			return nil, err
		}
		b.baseline = append(b.baseline, q)
	}

	groupIDs := make(map[string]bool)
	for gi, g := range c.DeepDives {
		path := fmt.Sprintf("deepDives[%d]", gi)
		if groupIDs[g.ID] {
			return nil, &model.ConfigurationError{Path: path, Reason: fmt.Sprintf("duplicate group id %q", g.ID)}
		}
		groupIDs[g.ID] = true

		group := Group{ID: g.ID, Title: g.Title, Activation: g.Activation}
		for qi := range g.Questions {
			q, err := b.add(g.Questions[qi], model.PartitionDeepDive, fmt.Sprintf("%s.questions[%d]", path, qi))
			if err != nil {
				return nil, err
			}
			group.Questions = append(group.Questions, q)
		}
		b.groups = append(b.groups, group)
	}

	for _, p := range model.OptionalPartitions {
		for i, q := range c.Optional(p) {
			added, err := b.add(q, p, fmt.Sprintf("%s[%d]", p, i))
			if err != nil {
				return nil, err
			}
			b.optionals[p] = append(b.optionals[p], added)
		}
	}

	// Activations are checked last so they can reference any baseline question.
	for gi, g := range b.groups {
		if err := b.checkActivation(g, fmt.Sprintf("deepDives[%d].activation", gi)); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// add copies q into the bank under partition p after validating it
func (b *QuestionBank) add(q model.Question, p model.Partition, path string) (*model.Question, error) {
	if q.Partition != "" && q.Partition != p {
		return nil, &model.ConfigurationError{Path: path, Reason: fmt.Sprintf("question tagged %q but declared under %q", q.Partition, p)}
	}
	q.Partition = p

	if _, dup := b.byID[q.ID]; dup {
		return nil, &model.ConfigurationError{Path: path, Reason: fmt.Sprintf("duplicate question id %q", q.ID)}
	}
	if q.Kind == model.KindSlider && q.Min == 0 && q.Max == 0 {
		q.Min, q.Max = model.SliderMin, model.SliderMax
	}
	if err := checkQuestion(&q, path); err != nil {
		return nil, err
	}

	stored := &q
	b.byID[q.ID] = stored
	b.position[q.ID] = len(b.ordered)
	b.ordered = append(b.ordered, stored)
	return stored, nil
}

func checkQuestion(q *model.Question, path string) error {
	fail := func(format string, args ...interface{}) error {
		return &model.ConfigurationError{Path: path, Reason: fmt.Sprintf(format, args...)}
	}

	if !q.Kind.Valid() {
		return fail("unknown question kind %q", q.Kind)
	}

	if q.Kind.HasOptions() {
		if len(q.Options) == 0 {
			return fail("%s question %q declares no options", q.Kind, q.ID)
		}
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if seen[o.ID] {
				return fail("duplicate option id %q", o.ID)
			}
			seen[o.ID] = true
			if err := checkWeights(o.Weights); err != nil {
				return fail("option %q: %v", o.ID, err)
			}
		}
	}

	switch q.Kind {
	case model.KindSlider:
		if len(q.Weights) == 0 {
			return fail("slider %q tags no dimensions", q.ID)
		}
		if err := checkWeights(q.Weights); err != nil {
			return fail("slider %q: %v", q.ID, err)
		}
		if q.Min < model.SliderMin || q.Max > model.SliderMax || q.Min >= q.Max {
			return fail("slider %q bounds %d..%d must lie within %d..%d", q.ID, q.Min, q.Max, model.SliderMin, model.SliderMax)
		}
	case model.KindSkillGrid:
		if len(q.Skills) == 0 {
			return fail("skill grid %q declares no skills", q.ID)
		}
		seen := make(map[string]bool, len(q.Skills))
		for _, s := range q.Skills {
			if seen[s.Name] {
				return fail("duplicate skill %q", s.Name)
			}
			seen[s.Name] = true
			if !s.Dimension.Valid() {
				return fail("skill %q maps to unknown dimension %q", s.Name, s.Dimension)
			}
		}
	}
	return nil
}

func checkWeights(w model.Weights) error {
	for d, v := range w {
		if !d.Valid() {
			return fmt.Errorf("unknown dimension %q", d)
		}
		if v < 0 {
			return fmt.Errorf("negative weight %v on %s", v, d)
		}
	}
	return nil
}

// checkActivation rejects predicates that can never hold or that refer to
// anything other than baseline answers.
func (b *QuestionBank) checkActivation(g Group, path string) error {
	if len(g.Activation.AnyOf) == 0 {
		return &model.ConfigurationError{Path: path, Reason: fmt.Sprintf("group %q can never activate: no conditions", g.ID)}
	}

	for ci, c := range g.Activation.AnyOf {
		cpath := fmt.Sprintf("%s.anyOf[%d]", path, ci)
		fail := func(format string, args ...interface{}) error {
			return &model.ConfigurationError{Path: cpath, Reason: fmt.Sprintf(format, args...)}
		}

		q, ok := b.byID[c.QuestionID]
		if !ok {
			return fail("references unknown question %q", c.QuestionID)
		}
		if q.Partition != model.PartitionBaseline {
			return fail("references %s question %q; activations may only depend on baseline answers", q.Partition, c.QuestionID)
		}
		if !q.Kind.HasOptions() {
			return fail("references %s question %q which has no options to match", q.Kind, c.QuestionID)
		}
		for _, id := range c.OptionIDs {
			if _, ok := q.Option(id); !ok {
				return fail("option %q is not declared by %q, condition can never hold", id, c.QuestionID)
			}
		}
	}
	return nil
}

func configErrFromValidation(err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		f := verr.Fields[0]
		return &model.ConfigurationError{Path: f.Namespace, Reason: f.Message}
	}
	return &model.ConfigurationError{Reason: err.Error()}
}

// Version identifies the catalog revision
func (b *QuestionBank) Version() string { return b.version }

// Len is the number of questions in the bank
func (b *QuestionBank) Len() int { return len(b.ordered) }

// Question looks up a question by id
func (b *QuestionBank) Question(id string) (*model.Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Position is the canonical declaration index of id, or -1
func (b *QuestionBank) Position(id string) int {
	if p, ok := b.position[id]; ok {
		return p
	}
	return -1
}

// Ordered returns every question in canonical declaration order: baseline,
// deep-dive groups, then academic, values, skills and learning-style.
func (b *QuestionBank) Ordered() []*model.Question {
	return append([]*model.Question(nil), b.ordered...)
}

// Baseline returns the mandatory questions in declaration order
func (b *QuestionBank) Baseline() []*model.Question {
	return append([]*model.Question(nil), b.baseline...)
}

// Groups returns the deep-dive groups in declaration order
func (b *QuestionBank) Groups() []Group {
	return append([]Group(nil), b.groups...)
}

// Optional returns one round-robin partition in declaration order
func (b *QuestionBank) Optional(p model.Partition) []*model.Question {
	return append([]*model.Question(nil), b.optionals[p]...)
}

// DefaultBank validates and indexes the built-in question catalog
func DefaultBank() (*QuestionBank, error) {
	return NewQuestionBank(DefaultQuestions())
}
