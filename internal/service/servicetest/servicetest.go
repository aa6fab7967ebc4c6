// Package servicetest provides in-memory stand-ins for the stores and the
// broadcaster the assessment service depends on.
package servicetest

import (
	"context"
	"sort"
	"sync"

	"careercompass/internal/cache"
	"careercompass/internal/model"
)

// Counselors is the Event audience for counselor broadcasts
const Counselors = "counselors"

// SessionCache is an in-memory cache.SessionCache
type SessionCache struct {
	mu   sync.Mutex
	Data map[string]model.AssessmentSession
}

func NewSessionCache() *SessionCache {
	return &SessionCache{Data: map[string]model.AssessmentSession{}}
}

func (c *SessionCache) Set(_ context.Context, s *model.AssessmentSession) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Data[s.ID] = *s
	return nil
}

func (c *SessionCache) Get(_ context.Context, id string) (*model.AssessmentSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.Data[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (c *SessionCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.Data, id)
	return nil
}

// SessionRepo is an in-memory repository.SessionRepo
type SessionRepo struct {
	mu   sync.Mutex
	Data map[string]model.AssessmentSession
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{Data: map[string]model.AssessmentSession{}}
}

func (r *SessionRepo) Create(_ context.Context, s *model.AssessmentSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Data[s.ID] = *s
	return nil
}

func (r *SessionRepo) GetByID(_ context.Context, id string) (*model.AssessmentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.Data[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SessionRepo) UpdateStatus(_ context.Context, id string, status model.SessionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.Data[id]
	s.Status = status
	r.Data[id] = s
	return nil
}

func (r *SessionRepo) GetByStudentID(_ context.Context, studentID string) ([]*model.AssessmentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.AssessmentSession{}
	for _, s := range r.Data {
		if s.StudentID == studentID {
			s := s
			out = append(out, &s)
		}
	}
	return out, nil
}

// ResultRepo is an in-memory repository.ResultRepo
type ResultRepo struct {
	mu    sync.Mutex
	Data  map[string]*model.AssessmentResult
	Saves int
}

func NewResultRepo() *ResultRepo {
	return &ResultRepo{Data: map[string]*model.AssessmentResult{}}
}

func (r *ResultRepo) Save(_ context.Context, res *model.AssessmentResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Saves++
	r.Data[res.SessionID] = res
	return nil
}

func (r *ResultRepo) GetBySessionID(_ context.Context, id string) (*model.AssessmentResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Data[id], nil
}

func (r *ResultRepo) GetByStudentID(_ context.Context, studentID string) ([]*model.AssessmentResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.AssessmentResult{}
	for _, res := range r.Data {
		if res.StudentID == studentID {
			out = append(out, res)
		}
	}
	return out, nil
}

// Summary tallies Data in Go the way the mongo aggregation does
func (r *ResultRepo) Summary(_ context.Context, class model.ClassLevel) (*model.CohortSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := &model.CohortSummary{ClassLevel: class, TopDimensionCounts: []model.DimensionCount{}}
	var sum model.ScoreVector
	counts := map[model.Dimension]int{}
	for _, res := range r.Data {
		if class != "" && res.Profile.ClassLevel != class {
			continue
		}
		out.Results++
		sum = sum.Plus(res.Scores)
		if len(res.TopDimensions) > 0 {
			counts[res.TopDimensions[0]]++
		}
		if out.LatestCompletedAt == nil || res.CompletedAt.After(*out.LatestCompletedAt) {
			at := res.CompletedAt
			out.LatestCompletedAt = &at
		}
	}
	if out.Results == 0 {
		return out, nil
	}
	for _, d := range model.Dimensions {
		out.AverageScores = out.AverageScores.Add(d, sum.Get(d)/float64(out.Results))
		if counts[d] > 0 {
			out.TopDimensionCounts = append(out.TopDimensionCounts, model.DimensionCount{Dimension: d, Count: counts[d]})
		}
	}
	out.AverageScores = out.AverageScores.Rounded()
	sort.SliceStable(out.TopDimensionCounts, func(i, j int) bool {
		a, b := out.TopDimensionCounts[i], out.TopDimensionCounts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Dimension < b.Dimension
	})
	return out, nil
}

// Trending is an in-memory cache.TrendingCache
type Trending struct {
	mu     sync.Mutex
	Counts map[string]int
}

func NewTrending() *Trending {
	return &Trending{Counts: map[string]int{}}
}

func (t *Trending) Bump(_ context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Counts[id]++
	return nil
}

func (t *Trending) Top(_ context.Context, limit int) ([]cache.TrendingEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]cache.TrendingEntry, 0, len(t.Counts))
	for id, n := range t.Counts {
		out = append(out, cache.TrendingEntry{CourseID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].CourseID < out[j].CourseID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

// Stats is an in-memory cache.QuestionStatsCache
type Stats struct {
	mu   sync.Mutex
	Data map[string]*cache.QuestionStats
}

func NewStats() *Stats {
	return &Stats{Data: map[string]*cache.QuestionStats{}}
}

// entry must be called with s.mu held
func (s *Stats) entry(id string) *cache.QuestionStats {
	st, ok := s.Data[id]
	if !ok {
		st = &cache.QuestionStats{QuestionID: id}
		s.Data[id] = st
	}
	return st
}

func (s *Stats) IncrementAnswered(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(id).Answered++
	return nil
}

func (s *Stats) IncrementReverted(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(id).Reverted++
	return nil
}

func (s *Stats) IncrementInvalid(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(id).Invalid++
	return nil
}

func (s *Stats) Get(_ context.Context, ids []string) ([]cache.QuestionStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]cache.QuestionStats, len(ids))
	for i, id := range ids {
		out[i] = *s.entry(id)
	}
	return out, nil
}

// Event is one recorded broadcast
type Event struct {
	Audience string // session id, or Counselors
	Type     string
	Payload  interface{}
}

// Broadcaster records every broadcast and disconnect
type Broadcaster struct {
	mu           sync.Mutex
	Events       []Event
	Disconnected []string
}

func (b *Broadcaster) BroadcastToSession(id, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Events = append(b.Events, Event{Audience: id, Type: msgType, Payload: payload})
}

func (b *Broadcaster) BroadcastToCounselors(msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Events = append(b.Events, Event{Audience: Counselors, Type: msgType, Payload: payload})
}

func (b *Broadcaster) DisconnectSession(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Disconnected = append(b.Disconnected, id)
}

// Count returns how many events of msgType went to audience
func (b *Broadcaster) Count(audience, msgType string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, e := range b.Events {
		if e.Audience == audience && e.Type == msgType {
			n++
		}
	}
	return n
}

// FirstAnswer is a valid answer to q: the first declared option, the lowest
// slider value, or the options in declared order for a ranking.
func FirstAnswer(q *model.Question) model.Answer {
	switch q.Kind {
	case model.KindSingleChoice:
		return model.SingleChoice{OptionID: q.Options[0].ID}
	case model.KindScenario:
		return model.ScenarioChoice{OptionID: q.Options[0].ID}
	case model.KindMultiSelect:
		return model.MultiSelect{OptionIDs: []string{q.Options[0].ID}}
	case model.KindSlider:
		return model.Slider{Value: q.Min}
	case model.KindSkillGrid:
		return model.SkillGrid{Ratings: map[string]int{q.Skills[0].Name: 5}}
	case model.KindRanking:
		ids := make([]string, len(q.Options))
		for i, o := range q.Options {
			ids[i] = o.ID
		}
		return model.Ranking{OptionIDs: ids}
	}
	return nil
}
