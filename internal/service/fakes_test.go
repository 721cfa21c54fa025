package service

import (
	"careerfit/internal/config"
	"careerfit/internal/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

type fakeAssessmentRepo struct {
	mu    sync.Mutex
	items map[string]*model.Assessment
	next  int
}

func newFakeAssessmentRepo(items ...*model.Assessment) *fakeAssessmentRepo {
	r := &fakeAssessmentRepo{items: make(map[string]*model.Assessment)}
	for _, a := range items {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeAssessmentRepo) Create(_ context.Context, a *model.Assessment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	a.ID = fmt.Sprintf("new%d", r.next)
	r.items[a.ID] = a
	return a.ID, nil
}

func (r *fakeAssessmentRepo) GetByID(_ context.Context, id string) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *fakeAssessmentRepo) GetBySlug(_ context.Context, slug string) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAssessmentRepo) List(_ context.Context, publishedOnly bool) ([]*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Assessment{}
	for _, a := range r.items {
		if publishedOnly && !a.Published {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAssessmentRepo) Update(_ context.Context, a *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.ID] = a
	return nil
}

func (r *fakeAssessmentRepo) UpsertBySlug(ctx context.Context, a *model.Assessment) error {
	existing, _ := r.GetBySlug(ctx, a.Slug)
	if existing != nil {
		a.ID = existing.ID
		return r.Update(ctx, a)
	}
	_, err := r.Create(ctx, a)
	return err
}

func (r *fakeAssessmentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeResultRepo struct {
	mu         sync.Mutex
	results    map[string]*model.AssessmentResult
	saves      int
	failErr    error
	beforeSave func() // Runs once, outside the lock
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: make(map[string]*model.AssessmentResult)}
}

func (r *fakeResultRepo) Save(_ context.Context, result *model.AssessmentResult) error {
	if hook := r.beforeSave; hook != nil {
		r.beforeSave = nil
		hook()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.saves++
	cp := *result
	r.results[result.SessionID] = &cp
	return nil
}

func (r *fakeResultRepo) GetBySession(_ context.Context, sessionID string) (*model.AssessmentResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.results[sessionID], nil
}

func (r *fakeResultRepo) ListByAssessment(_ context.Context, assessmentID string) ([]*model.AssessmentResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.AssessmentResult{}
	for _, res := range r.results {
		if res.AssessmentID == assessmentID {
			out = append(out, res)
		}
	}
	return out, nil
}

type fakeAnswerRepo struct {
	mu     sync.Mutex
	sheets map[string]*model.AnswerSheet
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{sheets: make(map[string]*model.AnswerSheet)}
}

func (r *fakeAnswerRepo) SaveSheet(_ context.Context, sheet *model.AnswerSheet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sheets[sheet.SessionID] = sheet
	return nil
}

func (r *fakeAnswerRepo) GetBySession(_ context.Context, sessionID string) (*model.AnswerSheet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sheets[sessionID], nil
}

// fakeSessionCache round-trips through JSON like the Redis store does
type fakeSessionCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{data: make(map[string][]byte)}
}

func (c *fakeSessionCache) Set(_ context.Context, session *model.AttemptSession) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	c.data[session.ID] = b
	return nil
}

func (c *fakeSessionCache) Get(_ context.Context, id string) (*model.AttemptSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.decode(id)
}

func (c *fakeSessionCache) Update(_ context.Context, id string, fn func(*model.AttemptSession) error) (*model.AttemptSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, err := c.decode(id)
	if err != nil || session == nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	b, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	c.data[id] = b
	return session, nil
}

func (c *fakeSessionCache) decode(id string) (*model.AttemptSession, error) {
	b, ok := c.data[id]
	if !ok {
		return nil, nil
	}
	var session model.AttemptSession
	if err := json.Unmarshal(b, &session); err != nil {
		return nil, err
	}
	if session.Answers == nil {
		session.Answers = make(map[model.SectionKind]model.SectionAnswerMap)
	}
	if session.Completed == nil {
		session.Completed = make(map[model.SectionKind]bool)
	}
	if session.Scores == nil {
		session.Scores = make(map[model.SectionKind]model.SectionScore)
	}
	return &session, nil
}

type fakeResultCache struct {
	mu      sync.Mutex
	results map[string]*model.AssessmentResult
	getErr  error
}

func newFakeResultCache() *fakeResultCache {
	return &fakeResultCache{results: make(map[string]*model.AssessmentResult)}
}

func (c *fakeResultCache) Set(_ context.Context, result *model.AssessmentResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *result
	c.results[result.SessionID] = &cp
	return nil
}

func (c *fakeResultCache) Get(_ context.Context, sessionID string) (*model.AssessmentResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.results[sessionID], nil
}

type fakeLeaderboard struct {
	mu        sync.Mutex
	scores    map[string]map[string]int
	removeErr error
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{scores: make(map[string]map[string]int)}
}

func (l *fakeLeaderboard) Record(_ context.Context, assessmentID, sessionID string, score int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.scores[assessmentID] == nil {
		l.scores[assessmentID] = make(map[string]int)
	}
	l.scores[assessmentID][sessionID] = score
	return nil
}

func (l *fakeLeaderboard) Standing(_ context.Context, assessmentID, sessionID string) (*model.Standing, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	board := l.scores[assessmentID]
	mine, ok := board[sessionID]
	if !ok {
		return nil, nil
	}
	var above, below int64
	for _, s := range board {
		if s > mine {
			above++
		}
		if s < mine {
			below++
		}
	}
	total := int64(len(board))
	return &model.Standing{Rank: above + 1, Total: total, Percentile: int(below * 100 / total)}, nil
}

func (l *fakeLeaderboard) Remove(_ context.Context, assessmentID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.removeErr != nil {
		return l.removeErr
	}
	delete(l.scores, assessmentID)
	return nil
}

type broadcastEvent struct {
	sessionID string
	msgType   string
	payload   interface{}
}

type fakeBroadcaster struct {
	mu           sync.Mutex
	events       []broadcastEvent
	disconnected []string
}

func (b *fakeBroadcaster) BroadcastToSession(sessionID, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, broadcastEvent{sessionID, msgType, payload})
}

func (b *fakeBroadcaster) DisconnectSession(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disconnected = append(b.disconnected, sessionID)
}

func (b *fakeBroadcaster) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.msgType)
	}
	return out
}

var errSinkDown = errors.New("mongo unavailable")

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		AdminUsername: "admin",
		AdminPassword: "pw",
	}
}

func careerAssessment() *model.Assessment {
	return &model.Assessment{
		ID:        "a1",
		Slug:      "data-career-fit",
		Title:     "Data Career Fit",
		Published: true,
		Sections: []model.Section{
			{Type: model.SectionPsychometric, Questions: []model.Question{
				{ID: "p1", Type: model.QuestionTypeLikert},
				{ID: "p2", Type: model.QuestionTypeText},
			}},
			{Type: model.SectionTechnical, Questions: []model.Question{
				{ID: "t1", Type: model.QuestionTypeBoolean},
				{ID: "t2", Type: model.QuestionTypeMultipleChoice},
			}},
			{Type: model.SectionWiscar, Questions: []model.Question{
				{ID: "w1", Type: model.QuestionTypeSlider},
			}},
		},
	}
}
