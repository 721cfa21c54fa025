package rest

import (
	"bytes"
	"careerfit/internal/config"
	"careerfit/internal/model"
	"careerfit/internal/service"
	"careerfit/internal/transport/rest/handler"
	"careerfit/internal/transport/ws"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	created *model.Assessment
}

func (s *stubCatalog) Create(_ context.Context, a *model.Assessment) (string, error) {
	if err := service.Normalize(a); err != nil {
		return "", err
	}
	a.ID = "a-new"
	s.created = a
	return a.ID, nil
}

func (s *stubCatalog) GetByID(_ context.Context, id string) (*model.Assessment, error) {
	if id != "a1" {
		return nil, service.ErrAssessmentNotFound
	}
	return &model.Assessment{ID: "a1", Title: "Draft"}, nil
}

func (s *stubCatalog) GetPublished(_ context.Context, id string) (*model.Assessment, error) {
	return nil, service.ErrAssessmentNotFound
}

func (s *stubCatalog) List(_ context.Context, publishedOnly bool) ([]*model.Assessment, error) {
	return []*model.Assessment{{ID: "a1", Published: publishedOnly}}, nil
}

func (s *stubCatalog) Update(_ context.Context, a *model.Assessment) error { return nil }

func (s *stubCatalog) Delete(_ context.Context, id string) error { return nil }

type recordedAnswer struct {
	sessionID, questionID string
	section               model.SectionKind
	answer                model.Answer
}

type stubAttempts struct {
	recorded []recordedAnswer
	err      error
}

func (s *stubAttempts) Start(_ context.Context, assessmentID string) (*model.StartAttemptResponse, error) {
	return &model.StartAttemptResponse{SessionID: "s1", Token: "tok", AssessmentID: assessmentID}, nil
}

func (s *stubAttempts) Get(_ context.Context, sessionID string) (*model.AttemptSession, error) {
	return model.NewAttemptSession(sessionID, "a1"), nil
}

func (s *stubAttempts) RecordAnswer(_ context.Context, sessionID string, section model.SectionKind, questionID string, answer model.Answer) error {
	if s.err != nil {
		return s.err
	}
	s.recorded = append(s.recorded, recordedAnswer{sessionID, questionID, section, answer})
	return nil
}

func (s *stubAttempts) CompleteSection(_ context.Context, sessionID string, section model.SectionKind) (*model.SectionScore, error) {
	return &model.SectionScore{Overall: 80}, nil
}

func (s *stubAttempts) Finish(_ context.Context, sessionID string) (*model.AssessmentResult, error) {
	return &model.AssessmentResult{SessionID: sessionID, OverallScore: 78, Recommendation: model.RecommendationYes}, nil
}

type stubResults struct {
	standingFor string
}

func (s *stubResults) GetBySession(_ context.Context, sessionID string) (*model.AssessmentResult, error) {
	return nil, service.ErrResultNotFound
}

func (s *stubResults) ListByAssessment(_ context.Context, assessmentID string) ([]*model.AssessmentResult, error) {
	return []*model.AssessmentResult{{AssessmentID: assessmentID, SessionID: "s1"}}, nil
}

func (s *stubResults) Standing(_ context.Context, assessmentID, sessionID string) (*model.Standing, error) {
	s.standingFor = assessmentID
	return &model.Standing{Rank: 1, Total: 3, Percentile: 67}, nil
}

type testServer struct {
	handler  http.Handler
	auth     *service.AuthService
	catalog  *stubCatalog
	attempts *stubAttempts
	results  *stubResults
}

func newTestServer() *testServer {
	cfg := &config.Config{
		JWTSecret:     "router-secret",
		AdminUsername: "admin",
		AdminPassword: "pw",
		CORS: config.CORSConfig{
			AllowedOrigins: "https://careerfit.example",
			AllowedMethods: "GET, POST",
			AllowedHeaders: "Content-Type, Authorization",
		},
	}
	ts := &testServer{
		auth:     service.NewAuthService(cfg),
		catalog:  &stubCatalog{},
		attempts: &stubAttempts{},
		results:  &stubResults{},
	}
	ts.handler = NewRouter(&Container{
		Config:            cfg,
		AuthService:       ts.auth,
		AssessmentService: ts.catalog,
		AttemptService:    ts.attempts,
		ResultService:     ts.results,
		WSHub:             ws.NewHub(),
	})
	return ts
}

func (ts *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewBuffer(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestRouter_HealthAndSwagger(t *testing.T) {
	ts := newTestServer()

	rec := ts.do("GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = ts.do("GET", "/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]interface{}
	decode(t, rec, &doc)
	assert.Equal(t, "2.0", doc["swagger"])
	assert.Equal(t, "/v1", doc["basePath"])
}

func TestRouter_CORSPreflight(t *testing.T) {
	ts := newTestServer()

	rec := ts.do("OPTIONS", "/v1/admin/assessments", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://careerfit.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestRouter_ScoreScenario(t *testing.T) {
	ts := newTestServer()

	body := `{
		"psychometric": {"q1": 4, "q2": "I really enjoy working with complex systems and solving hard problems daily"},
		"technical": {"q1": true},
		"wiscar": {}
	}`
	rec := ts.do("POST", "/v1/score", "", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.AssessmentResult
	decode(t, rec, &result)
	assert.Equal(t, 78, result.OverallScore)
	assert.Equal(t, model.RecommendationYes, result.Recommendation)
	assert.Equal(t, 85, result.Psychometric.Overall)
	assert.Equal(t, 1, result.Technical.TotalQuestions)
	assert.Equal(t, "Data Analyst", result.CareerMatches[0].Title)
	assert.Empty(t, result.SessionID)
}

func TestRouter_ScoreRejectsBadJSON(t *testing.T) {
	ts := newTestServer()

	rec := ts.do("POST", "/v1/score", "", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ScoreRejectsOversizedBody(t *testing.T) {
	ts := newTestServer()

	body := `{"psychometric": {"q1": "` + strings.Repeat("a", handler.MaxScoreBody) + `"}}`
	rec := ts.do("POST", "/v1/score", "", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var resp map[string]string
	decode(t, rec, &resp)
	assert.Equal(t, "request body too large", resp["error"])
}

func TestRouter_Login(t *testing.T) {
	ts := newTestServer()

	rec := ts.do("POST", "/v1/auth/login", "", model.LoginRequest{Username: "admin", Password: "pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.LoginResponse
	decode(t, rec, &resp)
	assert.NotEmpty(t, resp.Token)

	rec = ts.do("POST", "/v1/auth/login", "", model.LoginRequest{Username: "admin", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_PublicCatalog(t *testing.T) {
	ts := newTestServer()

	rec := ts.do("GET", "/v1/assessments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []model.Assessment
	decode(t, rec, &list)
	require.Len(t, list, 1)
	assert.True(t, list[0].Published)

	rec = ts.do("GET", "/v1/assessments/a1", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do("POST", "/v1/assessments/a1/attempts", "", nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_AttemptRequiresMatchingToken(t *testing.T) {
	ts := newTestServer()

	rec := ts.do("GET", "/v1/attempts/s1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other, err := ts.auth.GenerateAttemptToken("s2", "a1")
	require.NoError(t, err)
	rec = ts.do("GET", "/v1/attempts/s1", other, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	token, err := ts.auth.GenerateAttemptToken("s1", "a1")
	require.NoError(t, err)
	rec = ts.do("GET", "/v1/attempts/s1", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest("GET", "/v1/attempts/s1?token="+token, nil)
	qrec := httptest.NewRecorder()
	ts.handler.ServeHTTP(qrec, req)
	assert.Equal(t, http.StatusOK, qrec.Code)
}

func TestRouter_RecordAnswer(t *testing.T) {
	ts := newTestServer()
	token, err := ts.auth.GenerateAttemptToken("s1", "a1")
	require.NoError(t, err)

	rec := ts.do("PUT", "/v1/attempts/s1/sections/technical/answers/t2", token, `{"value": ["a", "c"]}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, ts.attempts.recorded, 1)
	got := ts.attempts.recorded[0]
	assert.Equal(t, "s1", got.sessionID)
	assert.Equal(t, model.SectionTechnical, got.section)
	assert.Equal(t, "t2", got.questionID)
	assert.Equal(t, []string{"a", "c"}, got.answer.Choices())

	rec = ts.do("PUT", "/v1/attempts/s1/sections/technical/answers/t2", token, "oops")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_AttemptErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrSectionFrozen, http.StatusConflict},
		{service.ErrAttemptFinished, http.StatusConflict},
		{service.ErrUnknownSection, http.StatusBadRequest},
		{service.ErrUnknownQuestion, http.StatusBadRequest},
		{service.ErrSessionNotFound, http.StatusNotFound},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		ts := newTestServer()
		ts.attempts.err = tt.err
		token, err := ts.auth.GenerateAttemptToken("s1", "a1")
		require.NoError(t, err)

		rec := ts.do("PUT", "/v1/attempts/s1/sections/wiscar/answers/w1", token, `{"value": 3}`)
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())

		var body map[string]string
		decode(t, rec, &body)
		assert.NotEmpty(t, body["error"])
	}
}

func TestRouter_FinishResultAndStanding(t *testing.T) {
	ts := newTestServer()
	token, err := ts.auth.GenerateAttemptToken("s1", "a1")
	require.NoError(t, err)

	rec := ts.do("POST", "/v1/attempts/s1/sections/psychometric/complete", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"section":"psychometric"`)

	rec = ts.do("POST", "/v1/attempts/s1/finish", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var result model.AssessmentResult
	decode(t, rec, &result)
	assert.Equal(t, 78, result.OverallScore)

	rec = ts.do("GET", "/v1/attempts/s1/result", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do("GET", "/v1/attempts/s1/standing", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a1", ts.results.standingFor)
	var st model.Standing
	decode(t, rec, &st)
	assert.Equal(t, 67, st.Percentile)
}

func TestRouter_AdminRoutes(t *testing.T) {
	ts := newTestServer()

	rec := ts.do("GET", "/v1/admin/assessments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	attemptToken, err := ts.auth.GenerateAttemptToken("s1", "a1")
	require.NoError(t, err)
	rec = ts.do("GET", "/v1/admin/assessments", attemptToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login, err := ts.auth.Login("admin", "pw")
	require.NoError(t, err)
	admin := login.Token

	rec = ts.do("POST", "/v1/admin/assessments", admin, model.Assessment{
		Title:    "Data Analyst Fit",
		Sections: []model.Section{{Type: model.SectionTechnical}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "data-analyst-fit", ts.catalog.created.Slug)

	rec = ts.do("POST", "/v1/admin/assessments", admin, model.Assessment{Title: "No sections"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do("GET", "/v1/admin/assessments/a1", admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do("GET", "/v1/admin/assessments/zzz", admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do("DELETE", "/v1/admin/assessments/a1", admin, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do("GET", "/v1/admin/assessments/a1/results", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var results []model.AssessmentResult
	decode(t, rec, &results)
	require.Len(t, results, 1)
	assert.Equal(t, "a1", results[0].AssessmentID)
}
