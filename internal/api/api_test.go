package api

import (
	"context"
	"encoding/json"
	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/maxaizer/recruit-dashboard/internal/config"
	"github.com/maxaizer/recruit-dashboard/internal/repositories"
	"github.com/maxaizer/recruit-dashboard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var fixtureNow = time.Date(2024, 3, 27, 0, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, cfg config.ServerConfig) (http.Handler, *repositories.Store) {
	t.Helper()

	dbContext, err := repositories.NewDbContext("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbContext.Close() })
	require.NoError(t, dbContext.Migrate())
	require.NoError(t, dbContext.Seed(fixtureNow))

	store := repositories.NewStore(dbContext.DB)
	bus := EventBus.New()
	_, err = services.NewNotifier(bus, store.Messages)
	require.NoError(t, err)

	server := NewServer(cfg, store, bus,
		services.NewDashboardService(store.Candidates, store.JobRoles, store.Presentations, store.Messages),
		services.NewPresentationService(bus, store.Candidates, store.JobRoles, store.Presentations))
	server.now = func() time.Time { return fixtureNow }

	return server.Routes(), store
}

func defaultServerConfig() config.ServerConfig {
	return config.ServerConfig{Port: 8080, RateLimitPerSecond: 1000, RateLimitBurst: 1000}
}

func do(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &value))
	return value
}

func Test_Healthz(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func Test_Dashboard_ShouldReturnMetrics(t *testing.T) {
	assert := assert.New(t)
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodGet, "/api/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Metrics struct {
			ActiveCandidates     int `json:"activeCandidates"`
			OpenRoles            int `json:"openRoles"`
			PendingPresentations int `json:"pendingPresentations"`
			UrgentCandidates     int `json:"urgentCandidates"`
			UpcomingInterviews   int `json:"upcomingInterviews"`
		} `json:"metrics"`
		ActivePresentations []struct {
			Badge Badge `json:"badge"`
		} `json:"activePresentations"`
		UnreadMessages int `json:"unreadMessages"`
	}](t, rec)

	assert.Equal(5, body.Metrics.ActiveCandidates)
	assert.Equal(5, body.Metrics.OpenRoles)
	assert.Equal(5, body.Metrics.PendingPresentations)
	assert.Equal(3, body.Metrics.UrgentCandidates)
	assert.Equal(4, body.Metrics.UpcomingInterviews)
	require.Len(t, body.ActivePresentations, 3)
	assert.Equal(Badge{Label: "Offer", Variant: BadgeSuccess}, body.ActivePresentations[0].Badge)
	assert.Equal(3, body.UnreadMessages)
}

func Test_Candidates_ListShouldDefaultToMostDaysFirst(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodGet, "/api/candidates", "")

	require.Equal(t, http.StatusOK, rec.Code)
	rows := decode[[]struct {
		Name              string `json:"name"`
		Urgent            bool   `json:"urgent"`
		LastEmployedLabel string `json:"lastEmployedLabel"`
		Badge             Badge  `json:"badge"`
	}](t, rec)
	require.Len(t, rows, 5)
	assert.Equal(t, "Alex Johnson", rows[0].Name)
	assert.True(t, rows[0].Urgent)
	assert.Equal(t, "Feb 15, 2023", rows[0].LastEmployedLabel)
	assert.Equal(t, BadgePrimary, rows[0].Badge.Variant)
	assert.Equal(t, "Priya Patel", rows[4].Name)
}

func Test_Candidates_CreateUpdateDelete(t *testing.T) {
	assert := assert.New(t)
	handler, store := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodPost, "/api/candidates", `{"name":"Jane Doe","status":"active","skills":[{"name":"Go","years":3}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[struct {
		ID string `json:"id"`
	}](t, rec)
	assert.NotEmpty(created.ID)

	rec = do(t, handler, http.MethodPatch, "/api/candidates/"+created.ID, `{"notes":"Prefers remote"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[struct {
		Name  string `json:"name"`
		Notes string `json:"notes"`
	}](t, rec)
	assert.Equal("Jane Doe", updated.Name)
	assert.Equal("Prefers remote", updated.Notes)

	rec = do(t, handler, http.MethodDelete, "/api/candidates/"+created.ID, "")
	assert.Equal(http.StatusNoContent, rec.Code)
	rec = do(t, handler, http.MethodDelete, "/api/candidates/"+created.ID, "")
	assert.Equal(http.StatusNoContent, rec.Code)

	rec = do(t, handler, http.MethodGet, "/api/candidates/"+created.ID, "")
	assert.Equal(http.StatusNotFound, rec.Code)

	unread, err := store.Messages.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(4, unread)
}

func Test_Candidates_CreateWithoutName_ShouldReturnBadRequest(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodPost, "/api/candidates", `{"status":"active"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Candidates_InvalidJson_ShouldReturnBadRequest(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodPost, "/api/candidates", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Candidates_UpdateAbsent_ShouldReturnNotFound(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodPatch, "/api/candidates/missing", `{"notes":"x"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func Test_Jobs_ListShouldFormatSalaryAndMarkNew(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodGet, "/api/jobs?sort=salary&dir=asc", "")

	require.Equal(t, http.StatusOK, rec.Code)
	rows := decode[[]struct {
		Title       string `json:"title"`
		SalaryLabel string `json:"salaryLabel"`
		NewBadge    *Badge `json:"newBadge"`
		Salary      struct {
			Max int `json:"max"`
		} `json:"salary"`
	}](t, rec)
	require.Len(t, rows, 5)
	assert.Equal(t, "UX Designer", rows[0].Title)
	assert.Contains(t, rows[0].SalaryLabel, "95,000")
	assert.Nil(t, rows[0].NewBadge)
	assert.Equal(t, 130000, rows[0].Salary.Max)
	assert.Equal(t, "Backend Engineer", rows[4].Title)
}

func Test_Jobs_DetailShouldIncludeStats(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodGet, "/api/jobs/3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Stats struct {
			TotalCandidates int `json:"totalCandidates"`
			Rejected        int `json:"rejected"`
		} `json:"stats"`
		Presentations []json.RawMessage `json:"presentations"`
	}](t, rec)
	assert.Equal(t, 2, body.Stats.TotalCandidates)
	assert.Equal(t, 1, body.Stats.Rejected)
	assert.Len(t, body.Presentations, 2)
}

func Test_Presentations_FilterByStatus(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodGet, "/api/presentations?status=rejected", "")

	require.Equal(t, http.StatusOK, rec.Code)
	rows := decode[[]struct {
		Badge Badge `json:"badge"`
		State string `json:"state"`
	}](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, Badge{Label: "Rejected", Variant: BadgeDanger}, rows[0].Badge)
	assert.Equal(t, "rejected", rows[0].State)
}

func Test_Presentations_WhenStatusFilterUnknown_ShouldReturnBadRequest(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodGet, "/api/presentations?status=withdrawn", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown status: withdrawn")
}

func Test_Presentations_DetailShouldIncludeSkillMatch(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodGet, "/api/presentations/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		SkillMatch struct {
			Matched      int `json:"matched"`
			Missing      int `json:"missing"`
			ScorePercent int `json:"scorePercent"`
		} `json:"skillMatch"`
	}](t, rec)
	assert.Equal(t, 3, body.SkillMatch.Matched)
	assert.Equal(t, 1, body.SkillMatch.Missing)
	assert.Equal(t, 75, body.SkillMatch.ScorePercent)
}

func Test_Presentations_StatusChange_ShouldPostMessage(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodPatch, "/api/presentations/4", `{"status":"screening"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, handler, http.MethodGet, "/api/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	messages := decode[[]struct {
		Content string `json:"content"`
		Read    bool   `json:"read"`
	}](t, rec)
	require.Len(t, messages, 4)
	assert.Equal(t, "Priya Patel moved to Screening for Data Scientist", messages[0].Content)
}

func Test_Messages_ReadFlow(t *testing.T) {
	assert := assert.New(t)
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodPost, "/api/messages/1/read", "")
	assert.Equal(http.StatusNoContent, rec.Code)

	rec = do(t, handler, http.MethodGet, "/api/messages/unread", "")
	assert.JSONEq(`{"count":2}`, rec.Body.String())

	rec = do(t, handler, http.MethodPost, "/api/messages/read", "")
	assert.Equal(http.StatusNoContent, rec.Code)

	rec = do(t, handler, http.MethodGet, "/api/messages/unread", "")
	assert.JSONEq(`{"count":0}`, rec.Body.String())

	rec = do(t, handler, http.MethodDelete, "/api/messages/2", "")
	assert.Equal(http.StatusNoContent, rec.Code)
	rec = do(t, handler, http.MethodGet, "/api/messages", "")
	assert.Len(decode[[]json.RawMessage](t, rec), 2)
}

func Test_Employers_SearchAndGet(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodGet, "/api/employers?q=fintech", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]json.RawMessage](t, rec), 1)

	rec = do(t, handler, http.MethodGet, "/api/employers/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	employer := decode[struct {
		Metrics struct {
			SuccessRate int `json:"successRate"`
		} `json:"metrics"`
	}](t, rec)
	assert.Equal(t, 85, employer.Metrics.SuccessRate)
}

func Test_UnknownRoute_ShouldReturnJsonNotFound(t *testing.T) {
	handler, _ := newTestServer(t, defaultServerConfig())

	rec := do(t, handler, http.MethodGet, "/nowhere", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func Test_RateLimit_ShouldRejectWhenBurstExceeded(t *testing.T) {
	handler, _ := newTestServer(t, config.ServerConfig{Port: 8080, RateLimitPerSecond: 0.001, RateLimitBurst: 1})

	first := do(t, handler, http.MethodGet, "/api/employers", "")
	second := do(t, handler, http.MethodGet, "/api/employers", "")
	health := do(t, handler, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, http.StatusOK, health.Code)
}

func Test_PresentationBadge_ShouldFollowState(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(BadgePrimary, presentationBadge("technical").Variant)
	assert.Equal(BadgeSuccess, presentationBadge("accepted").Variant)
	assert.Equal(BadgeDanger, presentationBadge("rejected").Variant)
	assert.Equal(BadgeSecondary, presentationBadge("withdrawn").Variant)
	assert.Equal(BadgeSecondary, jobBadge("closed").Variant)
	assert.Equal(BadgeSuccess, candidateBadge("placed").Variant)
}
