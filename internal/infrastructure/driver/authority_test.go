package driver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/pot-code/elearn-bff/internal/infrastructure/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type staticIDGenerator struct{}

func (staticIDGenerator) Generate() (string, error) { return "req-1", nil }

func jsonDecode(r *http.Request, out interface{}) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func newTestClient(t *testing.T, handler http.Handler) (*AuthorityClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewAuthorityClient(&AuthorityConfig{
		BaseURL: server.URL,
		Timeout: time.Second,
	}, staticIDGenerator{})
	require.NoError(t, err)
	return client, server
}

func TestFetchEnrollments_NormalizesBothIdentifierShapes(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/enrollments", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("viewer"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"course_id": "c1", "progress": {"completed_topics": ["t1"], "percent_complete": 50}},
			{"course": {"id": "c2", "title": "Algebra"}, "progress": {"percent_complete": 12.5}}
		]`))
	}))

	records, err := client.FetchEnrollments(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c1", records[0].CourseID)
	assert.Equal(t, []string{"t1"}, records[0].CompletedTopics)
	// nested shape collapses into the same canonical identifier
	assert.Equal(t, "c2", records[1].CourseID)
	assert.Equal(t, "Algebra", records[1].CourseTitle)
	assert.Equal(t, 12.5, records[1].PercentComplete)
}

func TestFetchEnrollments_FlatIdentifierWinsOverNested(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"course_id": "flat", "course": {"id": "nested"}, "progress": {}}]`))
	}))

	records, err := client.FetchEnrollments(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "flat", records[0].CourseID)
}

func TestFetchCourse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/c1", r.URL.Path)
		w.Write([]byte(`{"title": "Intro", "is_enrolled": true,
			"modules": [{"id": "m1", "order": 1, "topics": [{"id": "t1", "order": 1}]}]}`))
	}))

	course, err := client.FetchCourse(context.Background(), "u1", "c1")

	require.NoError(t, err)
	assert.Equal(t, "c1", course.ID)
	assert.True(t, course.IsEnrolled)
	require.Len(t, course.Modules, 1)
	assert.Equal(t, "m1", course.Modules[0].ID)
}

func TestFetchUnreadCount(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications/unread-count", r.URL.Path)
		w.Write([]byte(`{"count": 3}`))
	}))

	count, err := client.FetchUnreadCount(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPushProgress(t *testing.T) {
	var got domain.ProgressUpdate
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/progress/update", r.URL.Path)
		require.NoError(t, jsonDecode(r, &got))
		w.WriteHeader(http.StatusOK)
	}))

	err := client.PushProgress(context.Background(), "u1", &domain.ProgressUpdate{
		CourseID: "c1", ModuleID: "m1", TopicID: "t1", Completed: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "t1", got.TopicID)
	assert.True(t, got.Completed)
}

func TestCallsLogThroughContextLogger(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	core, logs := observer.New(zap.DebugLevel)
	ctx := logging.SetLoggerInContext(context.Background(),
		zap.New(core).With(zap.String("trace.id", "trace-1")))

	_, err := client.FetchEnrollments(ctx, "u1")

	require.Error(t, err)
	entries := logs.FilterMessage("Authority call failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "trace-1", entries[0].ContextMap()["trace.id"])
}

func TestErrorStatusSurfacesAsError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.FetchEnrollments(context.Background(), "u1")
	assert.Error(t, err)

	err = client.PushProgress(context.Background(), "u1", &domain.ProgressUpdate{})
	assert.Error(t, err)
}
