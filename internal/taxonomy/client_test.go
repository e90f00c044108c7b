package taxonomy

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("user", "secret", &Options{BaseURL: srv.URL})
}

func TestSearch_ReturnsCodesInOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "user", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, "software+engineer", r.URL.Query().Get("keyword"))
		assert.Equal(t, "1", r.URL.Query().Get("start"))
		assert.Equal(t, "5", r.URL.Query().Get("end"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"occupation": [{"code": "15-1252.00"}, {"code": "15-1253.00"}]}`))
	})

	codes, err := client.Search(context.Background(), "software+engineer")
	require.NoError(t, err)
	assert.Equal(t, []string{"15-1252.00", "15-1253.00"}, codes)
}

func TestSearch_EmptyQuerySkipsRequest(t *testing.T) {
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected for empty query")
	})

	codes, err := client.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, codes)
}

func TestSearch_NotFoundMeansNoCodes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	codes, err := client.Search(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestSearch_ServerErrorSurfaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Search(context.Background(), "engineer")
	require.Error(t, err)

	var serviceErr *ServiceError
	assert.True(t, errors.As(err, &serviceErr))
}

func TestTechnologySkills_CategoriesAndHotExamples(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/occupations/15-1252.00/summary/technology", r.URL.Path)
		assert.Equal(t, "long", r.URL.Query().Get("display"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"category": null,
			"element": [
				{
					"name": "Development environment software",
					"example": [
						{"name": "Go", "hot_technology": true},
						{"name": "Apache Maven", "hot_technology": false}
					]
				}
			]
		}`))
	})

	skills, err := client.TechnologySkills(context.Background(), "15-1252.00")
	require.NoError(t, err)
	require.Len(t, skills, 2)

	assert.Equal(t, "Development environment software", skills[0].Name)
	assert.InDelta(t, 1.0, skills[0].Relevance, 1e-9)

	// two examples put the hot technology in the top tier
	assert.Equal(t, "Go", skills[1].Name)
	assert.InDelta(t, 1.0, skills[1].Relevance, 1e-9)
}

func TestTechnologySkills_UnprocessableMeansEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	skills, err := client.TechnologySkills(context.Background(), "bad-code")
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestKnowledgeSkills_DetailsPreferred(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/occupations/15-1252.00/details/knowledge", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"element": [{"name": "Mathematics", "score": {"value": 72}}]}`))
	})

	skills, err := client.KnowledgeSkills(context.Background(), "15-1252.00")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Mathematics", skills[0].Name)
	assert.InDelta(t, 0.72, skills[0].Relevance, 1e-9)
}

func TestKnowledgeSkills_FallsBackToSummary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/occupations/15-1252.00/details/knowledge":
			w.WriteHeader(http.StatusNotFound)
		case "/occupations/15-1252.00/summary/knowledge":
			_, _ = w.Write([]byte(`{"report": {"element": [{"name": "Computers and Electronics", "score": {"value": 90}}]}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	skills, err := client.KnowledgeSkills(context.Background(), "15-1252.00")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Computers and Electronics", skills[0].Name)
	assert.InDelta(t, 0.90, skills[0].Relevance, 1e-9)
}

func TestSoftSkills_NormalizesProviderScale(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/occupations/15-1252.00/details/skills", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"element": [
				{"name": "Critical Thinking", "score": {"value": 75}},
				{"name": "Active Listening", "data": [{"id": "IM", "name": "Importance", "value": 60}]},
				{"name": "Unmeasured", "data": [{"id": "LV", "name": "Level", "value": 80}]}
			]
		}`))
	})

	skills, err := client.SoftSkills(context.Background(), "15-1252.00")
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.InDelta(t, 0.75, skills[0].Relevance, 1e-9)
	assert.InDelta(t, 0.60, skills[1].Relevance, 1e-9)
}

func TestTieredExampleScore(t *testing.T) {
	assert.InDelta(t, 1.0, tieredExampleScore(1), 1e-9)
	assert.InDelta(t, 1.0, tieredExampleScore(2), 1e-9)
	assert.InDelta(t, 0.9, tieredExampleScore(3), 1e-9)
	assert.InDelta(t, 0.9, tieredExampleScore(4), 1e-9)
	assert.InDelta(t, 0.8, tieredExampleScore(6), 1e-9)
	// floor at 0.1 for very long lists
	assert.InDelta(t, 0.1, tieredExampleScore(50), 1e-9)
}
