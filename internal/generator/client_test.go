package generator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"growth-roadmap-backend/internal/database/models"
	apperrors "growth-roadmap-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL + "/", Timeout: 2 * time.Second})
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestNewClientRequiresURL(t *testing.T) {
	client, err := NewClient(Config{})

	assert.Nil(t, client)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestGeneratePhases(t *testing.T) {
	orgID := uuid.New()

	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, roadmapPath, r.URL.Path)

			var req RoadmapRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, orgID, req.OrganizationID)
			assert.Equal(t, models.MethodologyScalingUp, req.Methodology)

			writeJSON(w, `{"phases":[
				{"phase_number":1,"phase_name":"Discover","duration_weeks":4,
				 "objectives":[{"name":"Interviews","current":0,"target":20}],
				 "checklist":[{"task":"Talk to users","category":"research"}],
				 "playbook":{"steps":["a"]}},
				{"phase_number":2,"phase_name":"Validate","objectives":[],"checklist":[]}
			]}`)
		})

		phases, err := client.GeneratePhases(context.Background(), RoadmapRequest{
			OrganizationID: orgID,
			Methodology:    models.MethodologyScalingUp,
		})

		require.NoError(t, err)
		require.Len(t, phases, 2)
		assert.Equal(t, "Discover", phases[0].PhaseName)
		assert.Equal(t, 20.0, phases[0].Objectives[0].Target)
		assert.JSONEq(t, `{"steps":["a"]}`, string(phases[0].Playbook))

		content := phases[0].Content()
		assert.Len(t, content.Checklist, 1)
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		})

		phases, err := client.GeneratePhases(context.Background(), RoadmapRequest{OrganizationID: orgID})

		assert.Nil(t, phases)
		assert.True(t, apperrors.IsGenerationFailure(err))
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("empty roadmap", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"phases":[]}`)
		})

		_, err := client.GeneratePhases(context.Background(), RoadmapRequest{OrganizationID: orgID})

		assert.True(t, apperrors.IsGenerationFailure(err))
		assert.ErrorIs(t, err, apperrors.ErrEmptyRoadmap)
	})

	t.Run("malformed json", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"phases":"nope"}`)
		})

		_, err := client.GeneratePhases(context.Background(), RoadmapRequest{OrganizationID: orgID})

		assert.ErrorIs(t, err, apperrors.ErrMalformedContent)
	})

	t.Run("missing phase name", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"phases":[{"phase_number":1}]}`)
		})

		_, err := client.GeneratePhases(context.Background(), RoadmapRequest{OrganizationID: orgID})

		assert.ErrorIs(t, err, apperrors.ErrMalformedContent)
	})

	t.Run("duplicate phase numbers", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"phases":[{"phase_number":1,"phase_name":"a"},{"phase_number":1,"phase_name":"b"}]}`)
		})

		_, err := client.GeneratePhases(context.Background(), RoadmapRequest{OrganizationID: orgID})

		assert.ErrorIs(t, err, apperrors.ErrMalformedContent)
		assert.Contains(t, err.Error(), "duplicate phase number 1")
	})

	t.Run("context cancelled", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			// Drain the body so the server watches the connection and cancels r.Context() on client disconnect.
			_, _ = io.Copy(io.Discard, r.Body)
			<-r.Context().Done()
		})
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.GeneratePhases(ctx, RoadmapRequest{OrganizationID: orgID})

		assert.True(t, apperrors.IsGenerationFailure(err))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestRegeneratePhase(t *testing.T) {
	req := PhaseRequest{OrganizationID: uuid.New(), PhaseNumber: 2, PhaseName: "Validate", Attempt: 1}

	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, regeneratePath, r.URL.Path)

			var got PhaseRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, 2, got.PhaseNumber)
			assert.Equal(t, 1, got.Attempt)

			writeJSON(w, `{"objectives":[{"name":"MRR","target":1000}],
				"checklist":[{"task":"Launch pricing page","completed":true}],
				"playbook":{"steps":["b"]}}`)
		})

		content, err := client.RegeneratePhase(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, content.Objectives, 1)
		assert.Equal(t, "MRR", content.Objectives[0].Name)
		require.Len(t, content.Checklist, 1)
		assert.JSONEq(t, `{"steps":["b"]}`, string(content.Playbook))
	})

	t.Run("empty content", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"objectives":[],"checklist":[]}`)
		})

		_, err := client.RegeneratePhase(context.Background(), req)

		assert.True(t, apperrors.IsGenerationFailure(err))
		assert.ErrorIs(t, err, apperrors.ErrMalformedContent)
	})

	t.Run("checklist item without label", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"checklist":[{"task":""}]}`)
		})

		_, err := client.RegeneratePhase(context.Background(), req)

		assert.ErrorIs(t, err, apperrors.ErrMalformedContent)
	})
}

func TestClientCredentials(t *testing.T) {
	var tokenCalls int32
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenCalls, 1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		writeJSON(w, `{"access_token":"tok-123","token_type":"bearer","expires_in":3600}`)
	}))
	defer tokenServer.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		writeJSON(w, `{"phases":[{"phase_number":1,"phase_name":"Discover"}]}`)
	}))
	defer api.Close()

	client, err := NewClient(Config{
		BaseURL:      api.URL,
		TokenURL:     tokenServer.URL,
		ClientID:     "id",
		ClientSecret: "secret",
		Timeout:      2 * time.Second,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := client.GeneratePhases(context.Background(), RoadmapRequest{OrganizationID: uuid.New()})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls), "token is cached between calls")
}
