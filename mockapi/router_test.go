package mockapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func post(t *testing.T, r http.Handler, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w.Code, out
}

func TestRouter(t *testing.T) {
	svc := NewService()
	svc.SetComments("dQw4w9WgXcQ", []Comment{{Author: "rick", Text: "never"}, {Text: "gonna"}})
	svc.SetUnavailable("xxxxxxxxxxx", "Transcripts are disabled for this video.")
	r := NewRouter(svc, nil)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantKey    string
		wantValue  any
	}{
		{"ask before submit", "/ask", `{"video_id":"dQw4w9WgXcQ","question":"q"}`, http.StatusBadRequest, "detail", ErrNotSubmitted.Error()},
		{"submit", "/submit", `{"video_id":"dQw4w9WgXcQ"}`, http.StatusOK, "message", "Transcript processed and stored successfully."},
		{"ask after submit", "/ask", `{"video_id":"dQw4w9WgXcQ","question":"why?"}`, http.StatusOK, "answer", "Answer #1 about dQw4w9WgXcQ: why?"},
		{"submit unavailable", "/submit", `{"video_id":"xxxxxxxxxxx"}`, http.StatusNotFound, "detail", "Transcripts are disabled for this video."},
		{"submit empty id", "/submit", `{"video_id":""}`, http.StatusBadRequest, "detail", ErrNoVideoID.Error()},
		{"malformed body", "/submit", `{`, http.StatusUnprocessableEntity, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, r, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantKey != "" {
				assert.Equal(t, tt.wantValue, body[tt.wantKey])
			}
		})
	}
}

func TestRouterComments(t *testing.T) {
	svc := NewService()
	svc.SetComments("dQw4w9WgXcQ", []Comment{{Author: "rick", Text: "never"}, {Text: "gonna"}})
	r := NewRouter(svc, nil)

	status, body := post(t, r, "/getcomment", `{"video_id":"dQw4w9WgXcQ"}`)
	require.Equal(t, http.StatusOK, status)

	comments, ok := body["comments"].([]any)
	require.True(t, ok)
	require.Len(t, comments, 2)
	assert.Equal(t, map[string]any{"author": "rick", "comment": "never"}, comments[0])
	assert.Equal(t, map[string]any{"comment": "gonna"}, comments[1])

	status, body = post(t, r, "/getcomment", `{"video_id":"9bZkp7q19f0"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["comments"])
}
