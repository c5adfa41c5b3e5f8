package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/njyeung/tubechat/backend"
	"github.com/njyeung/tubechat/mockapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStub(t *testing.T) (*backend.HTTPBackend, *mockapi.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := mockapi.NewService()
	srv := httptest.NewServer(mockapi.NewRouter(svc, nil))
	t.Cleanup(srv.Close)

	// trailing slash is trimmed
	return backend.NewHTTPBackend(srv.URL+"/", 0, nil), svc
}

func TestHTTPBackendSubmitAndAsk(t *testing.T) {
	b, svc := newStub(t)
	ctx := context.Background()

	require.NoError(t, b.Submit(ctx, "dQw4w9WgXcQ"))
	assert.True(t, svc.Submitted("dQw4w9WgXcQ"))

	answer, err := b.Ask(ctx, "dQw4w9WgXcQ", "What is this video about?")
	require.NoError(t, err)
	assert.Equal(t, "Answer #1 about dQw4w9WgXcQ: What is this video about?", answer)
}

func TestHTTPBackendServiceErrors(t *testing.T) {
	b, svc := newStub(t)
	ctx := context.Background()
	svc.SetUnavailable("xxxxxxxxxxx", "No transcript found.")

	err := b.Submit(ctx, "xxxxxxxxxxx")
	var se *backend.ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Status)
	assert.Equal(t, "No transcript found.", backend.ErrorDetail(err))

	_, err = b.Ask(ctx, "9bZkp7q19f0", "hello")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.Status)
	assert.Equal(t, "Video not submitted. Please submit first.", backend.ErrorDetail(err))
}

func TestHTTPBackendComments(t *testing.T) {
	b, svc := newStub(t)
	svc.SetComments("dQw4w9WgXcQ", []mockapi.Comment{
		{Author: "rick", Text: "never gonna give you up"},
		{Text: "no author"},
	})

	comments, err := b.GetComments(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, []backend.Comment{
		{Author: "rick", Text: "never gonna give you up"},
		{Author: "", Text: "no author"},
	}, comments)
}

func TestHTTPBackendEmptyVideoID(t *testing.T) {
	b, _ := newStub(t)

	assert.ErrorIs(t, b.Submit(context.Background(), ""), backend.ErrEmptyVideoID)
	_, err := b.GetComments(context.Background(), "")
	assert.ErrorIs(t, err, backend.ErrEmptyVideoID)
}

func TestHTTPBackendErrorWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	b := backend.NewHTTPBackend(srv.URL, time.Second, nil)
	err := b.Submit(context.Background(), "dQw4w9WgXcQ")

	assert.Equal(t, "request failed with status code 502 (Bad Gateway)", backend.ErrorDetail(err))
}

func TestHTTPBackendSendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ask", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{"answer":"ok"}`))
	}))
	defer srv.Close()

	answer, err := backend.NewHTTPBackend(srv.URL, 0, nil).Ask(context.Background(), "dQw4w9WgXcQ", "q")
	require.NoError(t, err)
	assert.Equal(t, "ok", answer)
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, "", backend.ErrorDetail(nil))
	assert.Equal(t, "dial tcp: refused", backend.ErrorDetail(errors.New("dial tcp: refused")))
	wrapped := &backend.ServiceError{Status: 500, Detail: "boom"}
	assert.Equal(t, "boom", backend.ErrorDetail(errors.Join(errors.New("ctx"), wrapped)))
}
