package data

import (
	"context"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/prompt_radar/app/display/internal/conf"
)

func newBackend(t *testing.T, url string) *Backend {
	t.Helper()
	b, cleanup, err := NewBackend(&conf.Backend{BaseUrl: url + "/", Timeout: "2s"}, log.DefaultLogger)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return b
}

func TestForward(t *testing.T) {
	ts := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "/api/analyze", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"query":"q"}`, string(body))
		w.WriteHeader(nethttp.StatusBadRequest)
		w.Write([]byte(`{"detail":"분석 실패: x"}`))
	}))
	defer ts.Close()

	reply, err := newBackend(t, ts.URL).Forward(context.Background(), nethttp.MethodPost, "/api/analyze", []byte(`{"query":"q"}`))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, reply.Status)
	assert.JSONEq(t, `{"detail":"분석 실패: x"}`, string(reply.Body))
}

func TestForward_InvalidBody(t *testing.T) {
	ts := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte("<html>oops</html>"))
	}))
	defer ts.Close()

	_, err := newBackend(t, ts.URL).Forward(context.Background(), nethttp.MethodGet, "/api/strategies", nil)
	assert.True(t, errors.Is(err, ErrInvalidBody), err)
}

func TestForward_Unreachable(t *testing.T) {
	ts := httptest.NewServer(nethttp.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := newBackend(t, url).Health(context.Background())
	assert.True(t, errors.Is(err, ErrUnreachable), err)
}

func TestNewBackend_EmptyURL(t *testing.T) {
	_, _, err := NewBackend(&conf.Backend{}, log.DefaultLogger)
	assert.Error(t, err)
}
