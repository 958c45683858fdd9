package server

import (
	"encoding/json"
	"io"
	"io/fs"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/prompt_radar/app/display/internal/conf"
	"github.com/iWorld-y/prompt_radar/app/display/internal/data"
	"github.com/iWorld-y/prompt_radar/app/display/internal/service"
)

func newFrontend(t *testing.T, backendURL string) *httptest.Server {
	t.Helper()
	backend, cleanup, err := data.NewBackend(&conf.Backend{BaseUrl: backendURL, Timeout: "2s"}, log.DefaultLogger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	srv := NewHTTPServer(&conf.Server{Http: &conf.HTTP{Timeout: "5s"}}, service.NewProxyService(backend, log.DefaultLogger), log.DefaultLogger)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(`{"status":"healthy","version":"1.0.0"}`))
	})
	mux.HandleFunc("/api/strategies", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(`{"strategies":[{"type":"cot"}]}`))
	})
	mux.HandleFunc("/api/analyze", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(map[string]string{"query": req["query"]})
	})
	mux.HandleFunc("/api/generate-prompts", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusBadRequest)
		w.Write([]byte(`{"detail":"프롬프트 생성 실패: invalid intent"}`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func readBody(t *testing.T, resp *nethttp.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestIndexAndStatic(t *testing.T) {
	ts := newFrontend(t, "http://127.0.0.1:1")

	resp, err := nethttp.Get(ts.URL + "/")
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "step-indicator-4")

	resp, err = nethttp.Get(ts.URL + "/static/main.js")
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "/api/generate-prompts")
}

func TestIndexContentType(t *testing.T) {
	ts := newFrontend(t, "http://127.0.0.1:1")

	resp, err := nethttp.Get(ts.URL + "/")
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, readBody(t, resp), "/static/main.js")

	resp, err = nethttp.Get(ts.URL + "/static/missing.css")
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	readBody(t, resp)
}

func TestMustSub(t *testing.T) {
	sub := mustSub(assets, "assets")
	_, err := fs.Stat(sub, "index.html")
	assert.NoError(t, err)

	assert.Panics(t, func() { mustSub(assets, "../assets") })
}

func TestProxy(t *testing.T) {
	ts := newFrontend(t, fakeBackend(t).URL)

	resp, err := nethttp.Post(ts.URL+"/api/analyze", "application/json", strings.NewReader(`{"query":"AI"}`))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"query":"AI"}`, readBody(t, resp))

	resp, err = nethttp.Get(ts.URL + "/api/strategies")
	require.NoError(t, err)
	assert.JSONEq(t, `{"strategies":[{"type":"cot"}]}`, readBody(t, resp))

	// 后端的错误状态码原样返回
	resp, err = nethttp.Post(ts.URL+"/api/generate-prompts", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "프롬프트 생성 실패")

	resp, err = nethttp.Get(ts.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"frontend":"healthy","backend":{"status":"healthy","version":"1.0.0"}}`, readBody(t, resp))
}

func TestProxy_BackendDown(t *testing.T) {
	down := httptest.NewServer(nethttp.NotFoundHandler())
	url := down.URL
	down.Close()
	ts := newFrontend(t, url)

	resp, err := nethttp.Post(ts.URL+"/api/analyze", "application/json", strings.NewReader(`{"query":"AI"}`))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "백엔드 서버에 연결할 수 없습니다")

	resp, err = nethttp.Get(ts.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusServiceUnavailable, resp.StatusCode)
	assert.JSONEq(t, `{"frontend":"healthy","backend":"unhealthy"}`, readBody(t, resp))
}

func TestProxy_BadGateway(t *testing.T) {
	backend := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte("not json"))
	}))
	defer backend.Close()
	ts := newFrontend(t, backend.URL)

	resp, err := nethttp.Get(ts.URL + "/api/strategies")
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"error"`)
}

func TestProxy_MalformedRequest(t *testing.T) {
	ts := newFrontend(t, fakeBackend(t).URL)

	resp, err := nethttp.Post(ts.URL+"/api/analyze", "application/json", strings.NewReader(`{"query":`))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	readBody(t, resp)
}
