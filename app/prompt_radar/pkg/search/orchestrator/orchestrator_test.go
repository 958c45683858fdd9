package orchestrator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/prompt_radar/app/prompt_radar/pkg/search"
)

type fakeSearcher struct {
	results []search.Result
	err     error
	calls   int
	lastReq *search.Request
}

func (f *fakeSearcher) Search(_ context.Context, req *search.Request) (*search.Response, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &search.Response{Results: f.results}, nil
}

func hits(n int) []search.Result {
	out := make([]search.Result, n)
	for i := range out {
		out[i] = search.Result{Title: "t", Snippet: "s", URL: "https://r.example/" + string(rune('a'+i))}
	}
	return out
}

func fixedClock() time.Time {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
}

func TestSearch_PrimarySucceeds(t *testing.T) {
	primary := &fakeSearcher{results: hits(5)}
	ddg := &fakeSearcher{results: hits(1)}
	o := New(Backend{"brave", primary}, &Backend{"duckduckgo", ddg})

	res := o.Search(context.Background(), "AI", 3)
	assert.Equal(t, "brave", res.Engine)
	assert.False(t, res.Degraded)
	assert.Len(t, res.Hits, 3)
	assert.Equal(t, 3, primary.lastReq.MaxResults)
	assert.Zero(t, ddg.calls)
}

func TestSearch_FallsBackOnErrorAndEmpty(t *testing.T) {
	cases := map[string]*fakeSearcher{
		"error": {err: errors.New("HTTP 500")},
		"empty": {results: nil},
	}
	for name, primary := range cases {
		t.Run(name, func(t *testing.T) {
			ddg := &fakeSearcher{results: hits(2)}
			o := New(Backend{"tavily", primary}, &Backend{"duckduckgo", ddg})

			res := o.Search(context.Background(), "AI", 3)
			assert.Equal(t, "duckduckgo", res.Engine)
			assert.False(t, res.Degraded)
			assert.Len(t, res.Hits, 2)
			assert.Equal(t, 1, ddg.calls)
		})
	}
}

func TestSearch_SyntheticWhenEverythingFails(t *testing.T) {
	primary := &fakeSearcher{err: errors.New("timeout")}
	ddg := &fakeSearcher{err: errors.New("status 202")}
	o := New(Backend{"brave", primary}, &Backend{"duckduckgo", ddg}, WithClock(fixedClock))

	res := o.Search(context.Background(), "제주도 여행", 3)
	require.Len(t, res.Hits, 3)
	assert.True(t, res.Degraded)
	assert.Equal(t, EngineSynthetic, res.Engine)
	assert.Equal(t, "제주도 여행에 대한 최신 트렌드 1", res.Hits[0].Title)
	assert.Equal(t, "제주도 여행 관련 최신 정보입니다. 2025년 트렌드를 반영한 내용입니다.", res.Hits[0].Snippet)
	assert.Equal(t, "https://example.com/2", res.Hits[2].URL)
}

func TestSearch_DuckDuckGoPrimaryIsNotRetried(t *testing.T) {
	ddg := &fakeSearcher{err: errors.New("blocked")}
	o := New(Backend{"duckduckgo", ddg}, &Backend{"duckduckgo", ddg})

	res := o.Search(context.Background(), "q", 2)
	assert.Equal(t, 1, ddg.calls)
	assert.True(t, res.Degraded)
	assert.Len(t, res.Hits, 2)
}

func TestSearch_NonPositiveCount(t *testing.T) {
	primary := &fakeSearcher{results: hits(3)}
	ddg := &fakeSearcher{results: hits(3)}
	o := New(Backend{"brave", primary}, &Backend{"duckduckgo", ddg})

	for _, n := range []int{0, -1} {
		res := o.Search(context.Background(), "q", n)
		assert.NotNil(t, res.Hits)
		assert.Empty(t, res.Hits)
	}
	assert.Zero(t, primary.calls)
	assert.Zero(t, ddg.calls)
}

func TestSynthetic_ExactCount(t *testing.T) {
	for _, n := range []int{1, 3, 10} {
		assert.Len(t, Synthetic("q", n, 2024), n)
	}
	assert.Empty(t, Synthetic("q", 0, 2024))
}
