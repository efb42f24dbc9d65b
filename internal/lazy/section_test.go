package lazy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives debounce and cache checks without sleeping.
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.current }
func (c *fakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

func constFetch(value string) Fetch[string] {
	return func(ctx context.Context) (string, error) { return value, nil }
}

func TestSection_LoadIdempotent(t *testing.T) {
	fetches := 0
	s := NewSection("servers", Config{}, func(ctx context.Context) (string, error) {
		fetches++
		return "ok", nil
	})

	cmd := s.Load()
	require.NotNil(t, cmd)
	assert.Equal(t, StateLoading, s.State())

	// Second load while the first is in flight is a no-op.
	assert.Nil(t, s.Load())

	msg := cmd().(ResultMsg)
	require.True(t, s.Apply(msg))
	assert.Equal(t, StateLoaded, s.State())
	assert.Equal(t, 1, fetches)

	value, ok := s.Value()
	require.True(t, ok)
	assert.Equal(t, "ok", value)
}

func TestSection_HooksFollowTransitions(t *testing.T) {
	var loading, content, errored int
	s := NewSection("bw", Config{}, constFetch("42 MB/s"))
	s.SetHooks(Hooks[string]{
		Loading: func() { loading++ },
		Content: func(string) { content++ },
		Error:   func(string) { errored++ },
	})

	cmd := s.Load()
	assert.Equal(t, 1, loading)

	require.True(t, s.Apply(cmd().(ResultMsg)))
	assert.Equal(t, 1, content)
	assert.Zero(t, errored)
}

func TestSection_FetchFailure(t *testing.T) {
	boom := errors.New("upstream unreachable")
	var gotMessage string
	s := NewSection("servers", Config{RetryOnError: true}, func(ctx context.Context) (string, error) {
		return "", boom
	})
	s.SetHooks(Hooks[string]{Error: func(msg string) { gotMessage = msg }})

	cmd := s.Load()
	require.True(t, s.Apply(cmd().(ResultMsg)))
	assert.Equal(t, StateError, s.State())
	assert.Equal(t, "upstream unreachable", gotMessage)
	assert.False(t, IsTimeout(s.Err()))
	assert.True(t, s.CanRetry())

	// The retry affordance re-invokes Load from StateError.
	assert.NotNil(t, s.Load())
	assert.Equal(t, StateLoading, s.State())
}

func TestSection_NoRetryWithoutAffordance(t *testing.T) {
	s := NewSection("servers", Config{}, func(ctx context.Context) (string, error) {
		return "", errors.New("nope")
	})
	cmd := s.Load()
	require.True(t, s.Apply(cmd().(ResultMsg)))

	assert.False(t, s.CanRetry())
	assert.Nil(t, s.Load())
}

func TestSection_ReloadDebounce(t *testing.T) {
	clock := newFakeClock()
	fetches := 0
	s := NewSection("users", Config{Debounce: 300 * time.Millisecond}, func(ctx context.Context) (string, error) {
		fetches++
		return "ok", nil
	})
	s.now = clock.Now

	require.True(t, s.Apply(s.Load()().(ResultMsg)))
	require.Equal(t, 1, fetches)

	cmd := s.Reload()
	require.NotNil(t, cmd)
	require.True(t, s.Apply(cmd().(ResultMsg)))
	require.Equal(t, 2, fetches)

	// 50ms later: dropped silently, prior result stands.
	clock.Advance(50 * time.Millisecond)
	assert.Nil(t, s.Reload())
	assert.Equal(t, StateLoaded, s.State())

	// Past the window the reload goes through.
	clock.Advance(300 * time.Millisecond)
	assert.NotNil(t, s.Reload())
	assert.Equal(t, StateRefreshing, s.State())
}

func TestSection_ReloadOnlyWhenSettled(t *testing.T) {
	s := NewSection("users", Config{}, constFetch("ok"))
	assert.Nil(t, s.Reload(), "reload before first load")

	s.Load()
	assert.Nil(t, s.Reload(), "reload while loading")
}

func TestSection_Timeout(t *testing.T) {
	s := NewSection("stuck", Config{Timeout: 50 * time.Millisecond, RetryOnError: true},
		func(ctx context.Context) (string, error) {
			<-ctx.Done() // never resolves on its own
			return "", ctx.Err()
		})

	cmd := s.Load()
	start := time.Now()
	msg := cmd().(ResultMsg)
	elapsed := time.Since(start)

	require.True(t, s.Apply(msg))
	assert.Equal(t, StateError, s.State())
	assert.True(t, IsTimeout(s.Err()))
	assert.Less(t, elapsed, time.Second, "timeout should fire independently of fetch completion")
}

func TestSection_CloseDiscardsInFlightResult(t *testing.T) {
	var content int
	s := NewSection("users", Config{}, constFetch("ok"))
	s.SetHooks(Hooks[string]{Content: func(string) { content++ }})

	cmd := s.Load()
	s.Close()

	// The fetch settled after unmount; its result must not apply.
	assert.False(t, s.Apply(cmd().(ResultMsg)))
	assert.Equal(t, StateNotStarted, s.State())
	assert.Zero(t, content)
}

func TestSection_CacheHydration(t *testing.T) {
	clock := newFakeClock()
	fetches := 0
	s := NewSection("dash", Config{CacheDuration: time.Minute}, func(ctx context.Context) (string, error) {
		fetches++
		return "cached", nil
	})
	s.now = clock.Now

	require.True(t, s.Apply(s.Load()().(ResultMsg)))
	s.Close()

	// Remount within the cache window: reuse without fetching.
	clock.Advance(30 * time.Second)
	require.True(t, s.Fresh())
	require.True(t, s.HydrateFromCache())
	assert.Equal(t, StateLoaded, s.State())
	assert.Equal(t, 1, fetches)

	// Past the window the cache is stale.
	s.Close()
	clock.Advance(2 * time.Minute)
	assert.False(t, s.Fresh())
	assert.False(t, s.HydrateFromCache())
}

func TestSection_ApplyIgnoresOtherSections(t *testing.T) {
	s := NewSection("mine", Config{}, constFetch("ok"))
	s.Load()

	assert.False(t, s.Apply(ResultMsg{SectionID: "theirs", Gen: 1, Value: "x"}))
	assert.Equal(t, StateLoading, s.State())
}

func TestSection_FailureIsolation(t *testing.T) {
	bad := NewSection("bad", Config{}, func(ctx context.Context) (string, error) {
		return "", errors.New("boom")
	})
	good := NewSection("good", Config{}, constFetch("fine"))

	badCmd := bad.Load()
	goodCmd := good.Load()
	require.True(t, bad.Apply(badCmd().(ResultMsg)))
	require.True(t, good.Apply(goodCmd().(ResultMsg)))

	assert.Equal(t, StateError, bad.State())
	assert.Equal(t, StateLoaded, good.State())
}
