package lazy

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer instruments section fetches. With no SDK installed these spans are
// no-ops.
var tracer = otel.Tracer("vpndeck/internal/lazy")

// State is the loading state of a section.
type State int

const (
	StateNotStarted State = iota
	StateLoading
	StateLoaded
	StateError
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	case StateRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

// ErrFetchTimeout tags a fetch that exceeded the section's timeout.
var ErrFetchTimeout = errors.New("fetch timed out")

// IsTimeout reports whether err carries the timeout tag.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrFetchTimeout)
}

// Config controls a section's loading behavior.
type Config struct {
	AutoLoad      bool
	ShowSpinner   bool
	ShowProgress  bool
	Timeout       time.Duration
	Debounce      time.Duration
	CacheDuration time.Duration
	LoadingText   string
	Placeholder   string
	RetryOnError  bool
}

// Fetch is the asynchronous operation attached to a section. It must observe
// ctx at its suspension points; cancellation is cooperative.
type Fetch[T any] func(ctx context.Context) (T, error)

// Hooks are the render callbacks a section drives. Exactly one of them is
// invoked, synchronously, on every state change.
type Hooks[T any] struct {
	Loading func()
	Content func(T)
	Error   func(message string)
}

// ResultMsg carries a settled fetch back into the update loop. Gen matches
// the fetch generation that produced it; stale results are discarded.
type ResultMsg struct {
	SectionID string
	Gen       int
	Value     any
	Err       error
	Canceled  bool
}

// Section is a UI section with an attached asynchronous fetch and a loading
// state machine. Load and Reload return Bubble Tea commands; the resulting
// ResultMsg must be routed back through Apply. At most one fetch is in
// flight per section.
type Section[T any] struct {
	id    string
	cfg   Config
	fetch Fetch[T]
	hooks Hooks[T]

	state      State
	lastErr    error
	value      T
	hasValue   bool
	fetchedAt  time.Time
	lastReload time.Time
	startedAt  time.Time
	gen        int
	cancel     context.CancelFunc

	now func() time.Time // swapped in tests
}

// NewSection creates a section in StateNotStarted.
func NewSection[T any](id string, cfg Config, fetch Fetch[T]) *Section[T] {
	return &Section[T]{id: id, cfg: cfg, fetch: fetch, now: time.Now}
}

// SetHooks installs the render callbacks.
func (s *Section[T]) SetHooks(h Hooks[T]) {
	s.hooks = h
}

// ID returns the section's identity used to route ResultMsgs.
func (s *Section[T]) ID() string { return s.id }

// State returns the current loading state.
func (s *Section[T]) State() State { return s.state }

// Config returns the section's configuration.
func (s *Section[T]) Config() Config { return s.cfg }

// Value returns the last successful fetch result, if any.
func (s *Section[T]) Value() (T, bool) {
	return s.value, s.hasValue
}

// FetchedAt returns when the cached value was fetched.
func (s *Section[T]) FetchedAt() time.Time { return s.fetchedAt }

// Err returns the failure that put the section in StateError, or nil.
func (s *Section[T]) Err() error { return s.lastErr }

// StartedAt returns when the in-flight fetch was started. Zero when no fetch
// has started since creation or Close.
func (s *Section[T]) StartedAt() time.Time { return s.startedAt }

// Load starts the initial fetch. Calling it while a fetch is in flight is a
// no-op; calling it from StateError re-invokes the fetch only when the
// config allows retry. Returns nil when no fetch was started.
func (s *Section[T]) Load() tea.Cmd {
	switch s.state {
	case StateLoading, StateRefreshing, StateLoaded:
		return nil
	case StateError:
		if !s.cfg.RetryOnError {
			return nil
		}
	}
	s.transition(StateLoading)
	return s.start()
}

// Reload refreshes a settled section. Requests within the debounce window of
// the previously accepted reload request are dropped silently; the window is
// measured from request time, not completion time.
func (s *Section[T]) Reload() tea.Cmd {
	if s.state != StateLoaded && s.state != StateError {
		return nil
	}
	now := s.now()
	if s.cfg.Debounce > 0 && !s.lastReload.IsZero() && now.Sub(s.lastReload) < s.cfg.Debounce {
		return nil
	}
	s.lastReload = now
	s.transition(StateRefreshing)
	return s.start()
}

// HydrateFromCache serves a fresh cached value without fetching. It only
// applies to a section that has not started loading; whether to call it is
// the mounting screen's policy.
func (s *Section[T]) HydrateFromCache() bool {
	if s.state != StateNotStarted || !s.Fresh() {
		return false
	}
	s.state = StateLoaded
	if s.hooks.Content != nil {
		s.hooks.Content(s.value)
	}
	return true
}

// Fresh reports whether the cached value is within the cache duration.
func (s *Section[T]) Fresh() bool {
	if !s.hasValue || s.cfg.CacheDuration <= 0 {
		return false
	}
	return s.now().Sub(s.fetchedAt) <= s.cfg.CacheDuration
}

// Apply consumes a ResultMsg. Returns false when the message belongs to a
// different section or to a superseded fetch generation.
func (s *Section[T]) Apply(msg ResultMsg) bool {
	if msg.SectionID != s.id || msg.Gen != s.gen {
		return false
	}
	s.cancel = nil
	if msg.Canceled {
		// Unmount or supersede; the section is being discarded.
		return true
	}
	if msg.Err != nil {
		s.state = StateError
		s.lastErr = msg.Err
		if s.hooks.Error != nil {
			s.hooks.Error(msg.Err.Error())
		}
		return true
	}
	value, ok := msg.Value.(T)
	if !ok {
		s.state = StateError
		if s.hooks.Error != nil {
			s.hooks.Error("fetch returned an unexpected value")
		}
		return true
	}
	s.value = value
	s.hasValue = true
	s.lastErr = nil
	s.fetchedAt = s.now()
	s.state = StateLoaded
	if s.hooks.Content != nil {
		s.hooks.Content(value)
	}
	return true
}

// Close cancels any in-flight fetch and invalidates its result. Called on
// unmount; cancellation is best-effort. The section returns to
// StateNotStarted but keeps its cached value, so a later mount may call
// HydrateFromCache instead of fetching.
func (s *Section[T]) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.state = StateNotStarted
	s.startedAt = time.Time{}
}

// CanRetry reports whether the error state offers a retry affordance.
func (s *Section[T]) CanRetry() bool {
	return s.state == StateError && s.cfg.RetryOnError
}

func (s *Section[T]) transition(state State) {
	s.state = state
	if s.hooks.Loading != nil {
		s.hooks.Loading()
	}
}

// start launches the fetch for the current generation and returns the
// command that settles it. The fetch runs in its own goroutine so the
// timeout fires even when the fetch never returns.
func (s *Section[T]) start() tea.Cmd {
	s.gen++
	gen := s.gen
	s.startedAt = s.now()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	id, fetch, timeout := s.id, s.fetch, s.cfg.Timeout

	return func() tea.Msg {
		fctx := ctx
		if timeout > 0 {
			var tc context.CancelFunc
			fctx, tc = context.WithTimeout(ctx, timeout)
			defer tc()
		}
		_, span := tracer.Start(fctx, "section.fetch",
			trace.WithAttributes(attribute.String("section.id", id)))
		defer span.End()

		type result struct {
			value T
			err   error
		}
		ch := make(chan result, 1)
		go func() {
			v, err := fetch(fctx)
			ch <- result{v, err}
		}()

		select {
		case r := <-ch:
			if r.err != nil {
				span.RecordError(r.err)
				span.SetStatus(codes.Error, r.err.Error())
				return ResultMsg{SectionID: id, Gen: gen, Err: r.err}
			}
			span.SetStatus(codes.Ok, "")
			return ResultMsg{SectionID: id, Gen: gen, Value: r.value}
		case <-fctx.Done():
			if errors.Is(fctx.Err(), context.DeadlineExceeded) {
				span.RecordError(ErrFetchTimeout)
				span.SetStatus(codes.Error, ErrFetchTimeout.Error())
				return ResultMsg{SectionID: id, Gen: gen, Err: ErrFetchTimeout}
			}
			span.SetStatus(codes.Error, "canceled")
			return ResultMsg{SectionID: id, Gen: gen, Canceled: true}
		}
	}
}
