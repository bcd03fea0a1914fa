package poller

import (
	"context"
	"log"
	"sync"
	"time"

	"pix_checkout/internal/domain/entities"

	"github.com/google/uuid"
)

// StatusFetcher is the reconciliation dependency of a Session. It is
// implemented by the status use case in-process and by the HTTP API client
// out-of-process.
type StatusFetcher interface {
	FetchStatus(ctx context.Context, paymentID string) (entities.PaymentStatus, error)
}

// Phase is the single source of truth for a session's lifecycle.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhasePolling  Phase = "polling"
	PhaseApproved Phase = "approved"
	PhaseRejected Phase = "rejected"
	PhaseExpired  Phase = "expired"
	PhaseStopped  Phase = "stopped"
)

const (
	DefaultInterval    = 5 * time.Second
	DefaultMaxAttempts = 24
)

// Options tune one Session. Zero values fall back to the defaults above.
type Options struct {
	Interval    time.Duration
	MaxAttempts int

	// OnSuccess fires exactly once, on the first paid classification.
	OnSuccess func()
}

// Session is one bounded polling run for one payment. Each session owns its
// timer goroutine exclusively; nothing is shared between sessions.
//
// The paid flag is permanent: once set it suppresses every later
// reconciliation, so a stale "still pending" response can never undo an
// approval already delivered through OnSuccess.
type Session struct {
	id          string
	paymentID   string
	fetcher     StatusFetcher
	interval    time.Duration
	maxAttempts int

	mu        sync.Mutex
	phase     Phase
	paid      bool
	attempts  int
	gen       int
	last      *entities.PaymentStatus
	onSuccess func()
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewSession(paymentID string, fetcher StatusFetcher, opts Options) *Session {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Session{
		id:          uuid.NewString(),
		paymentID:   paymentID,
		fetcher:     fetcher,
		interval:    interval,
		maxAttempts: maxAttempts,
		phase:       PhaseIdle,
		onSuccess:   opts.OnSuccess,
	}
}

func (s *Session) ID() string        { return s.id }
func (s *Session) PaymentID() string { return s.paymentID }

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// LastStatus returns the most recent reconciled snapshot, if any.
func (s *Session) LastStatus() (entities.PaymentStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return entities.PaymentStatus{}, false
	}
	return *s.last, true
}

// Start begins a polling run: one reconciliation immediately, then one per
// interval until a terminal classification, the attempt budget, Stop, or
// context cancellation. It is a no-op while a run is live and forever after
// the payment was approved. It reports whether a run was started.
func (s *Session) Start(ctx context.Context) bool {
	s.mu.Lock()
	if s.paid || s.phase == PhasePolling {
		s.mu.Unlock()
		return false
	}
	s.gen++
	gen := s.gen
	s.attempts = 0
	s.phase = PhasePolling
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	log.Printf("[pix][poller] session start session=%s payment_id=%s interval=%s max_attempts=%d", s.id, s.paymentID, s.interval, s.maxAttempts)
	go s.run(runCtx, gen, done)
	return true
}

// Stop halts the current run. Safe to call any number of times, from any
// goroutine, with or without a live run; terminal phases are preserved.
func (s *Session) Stop() {
	s.mu.Lock()
	s.gen++
	if s.phase == PhasePolling {
		s.phase = PhaseStopped
	}
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Wait blocks until the current run's goroutine has exited. Returns
// immediately when no run was started.
func (s *Session) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// CheckNow performs one manual reconciliation, the recovery path after the
// attempt budget ran out. It is suppressed entirely once the payment was
// approved: no fetch is issued and the approved snapshot is returned as-is.
func (s *Session) CheckNow(ctx context.Context) (entities.PaymentStatus, error) {
	s.mu.Lock()
	if s.paid {
		last := *s.last
		s.mu.Unlock()
		return last, nil
	}
	gen := s.gen
	s.mu.Unlock()

	st, err := s.fetcher.FetchStatus(ctx, s.paymentID)
	if err != nil {
		return entities.PaymentStatus{}, err
	}
	s.apply(gen, st)
	return st, nil
}

func (s *Session) run(ctx context.Context, gen int, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if !s.reconcile(ctx, gen) {
			return
		}
		select {
		case <-ctx.Done():
			s.markStopped(gen)
			return
		case <-ticker.C:
		}
	}
}

// reconcile performs one tick. It reports whether the run should continue.
func (s *Session) reconcile(ctx context.Context, gen int) bool {
	s.mu.Lock()
	if gen != s.gen || s.paid || s.phase != PhasePolling {
		s.mu.Unlock()
		return false
	}
	if s.attempts >= s.maxAttempts {
		// Budget exhausted: not a terminal classification, the last
		// pending snapshot stays visible and CheckNow remains available.
		s.phase = PhaseStopped
		cancel := s.cancel
		s.cancel = nil
		s.mu.Unlock()
		if cancel != nil {
			cancel()
		}
		log.Printf("[pix][poller] attempt budget exhausted session=%s payment_id=%s attempts=%d", s.id, s.paymentID, s.attempts)
		return false
	}
	s.attempts++
	attempt := s.attempts
	s.mu.Unlock()

	st, err := s.fetcher.FetchStatus(ctx, s.paymentID)
	if err != nil {
		log.Printf("[pix][poller] status fetch failed session=%s payment_id=%s attempt=%d err=%v", s.id, s.paymentID, attempt, err)
		if ctx.Err() != nil {
			s.markStopped(gen)
			return false
		}
		// Transient: let the next tick try again.
		return true
	}
	return !s.apply(gen, st)
}

// apply commits a reconciled snapshot, guarded against stale results: the
// status is dropped when the session generation moved on (Stop or a fresh
// Start happened while the fetch was in flight) or the payment is already
// approved. Reports whether a terminal state was reached.
func (s *Session) apply(gen int, st entities.PaymentStatus) bool {
	s.mu.Lock()
	if gen != s.gen || s.paid {
		s.mu.Unlock()
		return true
	}

	s.last = &st

	var onSuccess func()
	var cancel context.CancelFunc
	terminal := st.ShouldStop()
	if terminal {
		switch {
		case st.Classification.IsPaid():
			s.paid = true
			s.phase = PhaseApproved
			onSuccess = s.onSuccess
			s.onSuccess = nil
		case st.Classification.IsExpired():
			s.phase = PhaseExpired
		default:
			s.phase = PhaseRejected
		}
		cancel = s.cancel
		s.cancel = nil
	}
	phase := s.phase
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if terminal {
		log.Printf("[pix][poller] terminal state session=%s payment_id=%s phase=%s status=%s", s.id, s.paymentID, phase, st.RawStatus)
	}
	if onSuccess != nil {
		onSuccess()
	}
	return terminal
}

func (s *Session) markStopped(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.gen && s.phase == PhasePolling {
		s.phase = PhaseStopped
	}
}
