// Package session authenticates against the fixed identity table and holds
// the current user for the life of the process, persisting the identity so a
// restart resumes the session without re-prompting.
package session

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"dental-center-management/internal/auth"
	"dental-center-management/internal/metrics"
	"dental-center-management/internal/model"
	"dental-center-management/internal/storage"
)

type Store struct {
	mu      sync.RWMutex
	current *model.User

	identities map[string]model.User // by email
	creds      map[string]string     // email -> bcrypt hash

	kv        storage.KV
	secret    string
	log       *logrus.Logger
	met       *metrics.Metrics
	limiter   *loginLimiter
	closeOnce sync.Once
}

// Option configures optional session behavior.
type Option func(*Store)

// WithLoginThrottle rate-limits login attempts per email. Throttled attempts
// report failure without touching credentials.
func WithLoginThrottle(perMinute float64, burst int) Option {
	return func(s *Store) {
		s.limiter = newLoginLimiter(rate.Limit(perMinute/60), burst)
	}
}

// New builds the store from the seed identity table, hashing the demo
// passwords so nothing compares plaintext after startup, then restores any
// persisted session. A snapshot that fails to parse or verify is treated as
// "no session"; restoration never fails the caller.
func New(kv storage.KV, secret string, log *logrus.Logger, met *metrics.Metrics, opts ...Option) (*Store, error) {
	s := &Store{
		identities: make(map[string]model.User, len(model.SeedUsers)),
		creds:      make(map[string]string, len(model.SeedPasswords)),
		kv:         kv,
		secret:     secret,
		log:        log,
		met:        met,
	}
	for _, u := range model.SeedUsers {
		s.identities[u.Email] = u
	}
	for email, pw := range model.SeedPasswords {
		hash, err := auth.HashPassword(pw)
		if err != nil {
			return nil, err
		}
		s.creds[email] = hash
	}
	for _, opt := range opts {
		opt(s)
	}
	s.restore()
	return s, nil
}

func (s *Store) restore() {
	payload, ok, err := s.kv.Get(storage.KeySession)
	if err != nil {
		s.log.WithError(err).Warn("read session snapshot")
		return
	}
	if !ok {
		return
	}
	u, err := auth.ParseSessionToken(string(payload), s.secret)
	if err != nil {
		s.log.WithError(err).Warn("session snapshot rejected, starting logged out")
		return
	}
	s.current = u
	s.log.WithField("email", u.Email).Info("session restored")
}

// Login authenticates the credential pair. Failure is a plain false — the
// caller shows one generic message, never which half was wrong.
func (s *Store) Login(email, password string) bool {
	if s.limiter != nil && !s.limiter.allow(email) {
		s.met.AuthAttempts.WithLabelValues("throttled").Inc()
		return false
	}

	u, ok := s.identities[email]
	if !ok || !auth.CheckPassword(s.creds[email], password) {
		s.met.AuthAttempts.WithLabelValues("failure").Inc()
		return false
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()

	tok, err := auth.MakeSessionToken(u, s.secret)
	if err == nil {
		err = s.kv.Put(storage.KeySession, []byte(tok))
	}
	if err != nil {
		// session is valid in memory either way; it just won't survive a restart
		s.log.WithError(err).Warn("persist session snapshot")
	}
	s.met.AuthAttempts.WithLabelValues("success").Inc()
	return true
}

// Logout clears the session and removes the persisted snapshot. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	if err := s.kv.Delete(storage.KeySession); err != nil {
		s.log.WithError(err).Warn("remove session snapshot")
	}
}

// Close stops the throttle's cleanup goroutine, if any. Idempotent.
func (s *Store) Close() {
	if s.limiter != nil {
		s.closeOnce.Do(func() { close(s.limiter.stop) })
	}
}

// Current returns a copy of the authenticated user, or nil when logged out.
func (s *Store) Current() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// loginLimiter keeps one token bucket per email, dropping buckets idle for a
// few minutes. Its cleanup goroutine runs until stop closes.
type loginLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	r       rate.Limit
	burst   int
	stop    chan struct{}
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

func newLoginLimiter(r rate.Limit, burst int) *loginLimiter {
	ll := &loginLimiter{
		buckets: make(map[string]*bucket),
		r:       r,
		burst:   burst,
		stop:    make(chan struct{}),
	}
	go func() {
		tick := time.NewTicker(time.Minute)
		defer tick.Stop()
		for {
			select {
			case <-ll.stop:
				return
			case <-tick.C:
			}
			ll.mu.Lock()
			for email, b := range ll.buckets {
				if time.Since(b.seen) > 3*time.Minute {
					delete(ll.buckets, email)
				}
			}
			ll.mu.Unlock()
		}
	}()
	return ll
}

func (ll *loginLimiter) allow(email string) bool {
	ll.mu.Lock()
	b, ok := ll.buckets[email]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(ll.r, ll.burst)}
		ll.buckets[email] = b
	}
	b.seen = time.Now()
	ll.mu.Unlock()
	return b.lim.Allow()
}
