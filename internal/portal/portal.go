// Package portal is the single surface the presentation layer talks to. It
// composes the record store, the session store and file ingestion, scopes
// reads to the authenticated role, and tells watchers when anything changed.
package portal

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"dental-center-management/internal/files"
	"dental-center-management/internal/metrics"
	"dental-center-management/internal/model"
	"dental-center-management/internal/session"
	"dental-center-management/internal/storage"
	"dental-center-management/internal/store"
)

// Options wires the portal. KV ownership transfers to the portal; Close
// releases it.
type Options struct {
	KV            storage.KV
	SessionSecret string
	Logger        *logrus.Logger

	LoginThrottle      bool
	LoginRatePerMinute float64
	LoginBurst         int
}

type Portal struct {
	records  *store.Store
	sessions *session.Store
	ingest   *files.Ingestor
	kv       storage.KV
	log      *logrus.Logger
	met      *metrics.Metrics

	mu     sync.Mutex
	subs   map[int]chan struct{}
	nextID int
}

// New restores or seeds all state and returns a ready portal.
func New(opts Options) (*Portal, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
	}
	met := metrics.New()

	records, err := store.New(opts.KV, log, met)
	if err != nil {
		return nil, err
	}

	var sessOpts []session.Option
	if opts.LoginThrottle {
		sessOpts = append(sessOpts, session.WithLoginThrottle(opts.LoginRatePerMinute, opts.LoginBurst))
	}
	sessions, err := session.New(opts.KV, opts.SessionSecret, log, met, sessOpts...)
	if err != nil {
		return nil, err
	}

	return &Portal{
		records:  records,
		sessions: sessions,
		ingest:   files.New(log, met),
		kv:       opts.KV,
		log:      log,
		met:      met,
		subs:     make(map[int]chan struct{}),
	}, nil
}

// Close stops background work and releases the durable substrate.
func (p *Portal) Close() error {
	p.sessions.Close()
	return p.kv.Close()
}

// Metrics exposes the portal's collector registry for embedding hosts.
func (p *Portal) Metrics() *prometheus.Registry { return p.met.Registry }

// User returns the authenticated identity, or nil when logged out.
func (p *Portal) User() *model.User { return p.sessions.Current() }

// Patients returns the full patient collection in insertion order.
func (p *Portal) Patients() []model.Patient { return p.records.Patients() }

// Incidents returns the full incident collection in insertion order.
func (p *Portal) Incidents() []model.Incident { return p.records.Incidents() }

// VisibleIncidents scopes the collection to the session: admins see all,
// patients only their own record's incidents, logged-out callers nothing.
func (p *Portal) VisibleIncidents() []model.Incident {
	u := p.sessions.Current()
	switch {
	case u == nil:
		return nil
	case u.Role == model.RoleAdmin:
		return p.records.Incidents()
	default:
		return p.records.PatientIncidents(u.PatientID)
	}
}

// Login authenticates and, on success, announces the session change.
func (p *Portal) Login(email, password string) bool {
	ok := p.sessions.Login(email, password)
	if ok {
		p.notify()
	}
	return ok
}

// Logout ends the session. Idempotent.
func (p *Portal) Logout() {
	p.sessions.Logout()
	p.notify()
}

func (p *Portal) AddPatient(draft model.PatientDraft) (*model.Patient, error) {
	created, err := p.records.AddPatient(draft)
	if err != nil {
		return nil, err
	}
	p.notify()
	return created, nil
}

func (p *Portal) UpdatePatient(id string, patch model.PatientPatch) error {
	if err := p.records.UpdatePatient(id, patch); err != nil {
		return err
	}
	p.notify()
	return nil
}

func (p *Portal) DeletePatient(id string) error {
	if err := p.records.DeletePatient(id); err != nil {
		return err
	}
	p.notify()
	return nil
}

func (p *Portal) AddIncident(draft model.IncidentDraft) (*model.Incident, error) {
	created, err := p.records.AddIncident(draft)
	if err != nil {
		return nil, err
	}
	p.notify()
	return created, nil
}

func (p *Portal) UpdateIncident(id string, patch model.IncidentPatch) error {
	if err := p.records.UpdateIncident(id, patch); err != nil {
		return err
	}
	p.notify()
	return nil
}

func (p *Portal) DeleteIncident(id string) error {
	if err := p.records.DeleteIncident(id); err != nil {
		return err
	}
	p.notify()
	return nil
}

// PatientIncidents returns every incident owned by patientID, in collection
// order.
func (p *Portal) PatientIncidents(patientID string) []model.Incident {
	return p.records.PatientIncidents(patientID)
}

// UploadFile ingests one blob off the calling flow; the channel settles with
// exactly one result.
func (p *Portal) UploadFile(ctx context.Context, in files.Input) <-chan files.Result {
	return p.ingest.UploadAsync(ctx, in)
}

// UploadFiles ingests a batch; a failing file does not abort the rest.
func (p *Portal) UploadFiles(ctx context.Context, ins []files.Input) []files.Result {
	return p.ingest.UploadAll(ctx, ins)
}

// Watch returns a channel that receives a tick after every committed change,
// and a cancel func that must be called when the watcher goes away. Ticks
// coalesce; a slow watcher sees at least one tick for any burst.
func (p *Portal) Watch() (<-chan struct{}, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	ch := make(chan struct{}, 1)
	p.subs[id] = ch
	return ch, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

func (p *Portal) notify() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ch := range p.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
