package notes

import (
	"context"
	"time"

	"github.com/2beens/notesbox/internal/telemetry/metrics"
	"github.com/2beens/notesbox/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var _ Store = (*InstrumentedStore)(nil)

// InstrumentedStore decorates a Store with a span, a counter and a duration
// observation per call.
type InstrumentedStore struct {
	next    Store
	backend string
	metrics *metrics.Manager
}

func NewInstrumentedStore(next Store, backend string, metricsManager *metrics.Manager) *InstrumentedStore {
	return &InstrumentedStore{
		next:    next,
		backend: backend,
		metrics: metricsManager,
	}
}

func (s *InstrumentedStore) observe(ctx context.Context, op string) (context.Context, func(err error)) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notes."+op)
	span.SetAttributes(attribute.String("notes.backend", s.backend))
	begin := time.Now()

	return ctx, func(err error) {
		defer span.End()

		status := "ok"
		if err != nil {
			status = "error"
			span.SetStatus(codes.Error, err.Error())
			span.RecordError(err)
			log.Errorf("notes store [%s] %s: %s", s.backend, op, err)
		}

		if s.metrics == nil {
			return
		}
		s.metrics.CounterStoreOps.With(prometheus.Labels{
			"backend": s.backend,
			"op":      op,
			"status":  status,
		}).Inc()
		s.metrics.HistogramStoreOpDuration.With(prometheus.Labels{
			"backend": s.backend,
			"op":      op,
		}).Observe(time.Since(begin).Seconds())
	}
}

func (s *InstrumentedStore) List(ctx context.Context) ([]Note, error) {
	ctx, done := s.observe(ctx, "list")
	notes, err := s.next.List(ctx)
	done(err)
	return notes, err
}

func (s *InstrumentedStore) Get(ctx context.Context, id ID) (*Note, error) {
	ctx, done := s.observe(ctx, "get")
	note, err := s.next.Get(ctx, id)
	done(err)
	return note, err
}

func (s *InstrumentedStore) Add(ctx context.Context, note *Note) (*Note, error) {
	ctx, done := s.observe(ctx, "add")
	added, err := s.next.Add(ctx, note)
	done(err)
	if err == nil && s.metrics != nil {
		s.metrics.CounterNotes.Inc()
	}
	return added, err
}

func (s *InstrumentedStore) Update(ctx context.Context, note *Note) (*Note, error) {
	ctx, done := s.observe(ctx, "update")
	updated, err := s.next.Update(ctx, note)
	done(err)
	return updated, err
}

func (s *InstrumentedStore) Delete(ctx context.Context, id ID) error {
	ctx, done := s.observe(ctx, "delete")
	err := s.next.Delete(ctx, id)
	done(err)
	return err
}

func (s *InstrumentedStore) DeleteAll(ctx context.Context) error {
	ctx, done := s.observe(ctx, "delete_all")
	err := s.next.DeleteAll(ctx)
	done(err)
	if err == nil {
		log.Warnf("notes store [%s]: all notes deleted", s.backend)
	}
	return err
}

func (s *InstrumentedStore) IsValidID(raw string) bool {
	return s.next.IsValidID(raw)
}

func (s *InstrumentedStore) ParseID(raw string) (ID, error) {
	return s.next.ParseID(raw)
}

func (s *InstrumentedStore) NewID() (ID, error) {
	return s.next.NewID()
}
