package services

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/engine"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driving"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/logger"
)

// Ensure NarrativeService implements the interface.
var _ driving.NarrativeService = (*NarrativeService)(nil)

// Generation modes reported to metrics.
const (
	ModeStandard = "standard"
	ModeBar      = "bar"
)

// NarrativeService runs the engine for each request, picks the seed and
// keeps the audit trail.
type NarrativeService struct {
	mu     sync.RWMutex
	engine *engine.Engine

	records   driven.NarrativeRecordStore
	metrics   driven.NarrativeMetrics
	selectors driven.SelectorFactory
	seeds     func() uint64
	clock     func() time.Time
}

// Option configures a NarrativeService.
type Option func(*NarrativeService)

// WithRecordStore enables the audit trail.
func WithRecordStore(store driven.NarrativeRecordStore) Option {
	return func(s *NarrativeService) {
		s.records = store
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m driven.NarrativeMetrics) Option {
	return func(s *NarrativeService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithSelectorFactory replaces the seeded phrase selector.
func WithSelectorFactory(f driven.SelectorFactory) Option {
	return func(s *NarrativeService) {
		if f != nil {
			s.selectors = f
		}
	}
}

// WithSeedSource sets where seeds come from when a request carries none.
func WithSeedSource(f func() uint64) Option {
	return func(s *NarrativeService) {
		if f != nil {
			s.seeds = f
		}
	}
}

// WithClock sets the time source used for timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *NarrativeService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewNarrativeService creates a new narrative service around an engine.
func NewNarrativeService(e *engine.Engine, opts ...Option) *NarrativeService {
	s := &NarrativeService{
		engine:    e,
		metrics:   noopMetrics{},
		selectors: engine.NewSelector,
		seeds:     randomSeed,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetEngine swaps the engine, e.g. after the vocabulary was edited.
// Requests already running finish on the engine they started with.
func (s *NarrativeService) SetEngine(e *engine.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine = e
}

// Engine returns the current engine.
func (s *NarrativeService) Engine() *engine.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// Generate composes a narrative from the entries' work groups.
func (s *NarrativeService) Generate(ctx context.Context, req domain.NarrativeRequest) (*domain.GeneratedNarrative, error) {
	return s.generate(ctx, req, false)
}

// GenerateCompliant produces a Bar-compliant narrative with a compliance check.
func (s *NarrativeService) GenerateCompliant(ctx context.Context, req domain.NarrativeRequest) (*domain.GeneratedNarrative, error) {
	return s.generate(ctx, req, true)
}

// Validate checks narrative text against the compliance rules.
func (s *NarrativeService) Validate(text string) domain.ComplianceCheck {
	return s.Engine().Validate(text)
}

// Classify returns the category for a description.
func (s *NarrativeService) Classify(description string) domain.CategoryLabel {
	return s.Engine().Classify(description)
}

// Detect returns the narrative type for entries and matter.
func (s *NarrativeService) Detect(entries []domain.TimeEntry, matter *domain.Matter) domain.NarrativeType {
	return s.Engine().Detect(entries, matter)
}

// VocabularyVersion returns the wording version in use.
func (s *NarrativeService) VocabularyVersion() string {
	return s.Engine().VocabularyVersion()
}

// Vocabulary returns the wording tables of the current engine.
func (s *NarrativeService) Vocabulary() *domain.Vocabulary {
	return s.Engine().Vocabulary()
}

// History returns recorded narratives, newest first.
func (s *NarrativeService) History(ctx context.Context, limit int) ([]domain.NarrativeRecord, error) {
	if s.records == nil {
		return []domain.NarrativeRecord{}, nil
	}
	records, err := s.records.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// Replay regenerates a recorded narrative with its seed and stored options and
// compares the text. The request options are only used for records that carry
// no options. The regenerated narrative is not recorded again.
func (s *NarrativeService) Replay(ctx context.Context, recordID string, req domain.NarrativeRequest) (*domain.ReplayResult, error) {
	if s.records == nil {
		return nil, fmt.Errorf("record %s: %w", recordID, domain.ErrNotFound)
	}
	record, err := s.records.Get(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", recordID, err)
	}

	logger.Section("Replay")
	logger.Debug("%s", logger.Fields("record", record.ID, "seed", record.Seed, "bar", record.BarMode))

	eng := s.Engine()
	if v := eng.VocabularyVersion(); v != record.VocabularyVersion {
		logger.Warn("record %s was generated with vocabulary %s, current is %s", record.ID, record.VocabularyVersion, v)
	}

	opts := req.Options
	if record.Options != nil {
		opts = *record.Options
	} else {
		logger.Warn("record %s has no stored options, replaying with the options given", record.ID)
	}
	opts.Seed = record.Seed
	if record.BarMode {
		opts.NarrativeType = record.NarrativeType
	}

	out, err := s.run(eng, req.Entries, req.Matter, opts, record.BarMode)
	if err != nil {
		return nil, err
	}

	return &domain.ReplayResult{
		Record:      *record,
		Regenerated: out,
		Identical:   out.Narrative == record.Narrative,
	}, nil
}

func (s *NarrativeService) generate(ctx context.Context, req domain.NarrativeRequest, bar bool) (*domain.GeneratedNarrative, error) {
	mode := ModeStandard
	if bar {
		mode = ModeBar
	}
	logger.Section("Narrative Generation")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := s.clock()
	opts := req.Options
	if opts.Seed == 0 {
		opts.Seed = s.seeds()
	}
	logger.Debug("%s", logger.Fields("mode", mode, "entries", len(req.Entries), "seed", opts.Seed))

	out, err := s.run(s.Engine(), req.Entries, req.Matter, opts, bar)
	if err != nil {
		var inputErr *domain.InvalidInputError
		if errors.As(err, &inputErr) {
			s.metrics.ObserveRejected(inputErr.Field)
		}
		return nil, err
	}
	logger.Info("Generated %d words, confidence %.2f", out.WordCount, out.Confidence)

	if s.records != nil {
		record := newRecord(out, req, opts, bar)
		if err := s.records.Save(ctx, record); err != nil {
			return nil, fmt.Errorf("record narrative: %w", err)
		}
		out.RecordID = record.ID
		logger.Debug("Recorded as %s", record.ID)
	}

	s.metrics.ObserveGenerated(mode, out.NarrativeType, out.Confidence, out.Compliance, s.clock().Sub(start))
	return out, nil
}

func (s *NarrativeService) run(eng *engine.Engine, entries []domain.TimeEntry, matter *domain.Matter, opts domain.NarrativeOptions, bar bool) (*domain.GeneratedNarrative, error) {
	sel := s.selectors(opts.Seed)

	var out *domain.GeneratedNarrative
	var err error
	if bar {
		out, err = eng.GenerateCompliant(entries, matter, opts, sel)
	} else {
		out, err = eng.Generate(entries, matter, opts, sel)
	}
	if err != nil {
		return nil, err
	}

	out.Seed = opts.Seed
	out.GeneratedAt = s.clock()
	return out, nil
}

func newRecord(out *domain.GeneratedNarrative, req domain.NarrativeRequest, opts domain.NarrativeOptions, bar bool) domain.NarrativeRecord {
	record := domain.NarrativeRecord{
		Options:           &opts,
		ID:                uuid.NewString(),
		Seed:              out.Seed,
		NarrativeType:     out.NarrativeType,
		BarMode:           bar,
		Narrative:         out.Narrative,
		WordCount:         out.WordCount,
		Confidence:        out.Confidence,
		EntryCount:        len(req.Entries),
		TotalMinutes:      domain.TotalMinutes(req.Entries),
		VocabularyVersion: out.VocabularyVersion,
		CreatedAt:         out.GeneratedAt,
	}
	if req.Matter != nil {
		record.MatterTitle = req.Matter.Title
		record.ClientName = req.Matter.ClientName
	}
	if out.Compliance != nil {
		record.IsCompliant = out.Compliance.IsCompliant
		record.ComplianceScore = out.Compliance.ComplianceScore
	}
	return record
}

// randomSeed draws a non-zero seed so that it can be reported and replayed.
func randomSeed() uint64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano()) | 1
	}
	if seed := binary.LittleEndian.Uint64(b[:]); seed != 0 {
		return seed
	}
	return 1
}

type noopMetrics struct{}

func (noopMetrics) ObserveGenerated(string, domain.NarrativeType, float64, *domain.ComplianceCheck, time.Duration) {
}

func (noopMetrics) ObserveRejected(string) {}
