package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-fraud-guard/internal/adapter"
	"github.com/MKhiriev/go-fraud-guard/internal/app"
	"github.com/MKhiriev/go-fraud-guard/internal/gateway"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/store"
	"github.com/MKhiriev/go-fraud-guard/internal/validators"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// HistoryLimit is the number of analysis records kept, newest first.
const HistoryLimit = 20

// orchestrator implements Orchestrator.
//
// Every Analyze and FetchRegistry call takes a new generation token. Only
// the holder of the latest token may change the view state or history; a
// response that arrives after a newer request started is dropped with
// ErrStaleResponse.
type orchestrator struct {
	mu    sync.Mutex
	state models.ViewState

	gateway   gateway.Gateway
	history   store.HistoryRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewOrchestrator(gateway gateway.Gateway, history store.HistoryRepository, logger *logger.Logger) Orchestrator {
	return &orchestrator{
		state:     models.ViewState{Phase: models.PhaseIdle},
		gateway:   gateway,
		history:   history,
		validator: validators.NewAnalysisValidator(),
		logger:    logger,
	}
}

func (o *orchestrator) Analyze(ctx context.Context, session models.Session, request models.AnalysisRequest) (models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	if session.IsEmpty() {
		return models.AnalysisRecord{}, ErrNoActiveSession
	}
	if err := o.validator.Validate(ctx, request); err != nil {
		if errors.Is(err, validators.ErrEmptyInput) {
			return models.AnalysisRecord{}, ErrEmptyInput
		}
		return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token := o.begin()
	record, err := o.gateway.Analyze(ctx, request.Text, request.Image)

	o.mu.Lock()
	defer o.mu.Unlock()

	if token != o.state.Generation {
		log.Debug().Uint64("token", token).Uint64("current", o.state.Generation).Msg("stale analysis response dropped")
		return models.AnalysisRecord{}, ErrStaleResponse
	}

	if err != nil {
		log.Err(err).Str("func", "*orchestrator.Analyze").Msg("analysis failed")
		o.fail(analysisErrorMessage(err))
		return models.AnalysisRecord{}, err
	}

	if err = o.prependHistory(ctx, record); err != nil {
		log.Err(err).Str("func", "*orchestrator.Analyze").Msg("error saving history")
		o.fail(app.MsgInternalServerError)
		return models.AnalysisRecord{}, err
	}

	o.state = models.ViewState{Phase: models.PhaseResult, Generation: token, Record: &record}
	return record, nil
}

func (o *orchestrator) FetchRegistry(ctx context.Context, session models.Session) ([]models.RegistryEntry, error) {
	log := logger.FromContext(ctx)

	if session.IsEmpty() {
		return nil, ErrNoActiveSession
	}

	token := o.begin()
	entries, err := o.gateway.FetchRegistry(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	if token != o.state.Generation {
		log.Debug().Uint64("token", token).Uint64("current", o.state.Generation).Msg("stale registry response dropped")
		return nil, ErrStaleResponse
	}

	if err != nil {
		log.Err(err).Str("func", "*orchestrator.FetchRegistry").Msg("registry fetch failed")
		o.fail(registryErrorMessage(err))
		return nil, err
	}

	o.state = models.ViewState{Phase: models.PhaseRegistry, Generation: token, Registry: entries}
	return entries, nil
}

func (o *orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.state = models.ViewState{Phase: models.PhaseIdle, Generation: o.state.Generation + 1}
}

func (o *orchestrator) State() models.ViewState {
	o.mu.Lock()
	defer o.mu.Unlock()

	state := o.state
	if state.Registry != nil {
		state.Registry = append([]models.RegistryEntry(nil), state.Registry...)
	}
	return state
}

func (o *orchestrator) History(ctx context.Context) ([]models.AnalysisRecord, error) {
	records, err := o.history.LoadHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading history: %w", err)
	}
	if records == nil {
		records = []models.AnalysisRecord{}
	}
	return records, nil
}

func (o *orchestrator) ClearHistory(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.history.SaveHistory(ctx, []models.AnalysisRecord{}); err != nil {
		return fmt.Errorf("error clearing history: %w", err)
	}
	return nil
}

// SelectHistory shows a past record. It invalidates in-flight requests the
// same way a new request does.
func (o *orchestrator) SelectHistory(ctx context.Context, id string) (models.AnalysisRecord, error) {
	records, err := o.History(ctx)
	if err != nil {
		return models.AnalysisRecord{}, err
	}

	for _, record := range records {
		if record.ID != id {
			continue
		}

		o.mu.Lock()
		o.state = models.ViewState{Phase: models.PhaseResult, Generation: o.state.Generation + 1, Record: &record}
		o.mu.Unlock()

		return record, nil
	}

	return models.AnalysisRecord{}, ErrRecordNotFound
}

// begin takes the next generation token and moves the view to loading.
func (o *orchestrator) begin() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	token := o.state.Generation + 1
	o.state = models.ViewState{Phase: models.PhaseLoading, Generation: token}
	return token
}

// fail must be called with mu held.
func (o *orchestrator) fail(message string) {
	o.state = models.ViewState{Phase: models.PhaseError, Generation: o.state.Generation, Error: message}
}

// prependHistory must be called with mu held.
func (o *orchestrator) prependHistory(ctx context.Context, record models.AnalysisRecord) error {
	records, err := o.history.LoadHistory(ctx)
	if err != nil {
		return fmt.Errorf("error loading history: %w", err)
	}

	updated := make([]models.AnalysisRecord, 0, min(len(records)+1, HistoryLimit))
	updated = append(updated, record)
	for _, r := range records {
		if len(updated) == HistoryLimit {
			break
		}
		updated = append(updated, r)
	}

	if err = o.history.SaveHistory(ctx, updated); err != nil {
		return fmt.Errorf("error saving history: %w", err)
	}
	return nil
}

func analysisErrorMessage(err error) string {
	switch {
	case errors.Is(err, gateway.ErrAnalysisParse):
		return app.MsgAnalysisFailed
	case errors.Is(err, gateway.ErrEmptyInput):
		return app.MsgEmptyInput
	case errors.Is(err, adapter.ErrMissingAPIKey):
		return app.MsgMissingAPIKey
	default:
		return app.MsgAnalysisUnavailable
	}
}

func registryErrorMessage(err error) string {
	if errors.Is(err, adapter.ErrMissingAPIKey) {
		return app.MsgMissingAPIKey
	}
	return app.MsgRegistryUnavailable
}
