package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fraud-guard/internal/adapter"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/utils"
	"github.com/MKhiriev/go-fraud-guard/internal/validators"
	"github.com/MKhiriev/go-fraud-guard/models"
)

const (
	registryEntriesKey  = "demo_entries"
	registryFallbackKey = "flagged_senders"
)

type fraudGateway struct {
	generator adapter.Generator
	validator validators.Validator

	now   func() time.Time
	newID func() string

	logger *logger.Logger
}

// Option customizes a gateway built by [NewGateway].
type Option func(*fraudGateway)

// WithClock replaces the clock used to stamp records that come back without
// a timestamp.
func WithClock(now func() time.Time) Option {
	return func(g *fraudGateway) { g.now = now }
}

// WithIDGenerator replaces the generator of record ids.
func WithIDGenerator(newID func() string) Option {
	return func(g *fraudGateway) { g.newID = newID }
}

// NewGateway returns a [Gateway] that sends its requests through generator.
func NewGateway(generator adapter.Generator, logger *logger.Logger, opts ...Option) Gateway {
	g := &fraudGateway{
		generator: generator,
		validator: validators.NewAnalysisValidator(),
		now:       time.Now,
		newID:     utils.NewDNAID,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *fraudGateway) Analyze(ctx context.Context, text string, image *models.InlineImage) (models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	if err := g.validator.Validate(ctx, models.AnalysisRequest{Text: text, Image: image}); err != nil {
		if errors.Is(err, validators.ErrEmptyInput) {
			return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrEmptyInput, err)
		}
		return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	raw, err := g.generator.Generate(ctx, models.GenerationRequest{
		Kind:              models.GenerationAnalysis,
		SystemInstruction: SystemInstruction,
		Content:           models.GenerationContent{Image: image, Text: AnalysisPrompt(text)},
		Shape:             AnalysisSchema(),
	})
	if err != nil {
		return models.AnalysisRecord{}, err
	}

	record, err := g.parseAnalysis(raw)
	if err != nil {
		log.Err(err).Str("func", "*fraudGateway.Analyze").Int("output_len", len(raw)).Msg("analysis output rejected")
		return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrAnalysisParse, err)
	}

	log.Info().Str("id", record.ID).Int("risk_score", record.RiskScore).Msg("analysis completed")
	return record, nil
}

func (g *fraudGateway) FetchRegistry(ctx context.Context) ([]models.RegistryEntry, error) {
	log := logger.FromContext(ctx)

	raw, err := g.generator.Generate(ctx, models.GenerationRequest{
		Kind:              models.GenerationRegistry,
		SystemInstruction: SystemInstruction,
		Content:           models.GenerationContent{Text: RegistryPrompt()},
		Shape:             RegistrySchema(),
	})
	if err != nil {
		return nil, err
	}

	entries, err := parseRegistry(raw)
	if err != nil {
		log.Err(err).Str("func", "*fraudGateway.FetchRegistry").Int("output_len", len(raw)).Msg("registry output rejected")
		return nil, fmt.Errorf("%w: %w", ErrRegistryParse, err)
	}

	return entries, nil
}

func (g *fraudGateway) parseAnalysis(raw string) (models.AnalysisRecord, error) {
	doc, err := decodeDocument(raw)
	if err != nil {
		return models.AnalysisRecord{}, err
	}
	if doc, err = conform(doc, analysisParseSchema(), ""); err != nil {
		return models.AnalysisRecord{}, err
	}

	var record models.AnalysisRecord
	if err = decodeInto(doc, &record); err != nil {
		return models.AnalysisRecord{}, err
	}

	g.repair(&record)
	return record, nil
}

// repair fills the fields the model may omit and enforces the score and
// level invariants.
func (g *fraudGateway) repair(r *models.AnalysisRecord) {
	if r.ID == "" {
		r.ID = g.newID()
	}
	if r.Timestamp == "" {
		r.Timestamp = g.now().UTC().Format(time.RFC3339)
	}

	r.RiskScore = min(max(r.RiskScore, models.MinRiskScore), models.MaxRiskScore)
	r.RiskLevel = models.RiskLevelFromScore(r.RiskScore)

	if r.ThreatIndicators == nil {
		r.ThreatIndicators = []string{}
	}
	if r.ManipulationTactics == nil {
		r.ManipulationTactics = []string{}
	}
}

func parseRegistry(raw string) ([]models.RegistryEntry, error) {
	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, typeError("", models.SchemaObject, doc)
	}

	list, present := obj[registryEntriesKey]
	key := registryEntriesKey
	if !present || list == nil {
		list, present = obj[registryFallbackKey]
		key = registryFallbackKey
	}
	if !present || list == nil {
		return nil, fmt.Errorf("neither %q nor %q present", registryEntriesKey, registryFallbackKey)
	}

	list, err = conform(list, &models.Schema{Type: models.SchemaArray, Items: RegistryEntrySchema()}, "."+key)
	if err != nil {
		return nil, err
	}

	entries := make([]models.RegistryEntry, 0)
	if err = decodeInto(list, &entries); err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ScamTypesUsed == nil {
			entries[i].ScamTypesUsed = []string{}
		}
	}

	return entries, nil
}
