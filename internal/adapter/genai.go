package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/MKhiriev/go-fraud-guard/internal/config"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/models"
)

// genaiGenerator implements [Generator] with the Google Gen AI SDK.
// One SDK client is kept per API key so a key override takes effect on the
// next call without rebuilding the adapter.
type genaiGenerator struct {
	baseURL string
	models  modelSet
	timeout time.Duration
	keys    KeyProvider

	mu      sync.Mutex
	clients map[string]*genai.Client

	logger *logger.Logger
}

// NewGenAIGenerator constructs the SDK-backed [Generator]. An empty
// cfg.BaseURL uses the SDK default endpoint.
func NewGenAIGenerator(cfg config.Generator, keys KeyProvider, logger *logger.Logger) Generator {
	return &genaiGenerator{
		baseURL: strings.TrimSpace(cfg.BaseURL),
		models:  newModelSet(cfg),
		timeout: cfg.RequestTimeout,
		keys:    keys,
		clients: make(map[string]*genai.Client),
		logger:  logger,
	}
}

func (g *genaiGenerator) Generate(ctx context.Context, req models.GenerationRequest) (string, error) {
	log := logger.FromContext(ctx)

	key, err := g.keys.APIKey(ctx)
	if err != nil {
		return "", err
	}

	client, err := g.client(ctx, key)
	if err != nil {
		log.Err(err).Str("func", "*genaiGenerator.Generate").Msg("failed to create genai client")
		return "", err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	model := g.models.forKind(req.Kind)
	contents := []*genai.Content{genai.NewContentFromParts(userParts(req.Content), genai.RoleUser)}
	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: responseMIMEType,
		ResponseSchema:   toGenAISchema(req.Shape),
	}
	if req.SystemInstruction != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	log.Debug().Str("model", model).Str("kind", string(req.Kind)).Msg("sending generation request")

	resp, err := client.Models.GenerateContent(ctx, model, contents, genCfg)
	if err != nil {
		log.Err(err).Str("func", "*genaiGenerator.Generate").Str("model", model).Msg("generation request failed")
		return "", mapGenAIError(err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func (g *genaiGenerator) client(ctx context.Context, key string) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.clients[key]; ok {
		return c, nil
	}

	cc := &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	}
	if g.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	c, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	g.clients[key] = c

	return c, nil
}

// userParts orders the content the way the model expects it: the image
// first, then the text.
func userParts(content models.GenerationContent) []*genai.Part {
	parts := make([]*genai.Part, 0, 2)
	if content.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(content.Image.Data, content.Image.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(content.Text))
	return parts
}

func toGenAISchema(s *models.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:     genai.Type(s.Type),
		Items:    toGenAISchema(s.Items),
		Required: s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenAISchema(prop)
		}
	}
	return out
}

func mapGenAIError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return mapStatusError(apiErr.Code, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return mapStatusError(apiErrPtr.Code, apiErrPtr.Message)
	}
	return err
}
