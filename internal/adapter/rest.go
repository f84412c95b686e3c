package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-fraud-guard/internal/config"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/internal/utils"
	"github.com/MKhiriev/go-fraud-guard/models"
)

const (
	restAPIVersion = "v1beta"
	apiKeyHeader   = "x-goog-api-key"
)

// restGenerator implements [Generator] against the generateContent REST
// endpoint using go-resty.
type restGenerator struct {
	client *utils.HTTPClient
	models modelSet
	keys   KeyProvider

	logger *logger.Logger
}

// NewRESTGenerator constructs the REST-backed [Generator] rooted at
// cfg.BaseURL.
func NewRESTGenerator(cfg config.Generator, keys KeyProvider, logger *logger.Logger) Generator {
	return &restGenerator{
		client: utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout),
		models: newModelSet(cfg),
		keys:   keys,
		logger: logger,
	}
}

type restBlob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type restPart struct {
	Text       string    `json:"text,omitempty"`
	InlineData *restBlob `json:"inlineData,omitempty"`
}

type restContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []restPart `json:"parts"`
}

type restGenerationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   *models.Schema `json:"responseSchema,omitempty"`
}

type restRequest struct {
	SystemInstruction *restContent         `json:"systemInstruction,omitempty"`
	Contents          []restContent        `json:"contents"`
	GenerationConfig  restGenerationConfig `json:"generationConfig"`
}

type restResponse struct {
	Candidates []struct {
		Content restContent `json:"content"`
	} `json:"candidates"`
}

type restErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (g *restGenerator) Generate(ctx context.Context, req models.GenerationRequest) (string, error) {
	log := logger.FromContext(ctx)

	key, err := g.keys.APIKey(ctx)
	if err != nil {
		return "", err
	}

	model := g.models.forKind(req.Kind)
	path := fmt.Sprintf("/%s/models/%s:generateContent", restAPIVersion, url.PathEscape(model))

	log.Debug().Str("model", model).Str("kind", string(req.Kind)).Msg("sending generation request")

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(apiKeyHeader, key).
		SetBody(newRESTRequest(req)).
		Post(path)
	if err != nil {
		log.Err(err).Str("func", "*restGenerator.Generate").Str("model", model).Msg("generation request failed")
		return "", fmt.Errorf("generate request: %w", err)
	}

	if !resp.IsSuccess() {
		var apiErr restErrorResponse
		message := string(resp.Body())
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}
		return "", mapStatusError(resp.StatusCode(), message)
	}

	var out restResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrUpstream, err)
	}

	var b strings.Builder
	if len(out.Candidates) > 0 {
		for _, part := range out.Candidates[0].Content.Parts {
			b.WriteString(part.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrEmptyResponse
	}

	return b.String(), nil
}

func newRESTRequest(req models.GenerationRequest) restRequest {
	parts := make([]restPart, 0, 2)
	if img := req.Content.Image; img != nil {
		parts = append(parts, restPart{InlineData: &restBlob{
			MIMEType: img.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(img.Data),
		}})
	}
	parts = append(parts, restPart{Text: req.Content.Text})

	body := restRequest{
		Contents: []restContent{{Role: "user", Parts: parts}},
		GenerationConfig: restGenerationConfig{
			ResponseMIMEType: responseMIMEType,
			ResponseSchema:   req.Shape,
		},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &restContent{Parts: []restPart{{Text: req.SystemInstruction}}}
	}
	return body
}
