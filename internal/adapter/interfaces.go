package adapter

import (
	"context"

	"github.com/MKhiriev/go-fraud-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Generator is the structured-generation capability consumed by the analysis
// gateway. Implementations send the system instruction, the ordered user
// content and the response shape to an external model and return its raw
// text output untouched.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (string, error)
}

// KeyProvider resolves the API key used for one generation call.
type KeyProvider interface {
	// APIKey returns the key to use, or ErrMissingAPIKey when none is set.
	APIKey(ctx context.Context) (string, error)
}
