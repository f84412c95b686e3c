package gateway

import (
	"context"

	"github.com/MKhiriev/go-fraud-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway classifies content and fetches registry snapshots.
type Gateway interface {
	// Analyze returns a schema-conformant, repaired record for text and the
	// optional image, or an error. It never returns a partial record.
	Analyze(ctx context.Context, text string, image *models.InlineImage) (models.AnalysisRecord, error)

	// FetchRegistry returns the entries of one registry snapshot.
	FetchRegistry(ctx context.Context) ([]models.RegistryEntry, error)
}
