package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fraud-guard/models"
)

// AnalysisValidator implements [Validator] for models.AnalysisRequest.
// A request needs non-blank text or an image; an attached image must carry
// data and an image/* MIME type.
type AnalysisValidator struct{}

// NewAnalysisValidator constructs an AnalysisValidator and returns it as the
// Validator interface.
func NewAnalysisValidator() Validator {
	return &AnalysisValidator{}
}

func (v *AnalysisValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AnalysisRequest:
		return v.validateRequest(value)
	case *models.AnalysisRequest:
		return v.validateRequest(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *AnalysisValidator) validateRequest(request models.AnalysisRequest) error {
	if request.Image == nil {
		if strings.TrimSpace(request.Text) == "" {
			return ErrEmptyInput
		}
		return nil
	}

	if len(request.Image.Data) == 0 {
		return ErrEmptyImage
	}
	if !strings.HasPrefix(request.Image.MIMEType, "image/") {
		return ErrInvalidImageType
	}

	return nil
}
