package service

import (
	"context"

	"github.com/MKhiriev/go-fraud-guard/internal/config"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/models"
)

type appInfoService struct {
	info models.ServiceInfo

	logger *logger.Logger
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when cfg carries no
// version. The generator fields are reported as configured; the API key is
// never part of the info.
func NewAppInfoService(cfg config.StructuredConfig, logger *logger.Logger) (AppInfoService, error) {
	if cfg.App.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.ServiceInfo{
			Version:       cfg.App.Version,
			Generator:     cfg.Generator.Backend,
			AnalysisModel: cfg.Generator.AnalysisModel,
			RegistryModel: cfg.Generator.RegistryModel,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetServiceInfo(ctx context.Context) models.ServiceInfo {
	logger.FromContext(ctx).Debug().Str("version", s.info.Version).Msg("service info requested")
	return s.info
}
