package service

import (
	"context"

	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/models"
)

type appInfoService struct {
	info models.BuildInfo

	logger *logger.Logger
}

func NewAppInfoService(info models.BuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.info
}
