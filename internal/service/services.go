package service

import (
	"github.com/MKhiriev/go-screen-sync/internal/config"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/store"
	"github.com/MKhiriev/go-screen-sync/models"
)

type Services struct {
	ScreenService  ScreenService
	SessionService SessionService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, info models.BuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ScreenService:  NewScreenService(repositories.Screens, logger),
		SessionService: NewSessionService(cfg.Server, logger),
		AppInfoService: appInfoService,
	}, nil
}
