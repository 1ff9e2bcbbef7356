package service

import (
	"context"

	"github.com/MKhiriev/go-screen-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type ScreenService interface {
	PushScreen(ctx context.Context, req models.PushRequest) (models.PushResponse, models.Screen, error)

	GetScreen(ctx context.Context, screenID string) (models.Screen, error)
	ListScreens(ctx context.Context, limit, offset int, includeDeleted bool) ([]models.Screen, error)
	SearchScreens(ctx context.Context, query string) ([]models.Screen, error)
	CountScreens(ctx context.Context) (int64, error)
}

type SessionService interface {
	CreateSession(ctx context.Context, clientID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.BuildInfo
}
