package service

import (
	"github.com/arenacast/backend/internal/cache"
	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/internal/store"
)

type Services struct {
	ProfileService ProfileService
}

func NewServices(storages *store.Storages, views *cache.ViewCache, logger *logger.Logger) *Services {
	return &Services{
		ProfileService: NewProfileService(storages.ProfileRepository, storages.GameProfileRepository, views, logger),
	}
}
