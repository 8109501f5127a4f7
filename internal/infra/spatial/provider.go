package spatial

import (
	"log/slog"

	"beacon/config"
	"beacon/internal/domain/constants"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// IndexParams holds dependencies for SpatialIndex, injected by Fx
type IndexParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Events repository.EventRepository
}

// NewSpatialIndex creates a SpatialIndex based on configuration.
// PostGIS is the default; the memory backend exists for deployments without
// the extension and for local development against a plain Postgres.
func NewSpatialIndex(params IndexParams) (service.SpatialIndex, error) {
	backend := constants.SpatialBackendPostGIS
	if params.Config.Spatial != nil && params.Config.Spatial.Backend != "" {
		backend = params.Config.Spatial.Backend
	}

	switch backend {
	case constants.SpatialBackendPostGIS:
		params.Logger.Info("Using PostGIS spatial backend")

		return NewPostGISIndex(params.DB), nil

	case constants.SpatialBackendMemory:
		params.Logger.Info("Using in-memory spatial backend")

		return NewMemoryIndex(params.Events), nil

	default:
		return nil, errors.Errorf("unknown spatial backend: %s", backend)
	}
}

// Module provides the spatial FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSpatialIndex),
)
