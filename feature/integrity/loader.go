package integrity

import (
	"league-sync/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the integrity feature.
func NewFeature(db *gorm.DB, client storage.Client, cfg storage.Config, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(db, client, cfg, logger))}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled returns true; each check reports its own missing dependency.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
