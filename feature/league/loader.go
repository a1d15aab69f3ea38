package league

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	enabled bool
	handler *Handler
}

// NewFeature creates the league feature. Without a database it is disabled.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	if db == nil {
		return &Feature{}
	}
	svc := NewService(NewRepository(db), logger)
	return &Feature{enabled: true, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "league"
}

// IsEnabled reports whether a database is available.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
