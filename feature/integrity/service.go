package integrity

import (
	"context"
	"fmt"

	"league-sync/core/storage"
	"league-sync/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
}

// NewService creates a new integrity service. db and client may be nil;
// the matching check then reports an error.
func NewService(db *gorm.DB, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		db:     db,
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// CheckSchema compares the league store schema with the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckStorage inspects the snapshot bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	return checks.CheckStorage(ctx, s.client, s.cfg.Bucket, s.cfg.Prefix)
}

// FixStorage creates the snapshot bucket if needed.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	s.logger.Info("Ensuring snapshot bucket", zap.String("bucket", s.cfg.Bucket))
	return checks.FixStorage(ctx, s.client, s.cfg.Bucket, s.cfg.Region)
}
