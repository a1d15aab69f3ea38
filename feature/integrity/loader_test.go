package integrity

import (
	"testing"

	"league-sync/core/storage"
	"league-sync/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, new(mocks.Client), storage.Config{Bucket: "test-bucket"}, zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
