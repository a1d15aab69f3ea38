package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }

func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	league := &stubFeature{name: "league", enabled: true}
	disabled := &stubFeature{name: "disabled"}

	mgr := NewManager()
	mgr.Register(league)
	mgr.Register(disabled)

	loaded, err := mgr.LoadAll(fiber.New())
	assert.NoError(t, err)
	assert.Equal(t, []string{"league"}, loaded)
	assert.True(t, league.loaded)
	assert.False(t, disabled.loaded)
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	broken := &stubFeature{name: "broken", enabled: true, err: errors.New("no db")}
	after := &stubFeature{name: "after", enabled: true}

	mgr := NewManager()
	mgr.Register(broken)
	mgr.Register(after)

	_, err := mgr.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "load feature broken: no db")
	assert.False(t, after.loaded)
}
