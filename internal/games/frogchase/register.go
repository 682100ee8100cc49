package frogchase

import (
	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/registry"
)

func init() {
	registry.Register(GameID, "Frog Chase", factory(config.ModePlanned))
	registry.Register(GameIDRealtime, "Frog Chase (Realtime)", factory(config.ModeRealtime))
}

func factory(mode string) registry.Factory {
	return func(cfg config.FrogChaseConfig) (registry.Game, error) {
		cfg.Movement.Mode = mode
		g, err := New(cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}
