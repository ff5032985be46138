package game

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Manager plays matches back to back until its context is cancelled. The
// board runs exactly one match at a time.
type Manager struct {
	cfg Config
}

func NewManager(cfg Config) *Manager {
	return &Manager{cfg: cfg}
}

func (m *Manager) Run(ctx context.Context) error {
	for match := 1; ; match++ {
		log.Infof("starting match %v", match)

		g := NewGame(m.cfg)
		if err := g.Run(ctx); err != nil {
			log.Infof("context done, stopping during match %v: %v", match, err)
			return err
		}

		s := g.State()
		log.Infof("match %v finished %v-%v", match, s.PlayerOneScore, s.PlayerTwoScore)
	}
}
