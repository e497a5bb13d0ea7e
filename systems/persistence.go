package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/logger"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// LevelStats is a level's score card.
type LevelStats struct {
	Level        string  `json:"level"`
	SecretsFound int     `json:"secretsFound"`
	SecretsTotal int     `json:"secretsTotal"`
	Kills        int     `json:"kills"`
	EnemiesTotal int     `json:"enemiesTotal"`
	Time         float64 `json:"time"`
}

// CurrentStats reads the running statistics of the world's level.
func CurrentStats(w donburi.World) LevelStats {
	var stats LevelStats
	if entry, ok := components.Level.First(w); ok {
		level := components.Level.Get(entry)
		stats.Level = level.Name
		stats.SecretsFound = level.SecretsFound
		stats.SecretsTotal = level.SecretsTotal
		stats.Kills = level.Kills
		stats.EnemiesTotal = level.EnemiesTotal
	}
	if entry, ok := components.Clock.First(w); ok {
		stats.Time = components.Clock.Get(entry).Elapsed
	}
	return stats
}

// Best merges two score cards for the same level, keeping the most secrets
// and kills and the shortest non-zero time.
func (s LevelStats) Best(o LevelStats) LevelStats {
	best := s
	best.SecretsFound = max(s.SecretsFound, o.SecretsFound)
	best.Kills = max(s.Kills, o.Kills)
	best.SecretsTotal = max(s.SecretsTotal, o.SecretsTotal)
	best.EnemiesTotal = max(s.EnemiesTotal, o.EnemiesTotal)
	switch {
	case s.Time == 0:
		best.Time = o.Time
	case o.Time > 0:
		best.Time = min(s.Time, o.Time)
	}
	return best
}

// StatsStore keeps the best score card per level on disk.
type StatsStore struct {
	manager *gdata.Manager
}

// OpenStatsStore opens the per-user data directory for appName.
func OpenStatsStore(appName string) (*StatsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Log.WithError(err).Warn("Could not initialize stats storage")
		return nil, fmt.Errorf("open stats storage: %w", err)
	}
	return &StatsStore{manager: m}, nil
}

func statsKey(level string) string {
	return "stats_" + level
}

// Load returns the saved score card for level, or nil if none was saved.
func (s *StatsStore) Load(level string) (*LevelStats, error) {
	if s == nil || s.manager == nil {
		return nil, nil
	}

	data, err := s.manager.LoadItem(statsKey(level))
	if err != nil {
		logger.Log.WithError(err).WithField("level", level).Warn("Could not load stats")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var stats LevelStats
	if err := json.Unmarshal(data, &stats); err != nil {
		logger.Log.WithError(err).WithField("level", level).Warn("Could not parse saved stats")
		return nil, err
	}
	return &stats, nil
}

// Record merges stats into the saved best and writes the result back.
func (s *StatsStore) Record(stats LevelStats) (LevelStats, error) {
	if s == nil || s.manager == nil {
		return stats, nil
	}

	best := stats
	if saved, err := s.Load(stats.Level); err == nil && saved != nil {
		best = saved.Best(stats)
	}

	data, err := json.Marshal(best)
	if err != nil {
		return stats, err
	}
	if err := s.manager.SaveItem(statsKey(stats.Level), data); err != nil {
		logger.Log.WithError(err).WithField("level", stats.Level).Warn("Could not save stats")
		return stats, err
	}

	logger.Log.WithFields(logrus.Fields{
		"level":   best.Level,
		"secrets": fmt.Sprintf("%d/%d", best.SecretsFound, best.SecretsTotal),
		"kills":   fmt.Sprintf("%d/%d", best.Kills, best.EnemiesTotal),
	}).Info("Stats recorded")
	return best, nil
}
