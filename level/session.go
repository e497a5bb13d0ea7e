package level

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/automoto/doomgrid/logger"
	"github.com/automoto/doomgrid/shared/leveldata"
	"github.com/sirupsen/logrus"
)

// LoadFile loads a level source (TMX, PNG or BMP) from fsys.
func LoadFile(ctx context.Context, fsys fs.FS, levelPath string) (*Level, error) {
	px, err := leveldata.LoadBitmap(fsys, levelPath)
	if err != nil {
		return nil, err
	}
	return Load(ctx, leveldata.LevelName(levelPath), px)
}

// Session tracks the current level of a directory of level files. A failed
// load leaves the current level in place.
type Session struct {
	fsys    fs.FS
	dir     string
	current *Level
}

// NewSession returns a session over the level files in dir.
func NewSession(fsys fs.FS, dir string) *Session {
	return &Session{fsys: fsys, dir: dir}
}

// Names lists the available levels.
func (s *Session) Names() ([]string, error) {
	paths, err := leveldata.DiscoverLevels(s.fsys, s.dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = leveldata.LevelName(p)
	}
	return names, nil
}

// Current returns the level in play, or nil before the first load.
func (s *Session) Current() *Level {
	return s.current
}

// Load builds the named level and makes it current. On failure the current
// level stays in place and is returned with the error.
func (s *Session) Load(ctx context.Context, name string) (*Level, error) {
	levelPath, err := s.find(name)
	if err != nil {
		return s.fail(name, err)
	}
	l, err := LoadFile(ctx, s.fsys, levelPath)
	if err != nil {
		return s.fail(name, err)
	}

	previous := ""
	if s.current != nil {
		previous = s.current.Name
	}
	s.current = l
	logger.Log.WithFields(logrus.Fields{
		"level":    name,
		"previous": previous,
	}).Info("Level switched")
	return l, nil
}

// Reload rebuilds the current level from its source file.
func (s *Session) Reload(ctx context.Context) (*Level, error) {
	if s.current == nil {
		return nil, fmt.Errorf("reload: no level loaded")
	}
	return s.Load(ctx, s.current.Name)
}

func (s *Session) find(name string) (string, error) {
	paths, err := leveldata.DiscoverLevels(s.fsys, s.dir)
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		if leveldata.LevelName(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("level %q not found in %s: %w", name, s.dir, fs.ErrNotExist)
}

func (s *Session) fail(name string, err error) (*Level, error) {
	fields := logrus.Fields{"level": name}
	if s.current != nil {
		fields["keeping"] = s.current.Name
	}
	logger.Log.WithError(err).WithFields(fields).Warn("Level load failed")
	return s.current, err
}
