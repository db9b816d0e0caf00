package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	xglog "aicloudmania.dev/internal/log"
	"aicloudmania.dev/internal/metrics"
	"aicloudmania.dev/internal/models"
)

// Store holds the current site content and swaps it atomically on reload.
type Store struct {
	path    string
	current atomic.Pointer[models.Site]
	logger  zerolog.Logger
}

// NewStore creates a store. With an empty path the built-in content is
// served and Reload/Watch are no-ops.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:   path,
		logger: xglog.WithComponent("content"),
	}
	if path == "" {
		s.current.Store(Default())
		return s, nil
	}
	site, err := Load(path)
	if err != nil {
		return nil, err
	}
	s.current.Store(site)
	return s, nil
}

// NewStaticStore serves the given content without a backing file.
func NewStaticStore(site *models.Site) *Store {
	s := &Store{logger: xglog.WithComponent("content")}
	s.current.Store(site)
	return s
}

// Get returns the current content. Callers must treat it as read-only.
func (s *Store) Get() *models.Site {
	return s.current.Load()
}

// Path returns the backing content file, if any.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the content file. On failure the previous content is kept.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	site, err := Load(s.path)
	if err != nil {
		metrics.RecordContentReload(false)
		s.logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "content.reload_failed").
			Str(xglog.FieldPath, s.path).
			Msg("content reload failed, keeping previous content")
		return err
	}
	s.current.Store(site)
	metrics.RecordContentReload(true)
	s.logger.Info().
		Str(xglog.FieldEvent, "content.reloaded").
		Str(xglog.FieldPath, s.path).
		Int("services", len(site.Services)).
		Int("technologies", len(site.Technologies)).
		Int("projects", len(site.Projects)).
		Msg("content reloaded")
	return nil
}

// Watch reloads the content file whenever it changes until ctx is done.
// The parent directory is watched so editors that replace the file by
// rename are picked up too.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		s.logger.Debug().Str(xglog.FieldEvent, "content.watcher_disabled").Msg("serving built-in content")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch content dir: %w", err)
	}
	target := filepath.Clean(s.path)

	s.logger.Info().
		Str(xglog.FieldEvent, "content.watcher_started").
		Str(xglog.FieldPath, s.path).
		Msg("watching content file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				_ = s.Reload()
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn().Err(werr).Str(xglog.FieldEvent, "content.watcher_error").Msg("content watcher error")
		}
	}
}
