package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/diegoclair/slack-announcement-bot/pkg/models"
	"github.com/rs/zerolog"
)

const corruptStampLayout = "20060102T150405Z"

// fileStore keeps the collection in one JSON document.
//
// Saves write <path>.tmp, fsync it, rename it over <path> and fsync the
// directory, so a crash leaves either the old or the new document.
// A document that cannot be decoded is moved aside to
// <path>.corrupt-<UTC timestamp> before Load reports it.
type fileStore struct {
	path string
	log  zerolog.Logger
	now  func() time.Time
}

func openFile(cfg Config, log zerolog.Logger) (*fileStore, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, errs.NewConfigError("storage path is required for file driver", nil)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errs.NewPersistenceError("failed to create storage directory", err)
	}

	return &fileStore{
		path: path,
		log:  log.With().Str("component", "file_store").Logger(),
		now:  time.Now,
	}, nil
}

func (s *fileStore) Load(ctx context.Context) (entity.Collection, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entity.Collection{}, nil
	}
	if err != nil {
		return entity.Collection{}, errs.NewPersistenceError("failed to read announcements file", err)
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return entity.Collection{}, nil
	}

	c, err := decode(b)
	if err != nil {
		return entity.Collection{}, s.quarantine(err)
	}

	return c, nil
}

func decode(b []byte) (entity.Collection, error) {
	var doc models.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return entity.Collection{}, err
	}
	return doc.Collection()
}

// quarantine moves the unreadable document aside and returns the corrupt error.
func (s *fileStore) quarantine(cause error) error {
	backup := fmt.Sprintf("%s.corrupt-%s", s.path, s.now().UTC().Format(corruptStampLayout))
	if err := os.Rename(s.path, backup); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("failed to move corrupt announcements file aside")
		backup = ""
	}

	msg := "announcements file is corrupt"
	if backup != "" {
		msg += ", moved to " + backup
	}
	return errs.NewPersistenceError(msg, fmt.Errorf("%w: %v", errs.ErrCorrupt, cause))
}

func (s *fileStore) Save(ctx context.Context, c entity.Collection) error {
	b, err := json.MarshalIndent(models.FromCollection(c), "", "  ")
	if err != nil {
		return errs.NewPersistenceError("failed to encode announcements", err)
	}

	if err := writeFileAtomic(s.path, b); err != nil {
		return errs.NewPersistenceError("failed to write announcements file", err)
	}
	return nil
}

func (s *fileStore) Close() error {
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	// make the rename itself durable
	if dir, err := os.Open(filepath.Dir(path)); err == nil {
		_ = dir.Sync()
		_ = dir.Close()
	}
	return nil
}
