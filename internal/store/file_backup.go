package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

const (
	backupPrefix     = "whitelist-"
	backupSuffix     = ".json"
	backupTimeLayout = "20060102-150405.000000000"
	backupFilePerm   = 0o644

	// legacyBackupTimeLayout names snapshots written before sub-second stamps.
	legacyBackupTimeLayout = "20060102-150405"
)

// fileBackupStore writes snapshots named
// whitelist-YYYYMMDD-HHMMSS.NNNNNNNNN.json into a single directory. The
// fixed-width stamp keeps lexical order equal to creation order, and a taken
// name never gets overwritten.
type fileBackupStore struct {
	enabled bool
	dir     string
	maxKeep int

	// mu serialises name selection and the write that claims it.
	mu sync.Mutex

	whitelist WhitelistStore
	now       func() time.Time
	logger    *logger.Logger
}

// NewFileBackupStore returns a [BackupStore] that snapshots whitelist into
// cfg.Dir and keeps the newest cfg.MaxKeep files.
func NewFileBackupStore(cfg config.Backup, whitelist WhitelistStore, logger *logger.Logger) BackupStore {
	logger.Debug().Msg("creating backup store")
	return &fileBackupStore{
		enabled:   cfg.IsEnabled(),
		dir:       cfg.Dir,
		maxKeep:   cfg.Keep(),
		whitelist: whitelist,
		now:       time.Now,
		logger:    logger,
	}
}

func (b *fileBackupStore) Snapshot(ctx context.Context) (string, error) {
	if !b.enabled {
		return "", nil
	}

	log := logger.FromContext(ctx)

	names, err := b.whitelist.List(ctx)
	if err != nil {
		return "", fmt.Errorf("error reading whitelist for backup: %w", err)
	}

	data, err := encodeNames(names)
	if err != nil {
		return "", err
	}

	b.mu.Lock()
	path, err := b.freePath(b.now())
	if err == nil {
		err = writeFileAtomic(path, data, backupFilePerm)
	}
	b.mu.Unlock()
	if err != nil {
		log.Err(err).Str("func", "*fileBackupStore.Snapshot").Str("path", path).Msg("error writing backup")
		return "", err
	}
	log.Info().Str("func", "*fileBackupStore.Snapshot").Str("path", path).Int("names", len(names)).Msg("whitelist backup written")

	b.Prune(ctx)

	return path, nil
}

// Prune never fails: every deletion error is logged and skipped.
func (b *fileBackupStore) Prune(ctx context.Context) {
	if b.maxKeep <= 0 {
		return
	}

	log := logger.FromContext(ctx)

	snapshots, err := b.List(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "*fileBackupStore.Prune").Msg("error listing backups")
		return
	}

	if len(snapshots) <= b.maxKeep {
		return
	}

	for _, s := range snapshots[:len(snapshots)-b.maxKeep] {
		if err := os.Remove(s.Path); err != nil {
			log.Warn().Err(err).Str("func", "*fileBackupStore.Prune").Str("path", s.Path).Msg("error deleting old backup")
			continue
		}
		log.Debug().Str("func", "*fileBackupStore.Prune").Str("path", s.Path).Msg("old backup deleted")
	}
}

func (b *fileBackupStore) List(ctx context.Context) ([]models.BackupSnapshot, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.BackupSnapshot{}, nil
		}
		return nil, fmt.Errorf("error reading backup dir: %w", err)
	}

	snapshots := make([]models.BackupSnapshot, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		createdAt, ok := parseBackupFileName(e.Name())
		if !ok {
			continue
		}
		snapshots = append(snapshots, models.BackupSnapshot{
			Name:      e.Name(),
			Path:      filepath.Join(b.dir, e.Name()),
			CreatedAt: createdAt,
		})
	}

	slices.SortFunc(snapshots, func(a, b models.BackupSnapshot) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return snapshots, nil
}

// freePath returns the snapshot path for t, moving the stamp forward one
// nanosecond at a time while the name is taken. The caller holds b.mu.
func (b *fileBackupStore) freePath(t time.Time) (string, error) {
	for {
		path := filepath.Join(b.dir, backupFileName(t))
		_, err := os.Lstat(path)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("error checking backup path: %w", err)
		}
		t = t.Add(time.Nanosecond)
	}
}

func backupFileName(t time.Time) string {
	return backupPrefix + t.Format(backupTimeLayout) + backupSuffix
}

func parseBackupFileName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
		return time.Time{}, false
	}

	stamp := strings.TrimSuffix(strings.TrimPrefix(name, backupPrefix), backupSuffix)
	for _, layout := range []string{backupTimeLayout, legacyBackupTimeLayout} {
		if len(stamp) != len(layout) {
			continue
		}
		if t, err := time.ParseInLocation(layout, stamp, time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
