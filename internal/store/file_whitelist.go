// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
)

const whitelistFilePerm = 0o644

// fileWhitelistStore keeps the whitelist as a pretty-printed JSON array of
// strings. The file is the source of truth: every operation re-reads it, so
// manual edits between calls are honoured.
type fileWhitelistStore struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileWhitelistStore returns a [WhitelistStore] backed by the JSON file
// at path. A missing file is created with an empty list; an existing file is
// not validated until first use.
func NewFileWhitelistStore(path string, logger *logger.Logger) (WhitelistStore, error) {
	s := &fileWhitelistStore{
		path:   path,
		logger: logger,
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.persist(nil); err != nil {
			return nil, fmt.Errorf("error creating whitelist file: %w", err)
		}
		logger.Info().Str("func", "NewFileWhitelistStore").Str("path", path).Msg("created empty whitelist file")
	} else if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageDegraded, err)
	}

	return s, nil
}

func (s *fileWhitelistStore) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *fileWhitelistStore) Add(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	idx, found := slices.BinarySearch(names, name)
	if found {
		return false, nil
	}

	names = slices.Insert(names, idx, name)
	if err := s.persist(names); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileWhitelistStore.Add").Msg("error persisting whitelist")
		return false, err
	}

	return true, nil
}

func (s *fileWhitelistStore) AddMany(ctx context.Context, names []string) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return 0, 0, err
	}

	set := make(map[string]struct{}, len(current)+len(names))
	for _, n := range current {
		set[n] = struct{}{}
	}

	added, alreadyPresent := 0, 0
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := set[n]; ok {
			alreadyPresent++
			continue
		}
		set[n] = struct{}{}
		added++
	}

	if added == 0 {
		return 0, alreadyPresent, nil
	}

	merged := make([]string, 0, len(set))
	for n := range set {
		merged = append(merged, n)
	}
	slices.Sort(merged)

	if err := s.persist(merged); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileWhitelistStore.AddMany").Msg("error persisting whitelist")
		return 0, 0, err
	}

	return added, alreadyPresent, nil
}

func (s *fileWhitelistStore) Remove(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	idx, found := slices.BinarySearch(names, name)
	if !found {
		return false, nil
	}

	names = slices.Delete(names, idx, idx+1)
	if err := s.persist(names); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileWhitelistStore.Remove").Msg("error persisting whitelist")
		return false, err
	}

	return true, nil
}

// load reads the file and returns its names sorted and de-duplicated.
// Callers must hold s.mu.
func (s *fileWhitelistStore) load(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		log.Warn().Err(err).Str("func", "*fileWhitelistStore.load").Str("path", s.path).Msg("whitelist file is unreadable")
		return nil, fmt.Errorf("%w: %w", ErrStorageDegraded, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []string{}, nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		log.Warn().Err(err).Str("func", "*fileWhitelistStore.load").Str("path", s.path).Msg("whitelist file is corrupt")
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrStorageDegraded, s.path, err)
	}

	return normalizeNames(names), nil
}

// persist writes names as a sorted, de-duplicated JSON array. Callers must
// hold s.mu or own s exclusively.
func (s *fileWhitelistStore) persist(names []string) error {
	data, err := encodeNames(normalizeNames(names))
	if err != nil {
		return err
	}

	return writeFileAtomic(s.path, data, whitelistFilePerm)
}

// normalizeNames trims, drops empties, sorts and de-duplicates names. The
// result is never nil.
func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func encodeNames(names []string) ([]byte, error) {
	if names == nil {
		names = []string{}
	}

	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding whitelist: %w", err)
	}

	return append(data, '\n'), nil
}
