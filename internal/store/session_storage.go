// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type sessionStorage struct {
	mu     sync.RWMutex
	values map[SessionKey]string
}

// NewSessionStorage returns an empty in-process [SessionStorage].
func NewSessionStorage() SessionStorage {
	return &sessionStorage{values: make(map[SessionKey]string)}
}

func (s *sessionStorage) Set(_ context.Context, key SessionKey, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}

func (s *sessionStorage) Get(_ context.Context, key SessionKey) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}
