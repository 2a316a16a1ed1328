// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kv

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

var _ KVInterface = (*InMemory)(nil)

// InMemory is a map-backed KVInterface used by tests. Expiry is evaluated
// lazily on access against a shiftable clock so TTL behavior can be tested
// without sleeping.
type InMemory struct {
	mu   sync.Mutex
	data map[string]inMemEntry

	offset atomic.Int64
}

type inMemEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

func NewInMemory() *InMemory {
	return &InMemory{
		data: make(map[string]inMemEntry),
	}
}

// Now returns the fake's current time. Pass the method value as the clock
// of the code under test so both sides observe Advance.
func (m *InMemory) Now() time.Time {
	return time.Now().Add(time.Duration(m.offset.Load()))
}

// Advance shifts the fake clock forward.
func (m *InMemory) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

func (m *InMemory) get(key string) (inMemEntry, bool) {
	e, ok := m.data[key]
	if !ok {
		return inMemEntry{}, false
	}
	if !e.expiresAt.IsZero() && !m.Now().Before(e.expiresAt) {
		delete(m.data, key)
		return inMemEntry{}, false
	}
	return e, true
}

func (m *InMemory) SetEx(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = inMemEntry{value: value, expiresAt: m.Now().Add(ttl)}
	return nil
}

func (m *InMemory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.get(key)
	if !ok {
		return "", ErrNotFound
	}
	return e.value, nil
}

func (m *InMemory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *InMemory) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.get(key)
	return ok, nil
}

func (m *InMemory) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.get(key)
	n := int64(0)
	expiresAt := time.Time{}
	if ok {
		n, _ = strconv.ParseInt(e.value, 10, 64)
		expiresAt = e.expiresAt
	}
	n++

	m.data[key] = inMemEntry{value: strconv.FormatInt(n, 10), expiresAt: expiresAt}
	return n, nil
}

func (m *InMemory) Expire(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.get(key)
	if !ok {
		return nil
	}
	e.expiresAt = m.Now().Add(ttl)
	m.data[key] = e
	return nil
}

func (m *InMemory) Ping(context.Context) error {
	return nil
}
