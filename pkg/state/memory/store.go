/*
Copyright 2024 The Reduceflow Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package memory implements state.Store backed by process memory. It is meant
// for tests and single-process runs; nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/rangerwolf/reduceflow/pkg/shared/logging"
	"github.com/rangerwolf/reduceflow/pkg/state"
)

// Store implements state.Store. One Store instance holds the state of one key
// of one reduce stage; the engine serializes processing per key, the lock only
// guards against stores shared by tooling.
type Store[K any] struct {
	mu      sync.RWMutex
	values  map[string][]byte
	bags    map[string][][]byte
	handles *atomic.Int64
	log     *zap.SugaredLogger
}

var _ state.Store[string] = (*Store[string])(nil)

// NewStore returns an empty in-memory store.
func NewStore[K any](ctx context.Context) *Store[K] {
	return &Store[K]{
		values:  make(map[string][]byte),
		bags:    make(map[string][][]byte),
		handles: atomic.NewInt64(0),
		log:     logging.FromContext(ctx),
	}
}

// State returns the handle for (namespace, tag). Handles address live store
// entries, so two handles for the same pair observe each other's writes.
func (s *Store[K]) State(namespace state.Namespace, tag state.Tag[K], sctx state.Context) state.State {
	storageKey := namespace.Key() + tag.ID()
	s.handles.Inc()
	switch tag.Kind() {
	case state.ValueTag:
		return &valueState[K]{store: s, key: storageKey}
	case state.BagTag:
		return &bagState[K]{store: s, key: storageKey}
	default:
		s.log.Errorw("Unknown tag kind", zap.String("tag", tag.ID()), zap.Any("kind", tag.Kind()))
		panic(fmt.Sprintf("memory: unknown tag kind %v for tag %q", tag.Kind(), tag.ID()))
	}
}

// Handles returns the number of handles resolved against the store.
func (s *Store[K]) Handles() int64 {
	return s.handles.Load()
}

type valueState[K any] struct {
	store *Store[K]
	key   string
}

var _ state.ValueState = (*valueState[string])(nil)
var _ state.BagState = (*bagState[string])(nil)

func (v *valueState[K]) Read(_ context.Context) ([]byte, error) {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	return v.store.values[v.key], nil
}

func (v *valueState[K]) Write(_ context.Context, value []byte) error {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	v.store.values[v.key] = value
	return nil
}

func (v *valueState[K]) Clear(_ context.Context) error {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	delete(v.store.values, v.key)
	return nil
}

type bagState[K any] struct {
	store *Store[K]
	key   string
}

func (b *bagState[K]) Add(_ context.Context, value []byte) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	b.store.bags[b.key] = append(b.store.bags[b.key], value)
	return nil
}

func (b *bagState[K]) Read(_ context.Context) ([][]byte, error) {
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()
	bag := b.store.bags[b.key]
	out := make([][]byte, len(bag))
	copy(out, bag)
	return out, nil
}

func (b *bagState[K]) Clear(_ context.Context) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	delete(b.store.bags, b.key)
	return nil
}
