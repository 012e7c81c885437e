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

// Package redis implements state.Store on top of redis. Value state maps to a
// redis string key, bag state to a redis list. Handle resolution builds the
// redis key and nothing else; every read/write is a round trip on the handle
// method's context.
package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rangerwolf/reduceflow/pkg/shared/logging"
	"github.com/rangerwolf/reduceflow/pkg/state"
)

const keyPrefix = "reduceflow"

// Store implements state.Store backed by redis.
type Store[K any] struct {
	client redis.UniversalClient
	log    *zap.SugaredLogger
}

var _ state.Store[string] = (*Store[string])(nil)

// NewStore returns a store over an existing redis client. The caller owns the
// client's lifecycle.
func NewStore[K any](ctx context.Context, client redis.UniversalClient) *Store[K] {
	return &Store[K]{
		client: client,
		log:    logging.FromContext(ctx),
	}
}

// NewEnvStore returns a store connected per environment, it assumes it runs in
// a pod where the required environment variables are available.
func NewEnvStore[K any](ctx context.Context) *Store[K] {
	opts := &redis.UniversalOptions{
		Username: os.Getenv("REDUCEFLOW_REDIS_USER"),
		Password: os.Getenv("REDUCEFLOW_REDIS_PASSWORD"),
	}
	if urls := os.Getenv("REDUCEFLOW_REDIS_URL"); urls != "" {
		opts.Addrs = strings.Split(urls, ",")
	}
	store := NewStore[K](ctx, redis.NewUniversalClient(opts))
	store.log.Infow("Created redis state store", zap.Strings("addrs", opts.Addrs))
	return store
}

// State returns the handle for (namespace, tag).
func (s *Store[K]) State(namespace state.Namespace, tag state.Tag[K], sctx state.Context) state.State {
	redisKey := fmt.Sprintf("%s:%s:%s", keyPrefix, namespace.Key(), tag.ID())
	switch tag.Kind() {
	case state.ValueTag:
		return &valueState{client: s.client, key: redisKey}
	case state.BagTag:
		return &bagState{client: s.client, key: redisKey}
	default:
		s.log.Errorw("Unknown tag kind", zap.String("tag", tag.ID()), zap.Any("kind", tag.Kind()))
		panic(fmt.Sprintf("redis: unknown tag kind %v for tag %q", tag.Kind(), tag.ID()))
	}
}

type valueState struct {
	client redis.UniversalClient
	key    string
}

var _ state.ValueState = (*valueState)(nil)

func (v *valueState) Read(ctx context.Context) ([]byte, error) {
	value, err := v.client.Get(ctx, v.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read value state %q, %w", v.key, err)
	}
	return value, nil
}

func (v *valueState) Write(ctx context.Context, value []byte) error {
	if err := v.client.Set(ctx, v.key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write value state %q, %w", v.key, err)
	}
	return nil
}

func (v *valueState) Clear(ctx context.Context) error {
	return v.client.Del(ctx, v.key).Err()
}

type bagState struct {
	client redis.UniversalClient
	key    string
}

var _ state.BagState = (*bagState)(nil)

func (b *bagState) Add(ctx context.Context, value []byte) error {
	if err := b.client.RPush(ctx, b.key, value).Err(); err != nil {
		return fmt.Errorf("failed to append to bag state %q, %w", b.key, err)
	}
	return nil
}

func (b *bagState) Read(ctx context.Context) ([][]byte, error) {
	values, err := b.client.LRange(ctx, b.key, 0, -1).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bag state %q, %w", b.key, err)
	}
	out := make([][]byte, len(values))
	for i, v := range values {
		out[i] = []byte(v)
	}
	return out, nil
}

func (b *bagState) Clear(ctx context.Context) error {
	return b.client.Del(ctx, b.key).Err()
}
