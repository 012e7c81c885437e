package redis

import (
	"context"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rangerwolf/reduceflow/pkg/state"
)

// needs a running redis, e.g. REDUCEFLOW_REDIS_URL=localhost:6379
func testClient(t *testing.T) goredis.UniversalClient {
	t.Helper()
	url := os.Getenv("REDUCEFLOW_REDIS_URL")
	if url == "" {
		t.SkipNow()
	}
	return goredis.NewUniversalClient(&goredis.UniversalOptions{Addrs: []string{url}})
}

func TestStore_ValueStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := testClient(t)
	defer func() { _ = client.Close() }()
	store := NewStore[string](ctx, client)

	ns := state.ForWindow([]byte("redis-test-w1"))
	tag := state.NewTag[string]("pane-count", state.ValueTag)
	vs := store.State(ns, tag, state.WindowOnly("w1")).(state.ValueState)
	defer func() { _ = vs.Clear(ctx) }()

	value, err := vs.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, vs.Write(ctx, []byte("3")))
	value, err = vs.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), value)
}

func TestStore_BagStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := testClient(t)
	defer func() { _ = client.Close() }()
	store := NewStore[string](ctx, client)

	ns := state.ForWindow([]byte("redis-test-w2"))
	tag := state.NewTag[string]("buffered-values", state.BagTag)
	bs := store.State(ns, tag, state.WindowOnly("w2")).(state.BagState)
	defer func() { _ = bs.Clear(ctx) }()

	require.NoError(t, bs.Add(ctx, []byte("a")))
	require.NoError(t, bs.Add(ctx, []byte("b")))

	values, err := bs.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, values)
}
