//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedisContainer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return endpoint
}

func TestIntegration_LoginThrottle(t *testing.T) {
	ctx := context.Background()
	client, err := Connect(ctx, Config{Addr: startRedisContainer(t)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	th := NewLoginThrottle(client, 2, time.Minute)

	locked, err := th.Locked(ctx, "drsmith")
	require.NoError(t, err)
	assert.False(t, locked)

	require.NoError(t, th.RecordFailure(ctx, "drsmith"))
	require.NoError(t, th.RecordFailure(ctx, "DrSmith"))

	locked, err = th.Locked(ctx, "drsmith")
	require.NoError(t, err)
	assert.True(t, locked)

	ttl, err := client.TTL(ctx, th.key("drsmith")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	require.NoError(t, th.Reset(ctx, "drsmith"))
	locked, err = th.Locked(ctx, "drsmith")
	require.NoError(t, err)
	assert.False(t, locked)
}
