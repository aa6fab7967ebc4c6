//go:build integration

// Package testinfra starts throwaway Redis and MongoDB containers for the
// integration tests. Run them with: go test -tags integration ./...
package testinfra

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	RedisImage = "redis:7-alpine"
	MongoImage = "mongo:7"

	startTimeout = 60 * time.Second
)

// SkipIfNoDocker skips the test when no Docker daemon is reachable
func SkipIfNoDocker(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

func start(ctx context.Context, t *testing.T, req testcontainers.ContainerRequest, port string) string {
	t.Helper()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start %s: %v", req.Image, err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	endpoint, err := container.PortEndpoint(ctx, port, "")
	if err != nil {
		t.Fatalf("resolve %s endpoint: %v", req.Image, err)
	}
	return endpoint
}

// Redis starts a Redis container and returns a connected client
func Redis(t *testing.T) *redis.Client {
	t.Helper()
	SkipIfNoDocker(t)
	ctx := context.Background()

	addr := start(ctx, t, testcontainers.ContainerRequest{
		Image:        RedisImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(startTimeout),
	}, "6379/tcp")

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("ping redis: %v", err)
	}
	return client
}

// Mongo starts a MongoDB container and returns a fresh database on it
func Mongo(t *testing.T) *mongo.Database {
	t.Helper()
	SkipIfNoDocker(t)
	ctx := context.Background()

	addr := start(ctx, t, testcontainers.ContainerRequest{
		Image:        MongoImage,
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(startTimeout),
	}, "27017/tcp")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(fmt.Sprintf("mongodb://%s", addr)))
	if err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	t.Cleanup(func() { client.Disconnect(context.Background()) })
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("ping mongo: %v", err)
	}
	return client.Database("careercompass_test")
}
