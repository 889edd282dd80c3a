package redistest

import (
	"context"
	"fmt"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	goredis "github.com/redis/go-redis/v9"

	"github.com/goto/remark/internal/store"
	"github.com/goto/remark/internal/store/redis"
)

// NewTestClient starts a disposable redis container and returns a client
// connected to it.
func NewTestClient() (*goredis.Client, *dockertest.Pool, *dockertest.Resource, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not create dockertest pool: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not start resource: %w", err)
	}
	if err := resource.Expire(120); err != nil {
		return nil, nil, nil, err
	}

	pool.MaxWait = 60 * time.Second
	cfg := store.RedisConfig{Addr: "localhost:" + resource.GetPort("6379/tcp")}

	var client *goredis.Client
	if err := pool.Retry(func() error {
		var err error
		client, err = redis.NewClient(context.Background(), cfg)
		return err
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to docker: %w", err)
	}
	return client, pool, resource, nil
}
