package postgrestest

import (
	"context"
	"fmt"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/goto/remark/internal/store"
	"github.com/goto/remark/internal/store/postgres"
	"github.com/goto/remark/pkg/log"
)

// NewTestStore starts a disposable postgres container and returns a migrated
// store connected to it.
func NewTestStore(logger log.Logger) (*postgres.Store, *dockertest.Pool, *dockertest.Resource, error) {
	cfg := store.PostgresConfig{
		Host:         "localhost",
		User:         "test_user",
		Password:     "test_pass",
		Name:         "test_db",
		SslMode:      "disable",
		LogLevel:     "error",
		MaxOpenConns: 10,
		MaxIdleConns: 2,
	}
	opts := &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_PASSWORD=" + cfg.Password,
			"POSTGRES_USER=" + cfg.User,
			"POSTGRES_DB=" + cfg.Name,
		},
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not create dockertest pool: %w", err)
	}

	resource, err := pool.RunWithOptions(opts, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not start resource: %w", err)
	}

	cfg.Port = resource.GetPort("5432/tcp")
	if err := resource.Expire(120); err != nil {
		return nil, nil, nil, err
	}

	pool.MaxWait = 60 * time.Second

	var st *postgres.Store
	if err = pool.Retry(func() error {
		st, err = postgres.NewStore(cfg)
		if err != nil {
			return err
		}
		return st.DB().Exec("SELECT 1").Error
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	if err := st.Migrate(); err != nil {
		return nil, nil, nil, fmt.Errorf("could not migrate: %w", err)
	}
	logger.Info(context.Background(), "postgres test store is ready", "port", cfg.Port)

	return st, pool, resource, nil
}

func PurgeTestDocker(pool *dockertest.Pool, resource *dockertest.Resource) error {
	if err := pool.Purge(resource); err != nil {
		return fmt.Errorf("could not purge resource: %w", err)
	}
	return nil
}
