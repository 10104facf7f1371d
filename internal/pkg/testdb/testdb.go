// Package testdb starts a disposable Postgres container for integration
// tests.
package testdb

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Register the pgx database/sql driver.
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	image    = "postgres"
	tag      = "16-alpine"
	user     = "cafe"
	password = "secret"
	dbName   = "cafes"
)

type Postgres struct {
	DSN string

	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// StartPostgres runs a Postgres container and waits until it accepts
// connections. The container is removed after expire even if Purge is never
// called.
func StartPostgres(expire time.Duration) (*Postgres, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("dockertest.NewPool -> %w", err)
	}

	if err = pool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("pool.Client.Ping -> %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: image,
		Tag:        tag,
		Env: []string{
			"POSTGRES_USER=" + user,
			"POSTGRES_PASSWORD=" + password,
			"POSTGRES_DB=" + dbName,
			"listen_addresses = '*'",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("pool.RunWithOptions -> %w", err)
	}

	if err = resource.Expire(uint(expire.Seconds())); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("resource.Expire -> %w", err)
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		user, password, resource.GetHostPort("5432/tcp"), dbName,
	)

	pool.MaxWait = expire
	err = pool.Retry(func() error {
		conn, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer conn.Close()

		return conn.Ping()
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("pool.Retry -> %w", err)
	}

	return &Postgres{
		DSN:      dsn,
		pool:     pool,
		resource: resource,
	}, nil
}

func (p *Postgres) Purge() error {
	return p.pool.Purge(p.resource)
}
