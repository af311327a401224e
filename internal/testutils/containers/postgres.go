package containers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/zetherabarter/Rec-Backend2/pkg/deployments"
)

const (
	postgresDB       = "recruitment"
	postgresUser     = "postgres"
	postgresPassword = "postgres"
)

type Postgres struct {
	testcontainers.Container
	URI string
}

func (pc *Postgres) GetPostgresUrl() (string, error) {

	if pc == nil {
		return "", fmt.Errorf("postgres container is null")
	}

	return pc.URI, nil
}

func NewPostgresContainer(ctx context.Context) (*Postgres, func(), error) {

	port := "5432"

	req := testcontainers.ContainerRequest{
		Image:      "postgres:16.3",
		WaitingFor: wait.ForExposedPort(),
		Env: map[string]string{
			"POSTGRES_DB":       postgresDB,
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPassword,
		},
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	if err != nil {
		return nil, nil, fmt.Errorf("failed to init the postgres container - %w", err)
	}

	ip, err := container.Host(ctx)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to get the postgres host - %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, nat.Port(port))

	if err != nil {
		return nil, nil, fmt.Errorf("failed to acquire mapped port - %w", err)
	}

	uriTemplate := "postgres://%s:%s@%s:%s/%s?sslmode=disable"

	uri := fmt.Sprintf(
		uriTemplate,
		postgresUser,
		postgresPassword,
		ip,
		mappedPort.Port(),
		postgresDB,
	)

	if err := deployments.RunMigrations(uri); err != nil {
		return nil, nil, fmt.Errorf("failed to run migrations - %w", err)
	}

	close := func() {
		err := container.Terminate(ctx)

		if err != nil {
			slog.Error("failed to terminate postgres container", "reason", err)
		}
	}

	pc := Postgres{
		Container: container,
		URI:       uri,
	}

	return &pc, close, nil
}
