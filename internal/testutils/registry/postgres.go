package registry

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	ps "github.com/zetherabarter/Rec-Backend2/internal/registry/postgres"
	"github.com/zetherabarter/Rec-Backend2/internal/testutils/containers"
)

const getApplicantSlot = `
SELECT
	assigned_slot
FROM
	applicants
WHERE
	email = $1;
`

const getApplicantAttendance = `
SELECT
	is_present
FROM
	applicants
WHERE
	id = $1;
`

const countSummariesWithSubject = `
SELECT
	COUNT(*)
FROM
	email_summaries
WHERE
	subject = $1;
`

type ContainerTester interface {
	ClearDB(ctx context.Context) error
}

type postgresRegistryTester struct {
	*ps.Registry
	conn *pgxpool.Pool
}

type closer func()

func (t *postgresRegistryTester) ClearDB(ctx context.Context) error {
	_, err := t.conn.Exec(ctx, `
		TRUNCATE email_summaries;
		TRUNCATE email_templates;
		TRUNCATE applicants;
	`)

	return err
}

func (t *postgresRegistryTester) GetAssignedSlot(ctx context.Context, email string) (*string, error) {

	var slot *string

	err := t.conn.QueryRow(ctx, getApplicantSlot, email).Scan(&slot)

	if err != nil {
		return nil, fmt.Errorf("failed to retrieve assigned slot - %w", err)
	}

	return slot, nil
}

func (t *postgresRegistryTester) GetAttendance(ctx context.Context, applicantId string) (bool, error) {

	var isPresent bool

	err := t.conn.QueryRow(ctx, getApplicantAttendance, applicantId).Scan(&isPresent)

	if err != nil {
		return false, fmt.Errorf("failed to retrieve attendance - %w", err)
	}

	return isPresent, nil
}

func (t *postgresRegistryTester) CountSummariesWithSubject(ctx context.Context, subject string) (int, error) {

	var count int

	err := t.conn.QueryRow(ctx, countSummariesWithSubject, subject).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to retrieve count - %w", err)
	}

	return count, nil
}

func NewPostgresIntegrationTester(ctx context.Context) (*postgresRegistryTester, closer, error) {

	container, containerCloser, err := containers.NewPostgresContainer(ctx)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to create container - %w", err)
	}

	url, err := container.GetPostgresUrl()

	if err != nil {
		return nil, nil, err
	}

	conn, err := pgxpool.New(ctx, url)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to create pool - %w", err)
	}

	registry, err := ps.NewPostgresRegistryFromPool(conn)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to create registry - %w", err)
	}

	tester := postgresRegistryTester{
		Registry: registry,
		conn:     conn,
	}

	closer := func() {
		containerCloser()
	}

	return &tester, closer, nil
}
