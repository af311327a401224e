package postgresregistry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zetherabarter/Rec-Backend2/internal"
	"github.com/zetherabarter/Rec-Backend2/internal/dto"
	"github.com/zetherabarter/Rec-Backend2/internal/registry"
)

const uniqueViolationCode = "23505"

const insertApplicant = `
INSERT INTO applicants (
	id,
	name,
	email,
	phone,
	year,
	branch,
	domains,
	is_present,
	created_at
) VALUES (
	@id,
	@name,
	@email,
	@phone,
	@year,
	@branch,
	@domains,
	FALSE,
	@createdAt
);
`

const getApplicants = `
SELECT
	id,
	name,
	email,
	phone,
	year,
	branch,
	domains,
	is_present,
	assigned_slot,
	created_at
FROM
	applicants
ORDER BY
	created_at DESC,
	id DESC
LIMIT
	@limit
OFFSET
	@skip;
`

const updateAttendance = `
UPDATE
	applicants
SET
	is_present = @isPresent
WHERE
	id = @applicantId
RETURNING
	id;
`

const getExistingApplicantEmails = `
SELECT
	email
FROM
	applicants
WHERE
	email = ANY(@emails)
LIMIT
	1;
`

const assignSlot = `
UPDATE
	applicants
SET
	assigned_slot = @assignedSlot
WHERE
	email = ANY(@emails);
`

type applicant struct {
	Id           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	Year         int       `db:"year"`
	Branch       string    `db:"branch"`
	Domains      []string  `db:"domains"`
	IsPresent    bool      `db:"is_present"`
	AssignedSlot *string   `db:"assigned_slot"`
	CreatedAt    time.Time `db:"created_at"`
}

func (a *applicant) toDTO() dto.Applicant {
	return dto.Applicant{
		Id:           a.Id,
		Name:         a.Name,
		Email:        a.Email,
		Phone:        a.Phone,
		Year:         a.Year,
		Branch:       a.Branch,
		Domains:      a.Domains,
		IsPresent:    a.IsPresent,
		AssignedSlot: a.AssignedSlot,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339Nano),
	}
}

func (r *Registry) SaveApplicant(ctx context.Context, applicantReq dto.ApplicantReq) (string, error) {

	id, err := uuid.NewV7()

	if err != nil {
		return "", fmt.Errorf("failed to generate applicant id - %w", err)
	}

	args := pgx.NamedArgs{
		"id":        id.String(),
		"name":      applicantReq.Name,
		"email":     applicantReq.Email,
		"phone":     applicantReq.Phone,
		"year":      applicantReq.Year,
		"branch":    applicantReq.Branch,
		"domains":   applicantReq.Domains,
		"createdAt": time.Now().UTC(),
	}

	_, err = r.conn.Exec(ctx, insertApplicant, args)

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return "", internal.ApplicantAlreadyExists{Email: applicantReq.Email}
	} else if err != nil {
		return "", fmt.Errorf("failed to insert applicant - %w", err)
	}

	return id.String(), nil
}

// SaveApplicants inserts the whole batch in a single transaction. Either
// every applicant is stored or none is.
func (r *Registry) SaveApplicants(ctx context.Context, applicantReqs []dto.ApplicantReq) ([]string, error) {

	tx, err := r.conn.Begin(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to start transaction - %w", err)
	}

	defer tx.Rollback(ctx)

	emails := make([]string, 0, len(applicantReqs))

	for _, applicantReq := range applicantReqs {
		emails = append(emails, applicantReq.Email)
	}

	existing := ""

	err = tx.QueryRow(ctx, getExistingApplicantEmails, pgx.NamedArgs{
		"emails": emails,
	}).Scan(&existing)

	if err == nil {
		return nil, internal.ApplicantAlreadyExists{Email: existing}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing applicants - %w", err)
	}

	now := time.Now().UTC()

	ids := make([]string, 0, len(applicantReqs))
	batchArgs := make([]pgx.NamedArgs, 0, len(applicantReqs))

	for _, applicantReq := range applicantReqs {
		id, err := uuid.NewV7()

		if err != nil {
			return nil, fmt.Errorf("failed to generate applicant id - %w", err)
		}

		ids = append(ids, id.String())

		batchArgs = append(batchArgs, pgx.NamedArgs{
			"id":        id.String(),
			"name":      applicantReq.Name,
			"email":     applicantReq.Email,
			"phone":     applicantReq.Phone,
			"year":      applicantReq.Year,
			"branch":    applicantReq.Branch,
			"domains":   applicantReq.Domains,
			"createdAt": now,
		})
	}

	err = batchInsert(ctx, insertApplicant, batchArgs, tx)

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return nil, internal.ApplicantAlreadyExists{}
	} else if err != nil {
		return nil, fmt.Errorf("failed to insert applicants - %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit applicants - %w", err)
	}

	return ids, nil
}

func (r *Registry) GetApplicants(ctx context.Context, filters dto.PageFilter) ([]dto.Applicant, error) {

	args := pgx.NamedArgs{
		"limit": filters.LimitOrDefault(),
		"skip":  filters.SkipOrDefault(),
	}

	rows, err := r.conn.Query(ctx, getApplicants, args)

	if err != nil {
		return nil, fmt.Errorf("failed to query applicants - %w", err)
	}

	defer rows.Close()

	applicants := []dto.Applicant{}

	for rows.Next() {
		row := applicant{}

		err = rows.Scan(
			&row.Id,
			&row.Name,
			&row.Email,
			&row.Phone,
			&row.Year,
			&row.Branch,
			&row.Domains,
			&row.IsPresent,
			&row.AssignedSlot,
			&row.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan applicant - %w", err)
		}

		applicants = append(applicants, row.toDTO())
	}

	return applicants, nil
}

func (r *Registry) UpdateAttendance(ctx context.Context, applicantId string, isPresent bool) error {

	args := pgx.NamedArgs{
		"applicantId": applicantId,
		"isPresent":   isPresent,
	}

	id := ""

	err := r.conn.QueryRow(ctx, updateAttendance, args).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		return internal.EntityNotFound{
			Id:   applicantId,
			Type: registry.ApplicantType,
		}
	} else if err != nil {
		return fmt.Errorf("failed to update attendance - %w", err)
	}

	return nil
}

// AssignSlots sets the slot on every applicant matched by email and reports
// how many rows were updated. Unknown emails are skipped silently.
func (r *Registry) AssignSlots(ctx context.Context, assignment dto.SlotAssignment) (int, error) {

	args := pgx.NamedArgs{
		"assignedSlot": assignment.AssignedSlot,
		"emails":       assignment.Emails,
	}

	tag, err := r.conn.Exec(ctx, assignSlot, args)

	if err != nil {
		return 0, fmt.Errorf("failed to assign slots - %w", err)
	}

	return int(tag.RowsAffected()), nil
}
