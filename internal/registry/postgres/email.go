package postgresregistry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/zetherabarter/Rec-Backend2/internal/dto"
	"github.com/zetherabarter/Rec-Backend2/internal/mail"
)

const insertEmailSummary = `
INSERT INTO email_summaries (
	id,
	subject,
	recipients,
	bcc_recipients,
	body_preview,
	sent_at,
	success,
	sent_count,
	failed_count,
	errors
) VALUES (
	@id,
	@subject,
	@recipients,
	@bccRecipients,
	@bodyPreview,
	@sentAt,
	@success,
	@sentCount,
	@failedCount,
	@errors
);
`

const getEmailSummaries = `
SELECT
	id,
	subject,
	recipients,
	bcc_recipients,
	body_preview,
	sent_at,
	success,
	sent_count,
	failed_count,
	errors
FROM
	email_summaries
ORDER BY
	sent_at DESC,
	id DESC
LIMIT
	@limit
OFFSET
	@skip;
`

const countEmailSummaries = `
SELECT
	COUNT(*)
FROM
	email_summaries;
`

const countEmailSummariesBySuccess = `
SELECT
	COUNT(*)
FROM
	email_summaries
WHERE
	success = @success;
`

const countEmailSummariesSince = `
SELECT
	COUNT(*)
FROM
	email_summaries
WHERE
	sent_at >= @since;
`

const insertEmailTemplate = `
INSERT INTO email_templates (
	id,
	subject,
	body,
	custom,
	created_at,
	updated_at
) VALUES (
	@id,
	@subject,
	@body,
	@custom,
	@createdAt,
	@updatedAt
);
`

const getEmailTemplates = `
SELECT
	id,
	subject,
	body,
	custom,
	created_at,
	updated_at
FROM
	email_templates
ORDER BY
	created_at DESC;
`

type emailSummary struct {
	Id            string    `db:"id"`
	Subject       string    `db:"subject"`
	Recipients    []string  `db:"recipients"`
	BccRecipients []string  `db:"bcc_recipients"`
	BodyPreview   string    `db:"body_preview"`
	SentAt        time.Time `db:"sent_at"`
	Success       bool      `db:"success"`
	SentCount     int       `db:"sent_count"`
	FailedCount   int       `db:"failed_count"`
	Errors        []string  `db:"errors"`
}

func (s *emailSummary) toDTO() dto.EmailSummary {
	return dto.EmailSummary{
		Id:            s.Id,
		Subject:       s.Subject,
		Recipients:    s.Recipients,
		BccRecipients: s.BccRecipients,
		BodyPreview:   s.BodyPreview,
		SentAt:        s.SentAt.Format(time.RFC3339Nano),
		Success:       s.Success,
		SentCount:     s.SentCount,
		FailedCount:   s.FailedCount,
		Errors:        s.Errors,
	}
}

// SaveEmailSummary persists one dispatch summary. Summaries are immutable
// once inserted.
func (r *Registry) SaveEmailSummary(ctx context.Context, summary mail.Summary) (string, error) {

	id, err := uuid.NewV7()

	if err != nil {
		return "", fmt.Errorf("failed to generate summary id - %w", err)
	}

	var summaryErrors []string = nil

	if len(summary.Errors) > 0 {
		summaryErrors = summary.Errors
	}

	args := pgx.NamedArgs{
		"id":            id.String(),
		"subject":       summary.Subject,
		"recipients":    summary.Recipients,
		"bccRecipients": summary.BccRecipients,
		"bodyPreview":   summary.BodyPreview,
		"sentAt":        summary.SentAt,
		"success":       summary.Success,
		"sentCount":     summary.SentCount,
		"failedCount":   summary.FailedCount,
		"errors":        summaryErrors,
	}

	_, err = r.conn.Exec(ctx, insertEmailSummary, args)

	if err != nil {
		return "", fmt.Errorf("failed to insert email summary - %w", err)
	}

	return id.String(), nil
}

func (r *Registry) GetEmailSummaries(ctx context.Context, filters dto.PageFilter) ([]dto.EmailSummary, error) {

	args := pgx.NamedArgs{
		"limit": filters.LimitOrDefault(),
		"skip":  filters.SkipOrDefault(),
	}

	rows, err := r.conn.Query(ctx, getEmailSummaries, args)

	if err != nil {
		return nil, fmt.Errorf("failed to query email summaries - %w", err)
	}

	defer rows.Close()

	summaries := []dto.EmailSummary{}

	for rows.Next() {
		row := emailSummary{}

		err = rows.Scan(
			&row.Id,
			&row.Subject,
			&row.Recipients,
			&row.BccRecipients,
			&row.BodyPreview,
			&row.SentAt,
			&row.Success,
			&row.SentCount,
			&row.FailedCount,
			&row.Errors,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan email summary - %w", err)
		}

		summaries = append(summaries, row.toDTO())
	}

	return summaries, nil
}

func (r *Registry) CountEmailSummaries(ctx context.Context, success *bool) (int, error) {

	count := 0

	var err error

	if success == nil {
		err = r.conn.QueryRow(ctx, countEmailSummaries).Scan(&count)
	} else {
		args := pgx.NamedArgs{"success": *success}
		err = r.conn.QueryRow(ctx, countEmailSummariesBySuccess, args).Scan(&count)
	}

	if err != nil {
		return 0, fmt.Errorf("failed to count email summaries - %w", err)
	}

	return count, nil
}

func (r *Registry) CountEmailSummariesSince(ctx context.Context, since time.Time) (int, error) {

	count := 0

	args := pgx.NamedArgs{"since": since}

	err := r.conn.QueryRow(ctx, countEmailSummariesSince, args).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count recent email summaries - %w", err)
	}

	return count, nil
}

func (r *Registry) SaveEmailTemplate(ctx context.Context, template dto.EmailTemplateReq) (dto.EmailTemplate, error) {

	saved := dto.EmailTemplate{}

	id, err := uuid.NewV7()

	if err != nil {
		return saved, fmt.Errorf("failed to generate template id - %w", err)
	}

	now := time.Now().UTC()

	args := pgx.NamedArgs{
		"id":        id.String(),
		"subject":   template.Subject,
		"body":      template.Body,
		"custom":    template.Custom,
		"createdAt": now,
		"updatedAt": now,
	}

	_, err = r.conn.Exec(ctx, insertEmailTemplate, args)

	if err != nil {
		return saved, fmt.Errorf("failed to insert email template - %w", err)
	}

	saved = dto.EmailTemplate{
		Id:        id.String(),
		Subject:   template.Subject,
		Body:      template.Body,
		Custom:    template.Custom,
		CreatedAt: now.Format(time.RFC3339Nano),
		UpdatedAt: now.Format(time.RFC3339Nano),
	}

	return saved, nil
}

func (r *Registry) GetEmailTemplates(ctx context.Context) ([]dto.EmailTemplate, error) {

	rows, err := r.conn.Query(ctx, getEmailTemplates)

	if err != nil {
		return nil, fmt.Errorf("failed to query email templates - %w", err)
	}

	defer rows.Close()

	templates := []dto.EmailTemplate{}

	for rows.Next() {
		var (
			template  dto.EmailTemplate
			createdAt time.Time
			updatedAt time.Time
		)

		err = rows.Scan(
			&template.Id,
			&template.Subject,
			&template.Body,
			&template.Custom,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan email template - %w", err)
		}

		template.CreatedAt = createdAt.Format(time.RFC3339Nano)
		template.UpdatedAt = updatedAt.Format(time.RFC3339Nano)

		templates = append(templates, template)
	}

	return templates, nil
}
