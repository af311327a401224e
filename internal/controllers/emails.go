package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zetherabarter/Rec-Backend2/internal/dto"
	"github.com/zetherabarter/Rec-Backend2/internal/mail"
)

type EmailRegistry interface {
	GetEmailSummaries(ctx context.Context, filters dto.PageFilter) ([]dto.EmailSummary, error)
	CountEmailSummaries(ctx context.Context, success *bool) (int, error)
	CountEmailSummariesSince(ctx context.Context, since time.Time) (int, error)
	SaveEmailTemplate(ctx context.Context, template dto.EmailTemplateReq) (dto.EmailTemplate, error)
	GetEmailTemplates(ctx context.Context) ([]dto.EmailTemplate, error)
}

type EmailDispatcher interface {
	Dispatch(ctx context.Context, req mail.Request) (mail.Outcome, error)
}

type SummaryRecorder interface {
	Record(ctx context.Context, req mail.Request, outcome mail.Outcome) mail.Summary
}

type EmailController struct {
	Registry   EmailRegistry
	Dispatcher EmailDispatcher
	Recorder   SummaryRecorder
}

func toMailRequest(req dto.EmailSendReq) mail.Request {

	attachments := make([]mail.Attachment, 0, len(req.Attachments))

	for _, attachment := range req.Attachments {
		attachments = append(attachments, mail.Attachment{
			Filename:      attachment.Filename,
			MimeType:      attachment.MimeType,
			ContentBase64: attachment.ContentBase64,
		})
	}

	return mail.Request{
		Subject:     req.Subject,
		Body:        req.Body,
		Emails:      req.Emails,
		Bcc:         req.Bcc,
		Custom:      req.Custom,
		Attachments: attachments,
	}
}

func dispatchMessage(outcome mail.Outcome) string {

	if outcome.SentCount == 0 {
		return "Failed to send emails"
	}

	message := fmt.Sprintf("Email sent successfully to %d out of %d recipients",
		outcome.SentCount, outcome.TotalRecipients)

	if outcome.FailedCount > 0 {
		message += fmt.Sprintf(". %d emails failed to send.", outcome.FailedCount)
	}

	return message
}

// SendEmail dispatches one subject/body template to a recipient list.
// Per-recipient send failures are reported in the response body, never as a
// server error; only request validation problems reject the call.
func (ec *EmailController) SendEmail(c *gin.Context) {
	var sendReq dto.EmailSendReq

	if err := c.ShouldBindJSON(&sendReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mailReq := toMailRequest(sendReq)

	outcome, err := ec.Dispatcher.Dispatch(c.Request.Context(), mailReq)

	var validationErr mail.ValidationError
	var decodeErr mail.DecodeError

	if errors.As(err, &validationErr) || errors.As(err, &decodeErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	ec.Recorder.Record(c.Request.Context(), mailReq, outcome)

	c.JSON(http.StatusOK, dto.EmailSendResp{
		Success:         outcome.Success,
		SentCount:       outcome.SentCount,
		FailedCount:     outcome.FailedCount,
		TotalRecipients: outcome.TotalRecipients,
		Errors:          outcome.Errors,
		Message:         dispatchMessage(outcome),
	})
}

func (ec *EmailController) GetEmailSummaries(c *gin.Context) {
	var filters dto.PageFilter

	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaries, err := ec.Registry.GetEmailSummaries(c.Request.Context(), filters)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetEmailStats recomputes the aggregate counters from persisted summaries on
// every call so the numbers can never drift from the underlying records.
func (ec *EmailController) GetEmailStats(c *gin.Context) {

	ctx := c.Request.Context()

	total, err := ec.Registry.CountEmailSummaries(ctx, nil)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	successOnly := true
	successful, err := ec.Registry.CountEmailSummaries(ctx, &successOnly)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	recent, err := ec.Registry.CountEmailSummariesSince(ctx, time.Now().Add(-24*time.Hour))

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	successRate := 0.0

	if total > 0 {
		successRate = float64(successful) / float64(total) * 100
	}

	c.JSON(http.StatusOK, dto.EmailStats{
		TotalEmails:      total,
		SuccessfulEmails: successful,
		FailedEmails:     total - successful,
		RecentEmails24h:  recent,
		SuccessRate:      successRate,
	})
}

func (ec *EmailController) SaveEmailTemplate(c *gin.Context) {
	var templateReq dto.EmailTemplateReq

	if err := c.ShouldBindJSON(&templateReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := ec.Registry.SaveEmailTemplate(c.Request.Context(), templateReq)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, template)
}

func (ec *EmailController) GetEmailTemplates(c *gin.Context) {

	templates, err := ec.Registry.GetEmailTemplates(c.Request.Context())

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, templates)
}
