package mail

import (
	"context"
	"fmt"
	netmail "net/mail"
	"time"

	"golang.org/x/time/rate"

	"github.com/zetherabarter/Rec-Backend2/internal/metrics"
)

// Request is one dispatch call: a single subject/body template applied to an
// ordered recipient list.
type Request struct {
	Subject     string
	Body        string
	Emails      []string
	Bcc         []string
	Custom      map[string][]string
	Attachments []Attachment
}

// Outcome is the transient per-call result returned to the caller. It is
// distinct from the persisted summary.
type Outcome struct {
	TotalRecipients int
	SentCount       int
	FailedCount     int
	Errors          []string
	Success         bool
}

type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

type DispatcherConfigurator interface {
	GetSendRatePerSecond() (*int, error)
	GetSendTimeout() time.Duration
}

// Dispatcher sends one rendered message per recipient through a single
// transport, tolerating partial failures.
type Dispatcher struct {
	transport Transport
	limiter   *rate.Limiter
	timeout   time.Duration
}

func NewDispatcher(transport Transport, configurator DispatcherConfigurator) (*Dispatcher, error) {

	perSecond, err := configurator.GetSendRatePerSecond()

	if err != nil {
		return nil, fmt.Errorf("failed to get send rate - %w", err)
	}

	var limiter *rate.Limiter

	if perSecond != nil {
		limiter = rate.NewLimiter(rate.Limit(*perSecond), *perSecond)
	}

	return &Dispatcher{
		transport: transport,
		limiter:   limiter,
		timeout:   configurator.GetSendTimeout(),
	}, nil
}

func validateAddresses(kind string, addresses []string) error {

	for _, address := range addresses {
		parsed, err := netmail.ParseAddress(address)

		if err != nil || parsed.Address != address {
			return ValidationError{
				Reason: fmt.Sprintf("invalid %s address %q", kind, address),
			}
		}
	}

	return nil
}

func (d *Dispatcher) validate(req Request) error {

	if len(req.Emails) == 0 {
		return ValidationError{Reason: "at least one email recipient is required"}
	}

	if err := validateAddresses("recipient", req.Emails); err != nil {
		return err
	}

	return validateAddresses("bcc", req.Bcc)
}

func (d *Dispatcher) send(ctx context.Context, msg Message) error {

	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	return d.transport.Send(sendCtx, msg)
}

// Dispatch validates the request, decodes attachments, then attempts one
// send per recipient in input order. A failed send is recorded against that
// recipient and does not abort the rest of the batch. Validation and decode
// failures reject the whole request before any network activity.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Outcome, error) {

	outcome := Outcome{}

	if err := d.validate(req); err != nil {
		return outcome, err
	}

	parts, err := DecodeAttachments(req.Attachments)

	if err != nil {
		return outcome, err
	}

	outcome.TotalRecipients = len(req.Emails)

	for i, recipient := range req.Emails {

		msg := Message{
			To:          recipient,
			Subject:     Render(req.Subject, i, req.Custom),
			HTMLBody:    Render(req.Body, i, req.Custom),
			Bcc:         req.Bcc,
			Attachments: parts,
		}

		if err := d.send(ctx, msg); err != nil {
			outcome.FailedCount++
			outcome.Errors = append(outcome.Errors,
				fmt.Sprintf("failed to send to %s: %v", recipient, err))
			metrics.EmailsFailed.Inc()
			continue
		}

		outcome.SentCount++
		metrics.EmailsSent.Inc()
	}

	outcome.Success = outcome.FailedCount == 0

	return outcome, nil
}
