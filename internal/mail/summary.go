package mail

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/zetherabarter/Rec-Backend2/internal/metrics"
)

const previewLength = 200

// Summary is the persisted audit record of one dispatch call.
type Summary struct {
	Id            string
	Subject       string
	Recipients    []string
	BccRecipients []string
	BodyPreview   string
	SentAt        time.Time
	Success       bool
	SentCount     int
	FailedCount   int
	Errors        []string
}

type SummaryStore interface {
	SaveEmailSummary(ctx context.Context, summary Summary) (string, error)
}

// Recorder builds and persists exactly one summary per completed dispatch.
type Recorder struct {
	store  SummaryStore
	policy *bluemonday.Policy
}

func NewRecorder(store SummaryStore) *Recorder {
	return &Recorder{
		store:  store,
		policy: bluemonday.StrictPolicy(),
	}
}

// dedupe keeps the first occurrence of each address, preserving input order.
// Matching is case-sensitive and exact.
func dedupe(addresses []string) []string {

	if len(addresses) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(addresses))
	unique := make([]string, 0, len(addresses))

	for _, address := range addresses {
		if _, ok := seen[address]; ok {
			continue
		}

		seen[address] = struct{}{}
		unique = append(unique, address)
	}

	return unique
}

func (r *Recorder) bodyPreview(body string) string {

	stripped := r.policy.Sanitize(body)
	plain := strings.Join(strings.Fields(stripped), " ")

	runes := []rune(plain)

	if len(runes) <= previewLength {
		return plain
	}

	return string(runes[:previewLength]) + "..."
}

func (r *Recorder) buildSummary(req Request, outcome Outcome) Summary {
	return Summary{
		Subject:       req.Subject,
		Recipients:    dedupe(req.Emails),
		BccRecipients: dedupe(req.Bcc),
		BodyPreview:   r.bodyPreview(req.Body),
		SentAt:        time.Now().UTC(),
		Success:       outcome.Success,
		SentCount:     outcome.SentCount,
		FailedCount:   outcome.FailedCount,
		Errors:        outcome.Errors,
	}
}

// Record persists the summary for a completed dispatch. Persistence failure
// is logged and absorbed: the dispatch outcome already returned to the caller
// reflects send results, not storage results.
func (r *Recorder) Record(ctx context.Context, req Request, outcome Outcome) Summary {

	summary := r.buildSummary(req, outcome)

	id, err := r.store.SaveEmailSummary(ctx, summary)

	if err != nil {
		slog.Error("failed to save email summary",
			"subject", summary.Subject,
			"error", err.Error())
		return summary
	}

	summary.Id = id
	metrics.SummariesRecorded.Inc()

	return summary
}
