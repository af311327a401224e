package testutils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zetherabarter/Rec-Backend2/internal/dto"
	"github.com/zetherabarter/Rec-Backend2/internal/mail"
)

var branches = []string{"CSE", "ECE", "EEE", "MECH", "CIVIL"}

func MakeEmails(numEmails int) []string {

	emails := make([]string, 0, numEmails)

	for i := 0; i < cap(emails); i++ {
		emails = append(emails, fmt.Sprintf("applicant%d@example.com", i))
	}

	return emails
}

func MakeApplicants(numApplicants int) []dto.ApplicantReq {

	applicants := make([]dto.ApplicantReq, 0, numApplicants)

	for i := 0; i < numApplicants; i++ {
		applicant := dto.ApplicantReq{
			Name:    fmt.Sprintf("Applicant %d", i),
			Email:   fmt.Sprintf("applicant%d@example.com", i),
			Phone:   fmt.Sprintf("98765432%02d", i%100),
			Year:    rand.Intn(5) + 1,
			Branch:  branches[i%len(branches)],
			Domains: []string{"Backend", "Frontend"}[:rand.Intn(2)+1],
		}

		applicants = append(applicants, applicant)
	}

	return applicants
}

func MakeEmailSendReq(numRecipients int) dto.EmailSendReq {
	return dto.EmailSendReq{
		Subject: "Interview call for {{name[0]}}",
		Body:    "<p>Hello {{name[0]}}, your slot is {{slot[1]}}.</p>",
		Emails:  MakeEmails(numRecipients),
		Custom: map[string][]string{
			"name": {"Alice", "Bob"},
			"slot": {"Monday 10am", "Monday 11am"},
		},
	}
}

func MakeSummaries(numSummaries int) []mail.Summary {

	summaries := make([]mail.Summary, 0, numSummaries)

	for i := 0; i < numSummaries; i++ {
		recipients := MakeEmails(rand.Intn(5) + 1)

		summary := mail.Summary{
			Subject:     fmt.Sprintf("Test Subject %d", i),
			Recipients:  recipients,
			BodyPreview: fmt.Sprintf("Test preview %d", i),
			SentAt:      time.Now().UTC().Add(-time.Duration(i) * time.Hour),
			Success:     i%2 == 0,
			SentCount:   len(recipients),
			FailedCount: 0,
			Errors:      []string{},
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

func MakeEmailTemplateReq() dto.EmailTemplateReq {
	return dto.EmailTemplateReq{
		Subject: "Shortlisted for {{round[0]}}",
		Body:    "<p>Congratulations {{name[0]}}!</p>",
		Custom:  []string{"round", "name"},
	}
}
