package unit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	di "github.com/zetherabarter/Rec-Backend2/internal/di"
	"github.com/zetherabarter/Rec-Backend2/internal/dto"
	"github.com/zetherabarter/Rec-Backend2/internal/mail"
	"github.com/zetherabarter/Rec-Backend2/internal/testutils"
)

const sendEmailUrl = "/v1/emails/send"
const emailSummariesUrl = "/v1/emails/summaries"
const emailStatsUrl = "/v1/emails/summaries/stats"
const emailTemplatesUrl = "/v1/emails/templates"

func TestEmailController(t *testing.T) {

	controller := gomock.NewController(t)
	defer controller.Finish()

	testApp, err := di.InjectMockedBackend(context.TODO(), controller)

	if err != nil {
		t.Fatalf("failed to create mocked backend - %v", err)
	}

	testSendEmail(t, testApp.Engine, *testApp)
	testGetEmailSummaries(t, testApp.Engine, *testApp)
	testGetEmailStats(t, testApp.Engine, *testApp)
	testSaveEmailTemplate(t, testApp.Engine, *testApp)
	testGetEmailTemplates(t, testApp.Engine, *testApp)
}

func postJSON(e *gin.Engine, url string, payload any) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	marshalled, _ := json.Marshal(payload)
	reader := bytes.NewReader(marshalled)
	req, _ := http.NewRequest(http.MethodPost, url, reader)
	e.ServeHTTP(w, req)
	return w
}

func getUrl(e *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	e.ServeHTTP(w, req)
	return w
}

func testSendEmail(t *testing.T, e *gin.Engine, mock di.MockedBackend) {

	sendReq := testutils.MakeEmailSendReq(2)

	okOutcome := mail.Outcome{
		TotalRecipients: 2,
		SentCount:       2,
		FailedCount:     0,
		Success:         true,
	}

	partialOutcome := mail.Outcome{
		TotalRecipients: 2,
		SentCount:       1,
		FailedCount:     1,
		Errors:          []string{"failed to send to applicant1@example.com: timeout"},
		Success:         false,
	}

	tests := []struct {
		name            string
		input           dto.EmailSendReq
		setupMock       func()
		expectedCode    int
		expectedError   string
		expectedSuccess *bool
	}{
		{
			name:  "Success - All emails sent",
			input: sendReq,
			setupMock: func() {
				mock.Dispatcher.
					EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					Return(okOutcome, nil)

				mock.Recorder.
					EXPECT().
					Record(gomock.Any(), gomock.Any(), okOutcome).
					Return(mail.Summary{Id: "summary-id"})
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: boolPtr(true),
		},
		{
			name:  "Success - Partial failure is still a 200",
			input: sendReq,
			setupMock: func() {
				mock.Dispatcher.
					EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					Return(partialOutcome, nil)

				mock.Recorder.
					EXPECT().
					Record(gomock.Any(), gomock.Any(), partialOutcome).
					Return(mail.Summary{Id: "summary-id"})
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: boolPtr(false),
		},
		{
			name:  "Fail - Dispatcher validation error",
			input: sendReq,
			setupMock: func() {
				mock.Dispatcher.
					EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					Return(mail.Outcome{}, mail.ValidationError{Reason: "invalid recipient address"})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid recipient address",
		},
		{
			name:  "Fail - Attachment decode error",
			input: sendReq,
			setupMock: func() {
				mock.Dispatcher.
					EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					Return(mail.Outcome{}, mail.DecodeError{
						Filename: "broken.pdf",
						Err:      fmt.Errorf("illegal base64 data"),
					})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "broken.pdf",
		},
		{
			name:  "Fail - Unexpected dispatcher error",
			input: sendReq,
			setupMock: func() {
				mock.Dispatcher.
					EXPECT().
					Dispatch(gomock.Any(), gomock.Any()).
					Return(mail.Outcome{}, fmt.Errorf("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Fail - Missing recipients",
			input:        dto.EmailSendReq{Subject: "S", Body: "B"},
			setupMock:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Fail - Malformed recipient address",
			input: dto.EmailSendReq{
				Subject: "S",
				Body:    "B",
				Emails:  []string{"not-an-email"},
			},
			setupMock:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Fail - Invalid placeholder key",
			input: dto.EmailSendReq{
				Subject: "S",
				Body:    "B",
				Emails:  []string{"a@example.com"},
				Custom:  map[string][]string{"bad key!": {"value"}},
			},
			setupMock:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			w := postJSON(e, sendEmailUrl, tt.input)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedError != "" {
				resp := make(map[string]string)
				json.Unmarshal(w.Body.Bytes(), &resp)
				assert.Contains(t, resp["error"], tt.expectedError)
			}

			if tt.expectedSuccess != nil {
				var resp dto.EmailSendResp
				json.Unmarshal(w.Body.Bytes(), &resp)
				assert.Equal(t, *tt.expectedSuccess, resp.Success)
			}
		})
	}
}

func testGetEmailSummaries(t *testing.T, e *gin.Engine, mock di.MockedBackend) {

	summaries := []dto.EmailSummary{{
		Id:          "summary-id",
		Subject:     "Subject",
		Recipients:  []string{"a@example.com"},
		BodyPreview: "Preview",
		Success:     true,
		SentCount:   1,
	}}

	tests := []struct {
		name         string
		url          string
		setupMock    func()
		expectedCode int
	}{
		{
			name: "Success - Get summaries",
			url:  emailSummariesUrl,
			setupMock: func() {
				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					GetEmailSummaries(gomock.Any(), gomock.Any()).
					Return(summaries, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Success - Custom page size",
			url:  emailSummariesUrl + "?limit=1&skip=1",
			setupMock: func() {
				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					GetEmailSummaries(gomock.Any(), gomock.Any()).
					Return(summaries, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Fail - Limit below the minimum",
			url:          emailSummariesUrl + "?limit=0",
			setupMock:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Fail - Limit above the maximum",
			url:          emailSummariesUrl + "?limit=101",
			setupMock:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Fail - Negative skip",
			url:          emailSummariesUrl + "?skip=-1",
			setupMock:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Fail - Registry error",
			url:  emailSummariesUrl,
			setupMock: func() {
				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					GetEmailSummaries(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			w := getUrl(e, tt.url)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var resp []dto.EmailSummary
				json.Unmarshal(w.Body.Bytes(), &resp)
				assert.Equal(t, summaries, resp)
			}
		})
	}
}

func testGetEmailStats(t *testing.T, e *gin.Engine, mock di.MockedBackend) {

	tests := []struct {
		name          string
		setupMock     func()
		expectedCode  int
		expectedStats *dto.EmailStats
	}{
		{
			name: "Success - Rate computed from counts",
			setupMock: func() {
				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					CountEmailSummaries(gomock.Any(), gomock.Nil()).
					Return(10, nil)

				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					CountEmailSummaries(gomock.Any(), gomock.Not(gomock.Nil())).
					Return(7, nil)

				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					CountEmailSummariesSince(gomock.Any(), gomock.Any()).
					Return(3, nil)
			},
			expectedCode: http.StatusOK,
			expectedStats: &dto.EmailStats{
				TotalEmails:      10,
				SuccessfulEmails: 7,
				FailedEmails:     3,
				RecentEmails24h:  3,
				SuccessRate:      70,
			},
		},
		{
			name: "Success - No summaries yields a zero rate",
			setupMock: func() {
				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					CountEmailSummaries(gomock.Any(), gomock.Nil()).
					Return(0, nil)

				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					CountEmailSummaries(gomock.Any(), gomock.Not(gomock.Nil())).
					Return(0, nil)

				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					CountEmailSummariesSince(gomock.Any(), gomock.Any()).
					Return(0, nil)
			},
			expectedCode: http.StatusOK,
			expectedStats: &dto.EmailStats{
				TotalEmails:      0,
				SuccessfulEmails: 0,
				FailedEmails:     0,
				RecentEmails24h:  0,
				SuccessRate:      0,
			},
		},
		{
			name: "Fail - Registry error",
			setupMock: func() {
				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					CountEmailSummaries(gomock.Any(), gomock.Nil()).
					Return(0, fmt.Errorf("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			w := getUrl(e, emailStatsUrl)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedStats != nil {
				var resp dto.EmailStats
				json.Unmarshal(w.Body.Bytes(), &resp)
				assert.Equal(t, *tt.expectedStats, resp)
			}
		})
	}
}

func testSaveEmailTemplate(t *testing.T, e *gin.Engine, mock di.MockedBackend) {

	templateReq := testutils.MakeEmailTemplateReq()

	template := dto.EmailTemplate{
		Id:      "template-id",
		Subject: templateReq.Subject,
		Body:    templateReq.Body,
		Custom:  templateReq.Custom,
	}

	tests := []struct {
		name         string
		input        dto.EmailTemplateReq
		setupMock    func()
		expectedCode int
	}{
		{
			name:  "Success - Save template",
			input: templateReq,
			setupMock: func() {
				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					SaveEmailTemplate(gomock.Any(), templateReq).
					Return(template, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Fail - Missing subject",
			input:        dto.EmailTemplateReq{Body: "B"},
			setupMock:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Fail - Registry error",
			input: templateReq,
			setupMock: func() {
				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					SaveEmailTemplate(gomock.Any(), templateReq).
					Return(dto.EmailTemplate{}, fmt.Errorf("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			w := postJSON(e, emailTemplatesUrl, tt.input)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp dto.EmailTemplate
				json.Unmarshal(w.Body.Bytes(), &resp)
				assert.Equal(t, template, resp)
			}
		})
	}
}

func testGetEmailTemplates(t *testing.T, e *gin.Engine, mock di.MockedBackend) {

	templates := []dto.EmailTemplate{{
		Id:      "template-id",
		Subject: "Subject",
		Body:    "Body",
	}}

	tests := []struct {
		name         string
		setupMock    func()
		expectedCode int
	}{
		{
			name: "Success - Get templates",
			setupMock: func() {
				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					GetEmailTemplates(gomock.Any()).
					Return(templates, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Fail - Registry error",
			setupMock: func() {
				mock.Registry.
					MockEmailRegistry.
					EXPECT().
					GetEmailTemplates(gomock.Any()).
					Return(nil, fmt.Errorf("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			w := getUrl(e, emailTemplatesUrl)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
