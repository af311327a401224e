package dto

type EmailAttachment struct {
	Filename      string `json:"filename" binding:"required,min=1,max=255"`
	MimeType      string `json:"mime_type" binding:"omitempty,max=120"`
	ContentBase64 string `json:"content_base64" binding:"required"`
}

type EmailSendReq struct {
	Subject     string              `json:"subject" binding:"required,max=500"`
	Emails      []string            `json:"emails" binding:"required,min=1,max=500,dive,email"`
	Body        string              `json:"body" binding:"required"`
	Bcc         []string            `json:"bcc" binding:"omitempty,dive,email"`
	Custom      map[string][]string `json:"custom" binding:"omitempty,placeholderkeys"`
	Attachments []EmailAttachment   `json:"attachments" binding:"omitempty,dive"`
}

type EmailSendResp struct {
	Success         bool     `json:"success"`
	SentCount       int      `json:"sent_count"`
	FailedCount     int      `json:"failed_count"`
	TotalRecipients int      `json:"total_recipients"`
	Errors          []string `json:"errors"`
	Message         string   `json:"message"`
}

type EmailSummary struct {
	Id            string   `json:"id"`
	Subject       string   `json:"subject"`
	Recipients    []string `json:"recipients"`
	BccRecipients []string `json:"bcc_recipients"`
	BodyPreview   string   `json:"body_preview"`
	SentAt        string   `json:"sent_at"`
	Success       bool     `json:"success"`
	SentCount     int      `json:"sent_count"`
	FailedCount   int      `json:"failed_count"`
	Errors        []string `json:"errors"`
}

type EmailStats struct {
	TotalEmails      int     `json:"total_emails"`
	SuccessfulEmails int     `json:"successful_emails"`
	FailedEmails     int     `json:"failed_emails"`
	RecentEmails24h  int     `json:"recent_emails_24h"`
	SuccessRate      float64 `json:"success_rate"`
}

type EmailTemplateReq struct {
	Subject string   `json:"subject" binding:"required,max=500"`
	Body    string   `json:"body" binding:"required"`
	Custom  []string `json:"custom" binding:"omitempty,unique,dive,min=1,max=120"`
}

type EmailTemplate struct {
	Id        string   `json:"id"`
	Subject   string   `json:"subject"`
	Body      string   `json:"body"`
	Custom    []string `json:"custom"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}
