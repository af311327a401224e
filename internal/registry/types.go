package registry

const (
	ApplicantType     = "applicant"
	EmailSummaryType  = "email summary"
	EmailTemplateType = "email template"
)
