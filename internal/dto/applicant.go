package dto

type ApplicantReq struct {
	Name    string   `json:"name" binding:"required,max=120"`
	Email   string   `json:"email" binding:"required,email"`
	Phone   string   `json:"phone" binding:"required,max=20"`
	Year    int      `json:"year" binding:"required,min=1,max=5"`
	Branch  string   `json:"branch" binding:"required,max=120"`
	Domains []string `json:"domains" binding:"omitempty,unique,dive,min=1,max=120"`
}

type Applicant struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Year         int      `json:"year"`
	Branch       string   `json:"branch"`
	Domains      []string `json:"domains"`
	IsPresent    bool     `json:"isPresent"`
	AssignedSlot *string  `json:"assignedSlot"`
	CreatedAt    string   `json:"created_at"`
}

type ApplicantBatchReq struct {
	Applicants []ApplicantReq `json:"applicants" binding:"required,min=1,max=500,unique=Email,dive"`
}

type ApplicantBatchResp struct {
	Ids []string `json:"ids"`
}

type ApplicantUriParams struct {
	ApplicantId string `uri:"id" binding:"required,uuid"`
}

type AttendanceUpdate struct {
	IsPresent *bool `json:"isPresent" binding:"required"`
}

type SlotAssignment struct {
	Emails       []string `json:"emails" binding:"required,min=1,dive,email"`
	AssignedSlot string   `json:"assignedSlot" binding:"required,max=120"`
}

type SlotAssignmentResp struct {
	UpdatedCount int `json:"updated_count"`
}
