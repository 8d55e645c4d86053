package models

import "time"

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// ApplicationStatuses lists every status. Any status may move to any other.
var ApplicationStatuses = []ApplicationStatus{StatusPending, StatusReviewed, StatusAccepted, StatusRejected}

func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Application struct {
	Seq int64 `gorm:"column:seq;autoIncrement;not null;index" json:"-"`

	ID          string            `gorm:"column:id;type:text;primaryKey" json:"id"`
	UserID      string            `gorm:"column:user_id;type:text;uniqueIndex:uniq_application_user_job" json:"user_id"`
	JobID       string            `gorm:"column:job_id;type:text;uniqueIndex:uniq_application_user_job;index" json:"job_id"`
	ResumeURL   string            `gorm:"column:resume_url;type:text" json:"resume_url,omitempty"`
	CoverLetter string            `gorm:"column:cover_letter;type:text" json:"cover_letter,omitempty"`
	Status      ApplicationStatus `gorm:"column:status;type:text" json:"status"`
	AppliedAt   time.Time         `gorm:"column:applied_at;type:timestamptz" json:"applied_at"`

	// Job is resolved on read for the applicant's own listing.
	Job *Job `gorm:"-" json:"job,omitempty"`
}

func (Application) TableName() string { return "applications" }

type ApplicationInput struct {
	ResumeURL   string `json:"resume_url"`
	CoverLetter string `json:"cover_letter"`
}

// EmployerAnalytics aggregates an employer's jobs and the applications
// against them. ApplicationsByStatus always carries all four statuses.
type EmployerAnalytics struct {
	TotalJobs            int                       `json:"total_jobs"`
	TotalApplications    int                       `json:"total_applications"`
	ApplicationsByStatus map[ApplicationStatus]int `json:"applications_by_status"`
}

func NewEmployerAnalytics() *EmployerAnalytics {
	by := make(map[ApplicationStatus]int, len(ApplicationStatuses))
	for _, s := range ApplicationStatuses {
		by[s] = 0
	}
	return &EmployerAnalytics{ApplicationsByStatus: by}
}
