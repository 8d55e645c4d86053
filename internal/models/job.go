package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote:
		return true
	}
	return false
}

const NoRequirements = "No specific requirements"

type Job struct {
	// Seq orders the collection newest-first; it is never exposed.
	Seq int64 `gorm:"column:seq;autoIncrement;not null;index" json:"-"`

	ID           string         `gorm:"column:id;type:text;primaryKey" json:"id"`
	Title        string         `gorm:"column:title;type:text" json:"title"`
	Company      string         `gorm:"column:company;type:text" json:"company"`
	CompanyLogo  string         `gorm:"column:company_logo;type:text" json:"company_logo,omitempty"`
	Description  string         `gorm:"column:description;type:text" json:"description"`
	Requirements pq.StringArray `gorm:"column:requirements;type:text[]" json:"requirements"`
	Location     string         `gorm:"column:location;type:text" json:"location"`
	Salary       string         `gorm:"column:salary;type:text" json:"salary"`
	JobType      JobType        `gorm:"column:job_type;type:text;index" json:"job_type"`
	EmployerID   string         `gorm:"column:employer_id;type:text;index" json:"employer_id"`
	PostedAt     time.Time      `gorm:"column:posted_at;type:timestamptz" json:"posted_at"`
	Featured     bool           `gorm:"column:featured" json:"featured,omitempty"`
}

func (Job) TableName() string { return "jobs" }

// JobInput carries the caller-supplied fields of a new job.
type JobInput struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	CompanyLogo  string   `json:"company_logo"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	JobType      JobType  `json:"job_type"`
	Featured     bool     `json:"featured"`
}

// JobPatch is a shallow partial update. Nil fields are left untouched.
// ID, EmployerID and PostedAt are not patchable.
type JobPatch struct {
	Title        *string   `json:"title,omitempty"`
	Company      *string   `json:"company,omitempty"`
	CompanyLogo  *string   `json:"company_logo,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Requirements *[]string `json:"requirements,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Salary       *string   `json:"salary,omitempty"`
	JobType      *JobType  `json:"job_type,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
}

func (p JobPatch) ApplyTo(j *Job) {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Company != nil {
		j.Company = *p.Company
	}
	if p.CompanyLogo != nil {
		j.CompanyLogo = *p.CompanyLogo
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Requirements != nil {
		j.Requirements = NormalizeRequirements(*p.Requirements)
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.Salary != nil {
		j.Salary = *p.Salary
	}
	if p.JobType != nil {
		j.JobType = *p.JobType
	}
	if p.Featured != nil {
		j.Featured = *p.Featured
	}
}

// NormalizeRequirements trims entries, drops blank ones and falls back to
// NoRequirements when nothing is left.
func NormalizeRequirements(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	for _, r := range in {
		r = strings.TrimSpace(r)
		if r != "" {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		out = append(out, NoRequirements)
	}
	return out
}

// JobFilter narrows a job listing. Every non-empty field must match; empty
// fields impose no constraint.
type JobFilter struct {
	// Search matches title, company or description, case-insensitively.
	Search string `form:"search"`
	// Location is a case-insensitive substring of the job location.
	Location string  `form:"location"`
	JobType  JobType `form:"job_type"`
	Featured bool    `form:"featured"`
	// Limit truncates the result when > 0.
	Limit int `form:"limit" binding:"min=0"`
}

func (f JobFilter) Matches(j *Job) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.Company), q) &&
			!strings.Contains(strings.ToLower(j.Description), q) {
			return false
		}
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.JobType != "" && j.JobType != f.JobType {
		return false
	}
	if f.Featured && !j.Featured {
		return false
	}
	return true
}

// Apply returns the matching jobs in their existing order.
func (f JobFilter) Apply(jobs []Job) []Job {
	out := make([]Job, 0, len(jobs))
	for i := range jobs {
		if !f.Matches(&jobs[i]) {
			continue
		}
		out = append(out, jobs[i])
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out
}
