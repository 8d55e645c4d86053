// Package seed loads the demo dataset: one employer, one job seeker, five
// jobs and two applications.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func Users() []models.User {
	return []models.User{
		{ID: "employer-1", Email: "employer@example.com", Name: "Tech Solutions Inc.", Role: models.RoleEmployer, Avatar: models.DefaultAvatar, CreatedAt: mustTime("2025-01-01T00:00:00Z")},
		{ID: "job-seeker-1", Email: "jobseeker@example.com", Name: "Jane Smith", Role: models.RoleJobSeeker, Avatar: models.DefaultAvatar, CreatedAt: mustTime("2025-01-01T00:00:01Z")},
	}
}

// Jobs returns the demo jobs in listing order (first element listed first).
func Jobs() []models.Job {
	return []models.Job{
		{
			ID:          "job-1",
			Title:       "Senior Frontend Developer",
			Company:     "Tech Solutions Inc.",
			CompanyLogo: models.DefaultAvatar,
			Description: "We are looking for a skilled frontend developer with expertise in React to join our team. The ideal candidate should have a strong understanding of modern JavaScript and experience with responsive design.",
			Requirements: []string{
				"5+ years of experience with JavaScript",
				"3+ years of experience with React",
				"Proficient in HTML, CSS, and responsive design",
				"Experience with state management (Redux, Context API)",
				"Knowledge of modern build tools (Webpack, Vite)",
			},
			Location:   "San Francisco, CA (Remote)",
			Salary:     "$120,000 - $150,000",
			JobType:    models.JobTypeFullTime,
			EmployerID: "employer-1",
			PostedAt:   mustTime("2025-03-15T10:00:00Z"),
			Featured:   true,
		},
		{
			ID:          "job-2",
			Title:       "Backend Engineer",
			Company:     "Data Systems",
			CompanyLogo: models.DefaultAvatar,
			Description: "Join our backend team to develop scalable APIs and microservices. You'll work with cutting-edge technologies and help design database schemas for optimal performance.",
			Requirements: []string{
				"3+ years experience with Node.js",
				"Familiar with Express.js or similar frameworks",
				"Database design experience (SQL and NoSQL)",
				"Understanding of RESTful API design principles",
				"Experience with cloud services (AWS, GCP, or Azure)",
			},
			Location:   "New York, NY",
			Salary:     "$110,000 - $140,000",
			JobType:    models.JobTypeFullTime,
			EmployerID: "employer-1",
			PostedAt:   mustTime("2025-03-20T15:30:00Z"),
			Featured:   true,
		},
		{
			ID:          "job-3",
			Title:       "UX/UI Designer",
			Company:     "Creative Digital",
			CompanyLogo: models.DefaultAvatar,
			Description: "We're seeking a talented UX/UI designer to create beautiful, intuitive interfaces for our web and mobile applications. The ideal candidate has a portfolio showing strong visual design skills and user-centered design thinking.",
			Requirements: []string{
				"3+ years of UX/UI design experience",
				"Proficient in Figma or similar design tools",
				"Experience with design systems",
				"Understanding of accessibility standards",
				"Ability to create wireframes, prototypes, and high-fidelity designs",
			},
			Location:   "Remote",
			Salary:     "$90,000 - $120,000",
			JobType:    models.JobTypeFullTime,
			EmployerID: "employer-1",
			PostedAt:   mustTime("2025-03-25T09:45:00Z"),
		},
		{
			ID:          "job-4",
			Title:       "DevOps Engineer",
			Company:     "Cloud Services",
			CompanyLogo: models.DefaultAvatar,
			Description: "Looking for a DevOps engineer to help automate our infrastructure and deployment processes. You'll work on CI/CD pipelines, containerization, and cloud infrastructure.",
			Requirements: []string{
				"3+ years of DevOps experience",
				"Experience with Docker and Kubernetes",
				"Knowledge of CI/CD tools (Jenkins, GitHub Actions)",
				"Familiar with infrastructure as code (Terraform, CloudFormation)",
				"Experience with one or more cloud providers",
			},
			Location:   "Austin, TX (Hybrid)",
			Salary:     "$100,000 - $135,000",
			JobType:    models.JobTypeFullTime,
			EmployerID: "employer-1",
			PostedAt:   mustTime("2025-04-01T14:15:00Z"),
		},
		{
			ID:          "job-5",
			Title:       "Part-time Web Developer",
			Company:     "Startup Ventures",
			CompanyLogo: models.DefaultAvatar,
			Description: "We need a skilled web developer to work on our company website and internal tools on a part-time basis. The ideal candidate should be proficient in modern web technologies.",
			Requirements: []string{
				"2+ years of web development experience",
				"HTML, CSS, JavaScript proficiency",
				"Experience with at least one modern framework (React, Vue, etc.)",
				"Basic understanding of backend concepts",
				"Ability to work independently",
			},
			Location:   "Remote",
			Salary:     "$40-60 per hour",
			JobType:    models.JobTypePartTime,
			EmployerID: "employer-1",
			PostedAt:   mustTime("2025-04-02T11:30:00Z"),
		},
	}
}

func Applications() []models.Application {
	return []models.Application{
		{
			ID:          "app-1",
			UserID:      "job-seeker-1",
			JobID:       "job-1",
			ResumeURL:   models.DefaultAvatar,
			CoverLetter: "I am excited to apply for this position...",
			Status:      models.StatusPending,
			AppliedAt:   mustTime("2025-04-03T09:00:00Z"),
		},
		{
			ID:          "app-2",
			UserID:      "job-seeker-1",
			JobID:       "job-3",
			ResumeURL:   models.DefaultAvatar,
			CoverLetter: "I believe my skills align well with...",
			Status:      models.StatusReviewed,
			AppliedAt:   mustTime("2025-04-01T10:15:00Z"),
		},
	}
}

// Load writes the demo dataset into store. Jobs are created last-to-first
// because JobRepository.Create prepends.
func Load(ctx context.Context, store *repositories.Store) error {
	for _, u := range Users() {
		if err := store.Users.Create(ctx, &u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}

	jobs := Jobs()
	for i := len(jobs) - 1; i >= 0; i-- {
		if err := store.Jobs.Create(ctx, &jobs[i]); err != nil {
			return fmt.Errorf("seed job %s: %w", jobs[i].ID, err)
		}
	}

	for _, a := range Applications() {
		if err := store.Applications.Create(ctx, &a); err != nil {
			return fmt.Errorf("seed application %s: %w", a.ID, err)
		}
	}
	return nil
}
