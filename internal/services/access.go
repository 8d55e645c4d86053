package services

import (
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

// The actor argument of every service call is the session's user, or nil
// when the caller has no session.

func requireEmployer(op string, actor *models.User, msg string) error {
	if !actor.IsEmployer() {
		return utils.E(utils.CodeUnauthorized, op, msg, nil)
	}
	return nil
}

func requireJobSeeker(op string, actor *models.User, msg string) error {
	if !actor.IsJobSeeker() {
		return utils.E(utils.CodeUnauthorized, op, msg, nil)
	}
	return nil
}

func requireOwner(op string, actor *models.User, job *models.Job, msg string) error {
	if job == nil || actor == nil || job.EmployerID != actor.ID {
		return utils.E(utils.CodeForbidden, op, msg, nil)
	}
	return nil
}
