// Package engine wires the account registry, session state, and task ledger
// into the single API the front-end calls. Register, Login, and Logout are
// ungated; every task operation requires an active session and runs under
// the session's username.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/accounts"
	"github.com/dmitrijs2005/taskkeeper/internal/audit"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/session"
	"github.com/dmitrijs2005/taskkeeper/internal/tasks"
)

type Engine struct {
	registry *accounts.Registry
	ledger   *tasks.Ledger
	session  *session.Session
	trail    *audit.Trail // nil disables the activity trail
	log      logging.Logger
}

func New(registry *accounts.Registry, ledger *tasks.Ledger, trail *audit.Trail, log logging.Logger) *Engine {
	return &Engine{
		registry: registry,
		ledger:   ledger,
		session:  session.New(),
		trail:    trail,
		log:      log,
	}
}

// Register creates a new account. It does not log the account in.
func (e *Engine) Register(ctx context.Context, username string, password []byte) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: empty username", common.ErrorValidation)
	}

	if err := e.registry.Register(ctx, username, password); err != nil {
		return err
	}

	e.log.Info(ctx, "account registered", "user", username)
	e.record(ctx, username, audit.ActionRegister, 0)
	return nil
}

// Login verifies the credentials and, on success, makes username the active
// session. A failed login leaves any existing session untouched.
func (e *Engine) Login(ctx context.Context, username string, password []byte) error {
	if err := e.registry.Verify(ctx, username, password); err != nil {
		e.log.Warn(ctx, "login failed", "user", username, "error", err)
		return err
	}

	e.session.Login(username)
	e.log.Info(ctx, "login successful", "user", username)
	e.record(ctx, username, audit.ActionLogin, 0)
	return nil
}

// Logout clears the active session. Returns common.ErrorNotLoggedIn when
// there is none.
func (e *Engine) Logout(ctx context.Context) error {
	username, _ := e.session.Current()
	if err := e.session.Logout(); err != nil {
		return err
	}

	e.log.Info(ctx, "logged out", "user", username)
	e.record(ctx, username, audit.ActionLogout, 0)
	return nil
}

// CurrentUser returns the active session's username, if any.
func (e *Engine) CurrentUser() (string, bool) {
	return e.session.Current()
}

// AddTask creates a Pending task for the active session.
func (e *Engine) AddTask(ctx context.Context, description string) (tasks.Task, error) {
	username, err := e.requireUser()
	if err != nil {
		return tasks.Task{}, err
	}

	task, err := e.ledger.Add(ctx, username, description)
	if err != nil {
		return tasks.Task{}, err
	}

	e.log.Debug(ctx, "task added", "user", username, "id", task.ID)
	e.record(ctx, username, audit.ActionAddTask, task.ID)
	return task, nil
}

// ListTasks returns the active session's tasks in creation order.
func (e *Engine) ListTasks(ctx context.Context) ([]tasks.Task, error) {
	username, err := e.requireUser()
	if err != nil {
		return nil, err
	}
	return e.ledger.List(ctx, username), nil
}

// CompleteTask marks the given task as Completed for the active session.
func (e *Engine) CompleteTask(ctx context.Context, id int) (tasks.Task, error) {
	username, err := e.requireUser()
	if err != nil {
		return tasks.Task{}, err
	}

	task, err := e.ledger.Complete(ctx, username, id)
	if err != nil {
		return tasks.Task{}, err
	}

	e.log.Debug(ctx, "task completed", "user", username, "id", id)
	e.record(ctx, username, audit.ActionCompleteTask, id)
	return task, nil
}

// DeleteTask removes the given task for the active session.
func (e *Engine) DeleteTask(ctx context.Context, id int) error {
	username, err := e.requireUser()
	if err != nil {
		return err
	}

	if err := e.ledger.Delete(ctx, username, id); err != nil {
		return err
	}

	e.log.Debug(ctx, "task deleted", "user", username, "id", id)
	e.record(ctx, username, audit.ActionDeleteTask, id)
	return nil
}

func (e *Engine) requireUser() (string, error) {
	username, ok := e.session.Current()
	if !ok {
		return "", common.ErrorNotLoggedIn
	}
	return username, nil
}

func (e *Engine) record(ctx context.Context, username, action string, taskID int) {
	if e.trail == nil {
		return
	}
	if err := e.trail.Record(ctx, username, action, taskID); err != nil {
		e.log.Warn(ctx, "audit append failed", "action", action, "error", err)
	}
}
