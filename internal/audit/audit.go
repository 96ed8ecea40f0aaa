// Package audit appends an activity trail for account and task operations:
// one JSON event per line, written after the operation's own persistence
// succeeded. The trail is informational; a failed append never fails the
// operation that produced it.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	ActionRegister     = "register"
	ActionLogin        = "login"
	ActionLogout       = "logout"
	ActionAddTask      = "add_task"
	ActionCompleteTask = "complete_task"
	ActionDeleteTask   = "delete_task"
)

// Event is a single trail entry. TaskID is zero for account actions.
type Event struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Username string    `json:"username"`
	Action   string    `json:"action"`
	TaskID   int       `json:"task_id,omitempty"`
}

// now is a test seam for the event clock.
var now = time.Now

type Trail struct {
	path string
}

func NewTrail(path string) *Trail {
	return &Trail{path: path}
}

// Record appends an event for the given action to the trail file, creating
// it on first use.
func (t *Trail) Record(ctx context.Context, username, action string, taskID int) error {
	e := Event{
		ID:       uuid.NewString(),
		Time:     now().UTC(),
		Username: username,
		Action:   action,
		TaskID:   taskID,
	}

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open audit trail %s: %w", t.path, err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append audit trail %s: %w", t.path, err)
	}

	return nil
}
