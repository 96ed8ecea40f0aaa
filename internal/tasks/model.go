// Package tasks implements the task ledger: per-account ordered task
// sequences with a persisted, never-reused id counter.
package tasks

import (
	"bytes"
	"encoding/json"
)

// Status classifies a task's lifecycle state.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Task is a single tracked item. Tasks are owned by exactly one account and
// carry no metadata beyond description and status.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// TaskList is one account's entry in the task store: the creation-ordered
// task sequence plus the next id to assign. Ids are monotonically
// increasing and never reused, even after deletions.
type TaskList struct {
	NextID int    `json:"next_id"`
	Tasks  []Task `json:"tasks"`
}

// UnmarshalJSON accepts both the current object form and the legacy form in
// which a user's entry was a bare task array. For legacy entries the
// counter is derived from the highest id present.
func (l *TaskList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var ts []Task
		if err := json.Unmarshal(trimmed, &ts); err != nil {
			return err
		}
		l.Tasks = ts
		l.NextID = maxID(ts) + 1
		return nil
	}

	type alias TaskList
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*l = TaskList(a)
	return nil
}

func maxID(ts []Task) int {
	m := 0
	for _, t := range ts {
		if t.ID > m {
			m = t.ID
		}
	}
	return m
}
