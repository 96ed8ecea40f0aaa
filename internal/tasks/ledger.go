package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/storage/jsonstore"
)

// Ledger holds every account's task list in memory and rewrites the backing
// store in full on every mutation.
type Ledger struct {
	store *jsonstore.Store
	lists map[string]*TaskList
}

func NewLedger(store *jsonstore.Store) *Ledger {
	return &Ledger{store: store, lists: make(map[string]*TaskList)}
}

// Load reads the task store into memory. An absent store file means an
// empty ledger. Entries that fail shape validation reject the whole store
// as malformed; continuing with partial task state would let memory and
// disk diverge.
func (l *Ledger) Load(ctx context.Context) error {
	lists := make(map[string]*TaskList)
	if err := l.store.Load(ctx, &lists); err != nil {
		return err
	}

	for name, list := range lists {
		if err := validateList(name, list); err != nil {
			return err
		}
	}

	l.lists = lists
	return nil
}

// Add appends a Pending task for username using the account's persisted id
// counter and saves the store. Empty or whitespace-only descriptions are
// rejected with common.ErrorValidation.
func (l *Ledger) Add(ctx context.Context, username, description string) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, fmt.Errorf("%w: empty task description", common.ErrorValidation)
	}

	list, existed := l.lists[username]
	if !existed {
		list = &TaskList{NextID: 1}
		l.lists[username] = list
	}

	task := Task{ID: list.NextID, Description: description, Status: StatusPending}
	list.NextID++
	list.Tasks = append(list.Tasks, task)

	if err := l.store.Save(ctx, l.lists); err != nil {
		list.NextID--
		list.Tasks = list.Tasks[:len(list.Tasks)-1]
		if !existed {
			delete(l.lists, username)
		}
		return Task{}, fmt.Errorf("persist tasks for %q: %w", username, err)
	}

	return task, nil
}

// List returns a copy of username's tasks in creation order. An account
// with no tasks yields an empty slice.
func (l *Ledger) List(ctx context.Context, username string) []Task {
	list, ok := l.lists[username]
	if !ok {
		return []Task{}
	}

	out := make([]Task, len(list.Tasks))
	copy(out, list.Tasks)
	return out
}

// Complete marks the task with the given id as Completed and saves the
// store. Returns common.ErrorNotFound when no task matches.
func (l *Ledger) Complete(ctx context.Context, username string, id int) (Task, error) {
	list, ok := l.lists[username]
	if !ok {
		return Task{}, common.ErrorNotFound
	}

	for i := range list.Tasks {
		if list.Tasks[i].ID != id {
			continue
		}

		prev := list.Tasks[i].Status
		list.Tasks[i].Status = StatusCompleted

		if err := l.store.Save(ctx, l.lists); err != nil {
			list.Tasks[i].Status = prev
			return Task{}, fmt.Errorf("persist tasks for %q: %w", username, err)
		}

		return list.Tasks[i], nil
	}

	return Task{}, common.ErrorNotFound
}

// Delete removes the task with the given id and saves the store. Returns
// common.ErrorNotFound (and leaves the sequence untouched) when no task
// matches. The id counter is not decremented, so deleted ids are never
// handed out again.
func (l *Ledger) Delete(ctx context.Context, username string, id int) error {
	list, ok := l.lists[username]
	if !ok {
		return common.ErrorNotFound
	}

	for i := range list.Tasks {
		if list.Tasks[i].ID != id {
			continue
		}

		prev := make([]Task, len(list.Tasks))
		copy(prev, list.Tasks)
		list.Tasks = append(list.Tasks[:i], list.Tasks[i+1:]...)

		if err := l.store.Save(ctx, l.lists); err != nil {
			list.Tasks = prev
			return fmt.Errorf("persist tasks for %q: %w", username, err)
		}

		return nil
	}

	return common.ErrorNotFound
}

func validateList(name string, list *TaskList) error {
	if name == "" || list == nil {
		return fmt.Errorf("%w: empty task store entry", jsonstore.ErrMalformed)
	}
	if list.NextID < 1 {
		return fmt.Errorf("%w: tasks for %q have no valid id counter", jsonstore.ErrMalformed, name)
	}

	for _, t := range list.Tasks {
		if t.ID < 1 || t.ID >= list.NextID {
			return fmt.Errorf("%w: task id %d for %q conflicts with counter %d", jsonstore.ErrMalformed, t.ID, name, list.NextID)
		}
		if t.Description == "" {
			return fmt.Errorf("%w: task %d for %q has an empty description", jsonstore.ErrMalformed, t.ID, name)
		}
		if t.Status != StatusPending && t.Status != StatusCompleted {
			return fmt.Errorf("%w: task %d for %q has unknown status %q", jsonstore.ErrMalformed, t.ID, name, t.Status)
		}
	}

	return nil
}
