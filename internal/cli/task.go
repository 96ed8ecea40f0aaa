package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/tasks"
)

func formatTask(t tasks.Task) string {
	return fmt.Sprintf("ID: %d, Description: %s, Status: %s", t.ID, t.Description, t.Status)
}

// AddTask prompts for a description and creates a Pending task.
func (a *App) AddTask(ctx context.Context) error {
	description, err := getSimpleText(a.reader, "Enter task description", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.engine.AddTask(ctx, description)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotLoggedIn):
			printlnFn("You must be logged in to add a task.")
		case errors.Is(err, common.ErrorValidation):
			printlnFn("Task description must not be empty.")
		default:
			printlnFn("Could not add task:", err)
		}
		return err
	}

	printlnFn("Task added:", formatTask(task))
	return nil
}

// ListTasks prints the session's tasks in creation order.
func (a *App) ListTasks(ctx context.Context) error {
	list, err := a.engine.ListTasks(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotLoggedIn) {
			printlnFn("You must be logged in to view tasks.")
		}
		return err
	}

	if len(list) == 0 {
		printlnFn("No tasks found.")
		return nil
	}

	for _, task := range list {
		printlnFn(formatTask(task))
	}
	return nil
}

// CompleteTask prompts for a task id and marks it Completed.
func (a *App) CompleteTask(ctx context.Context) error {
	id, err := getTaskID(a.reader, "Enter task ID to mark as completed", os.Stdout)
	if err != nil {
		printlnFn("Invalid task ID.")
		return err
	}

	task, err := a.engine.CompleteTask(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotLoggedIn):
			printlnFn("You must be logged in to mark a task as completed.")
		case errors.Is(err, common.ErrorNotFound):
			printlnFn(fmt.Sprintf("Task with ID %d not found.", id))
		default:
			printlnFn("Could not complete task:", err)
		}
		return err
	}

	printlnFn("Task completed:", formatTask(task))
	return nil
}

// DeleteTask prompts for a task id and removes it.
func (a *App) DeleteTask(ctx context.Context) error {
	id, err := getTaskID(a.reader, "Enter task ID to delete", os.Stdout)
	if err != nil {
		printlnFn("Invalid task ID.")
		return err
	}

	if err := a.engine.DeleteTask(ctx, id); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotLoggedIn):
			printlnFn("You must be logged in to delete a task.")
		case errors.Is(err, common.ErrorNotFound):
			printlnFn(fmt.Sprintf("Task with ID %d not found.", id))
		default:
			printlnFn("Could not delete task:", err)
		}
		return err
	}

	printlnFn(fmt.Sprintf("Task %d deleted.", id))
	return nil
}
