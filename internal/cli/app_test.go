package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/config"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = t.TempDir()

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
	app, err := NewApp(cfg, logging.NewSlogLogger(slog.New(h)))
	require.NoError(t, err)
	return app
}

// stubInput replaces the interactive input seams with canned answers and
// captures everything the handlers print.
func stubInput(t *testing.T, texts []string, password string) *[]string {
	t.Helper()

	origText, origPw, origID, origPrintln := getSimpleText, getPassword, getTaskID, printlnFn
	t.Cleanup(func() {
		getSimpleText, getPassword, getTaskID, printlnFn = origText, origPw, origID, origPrintln
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		text := texts[i]
		i++
		return text, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		// Fresh slice per call: handlers wipe the password after use.
		return []byte(password), nil
	}

	var printed []string
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, len(args))
		for n, arg := range args {
			switch v := arg.(type) {
			case string:
				parts[n] = v
			case error:
				parts[n] = v.Error()
			default:
				parts[n] = ""
			}
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	return &printed
}

func stubTaskID(t *testing.T, id int) {
	t.Helper()
	getTaskID = func(_ *bufio.Reader, _ string, _ io.Writer) (int, error) {
		return id, nil
	}
}

func TestAppRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	printed := stubInput(t, []string{"alice", "alice"}, "pw1")

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Login(ctx))

	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "alice", app.status())
	assert.Contains(t, *printed, "Registration successful!")
	assert.Contains(t, *printed, "Login successful!")
}

func TestAppRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	printed := stubInput(t, []string{"alice", "alice"}, "pw1")

	require.NoError(t, app.Register(ctx))
	err := app.Register(ctx)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Contains(t, *printed, "Username already exists. Please choose a different username.")
}

func TestAppLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	stubInput(t, []string{"alice"}, "pw1")
	require.NoError(t, app.Register(ctx))

	printed := stubInput(t, []string{"alice"}, "wrong")
	assert.ErrorIs(t, app.Login(ctx), common.ErrorUnauthorized)
	assert.Contains(t, *printed, "Incorrect password. Please try again.")
	assert.False(t, app.isLoggedIn())
}

func TestAppTaskFlow(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	printed := stubInput(t, []string{"alice", "alice", "buy milk"}, "pw1")
	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Login(ctx))
	require.NoError(t, app.AddTask(ctx))

	stubTaskID(t, 1)
	require.NoError(t, app.CompleteTask(ctx))
	require.NoError(t, app.ListTasks(ctx))
	require.NoError(t, app.DeleteTask(ctx))

	out := strings.Join(*printed, "\n")
	assert.Contains(t, out, "Task added: ID: 1, Description: buy milk, Status: Pending")
	assert.Contains(t, out, "Task completed: ID: 1, Description: buy milk, Status: Completed")
	assert.Contains(t, out, "Task 1 deleted.")
}

func TestAppGatedWithoutLogin(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	printed := stubInput(t, []string{"buy milk"}, "")
	assert.ErrorIs(t, app.AddTask(ctx), common.ErrorNotLoggedIn)
	assert.ErrorIs(t, app.ListTasks(ctx), common.ErrorNotLoggedIn)
	assert.ErrorIs(t, app.Logout(ctx), common.ErrorNotLoggedIn)

	out := strings.Join(*printed, "\n")
	assert.Contains(t, out, "You must be logged in to add a task.")
	assert.Contains(t, out, "You are not logged in.")
}

func TestAppTaskNotFound(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	stubInput(t, []string{"alice", "alice"}, "pw1")
	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Login(ctx))

	printed := stubInput(t, nil, "")
	stubTaskID(t, 42)
	assert.ErrorIs(t, app.CompleteTask(ctx), common.ErrorNotFound)
	assert.ErrorIs(t, app.DeleteTask(ctx), common.ErrorNotFound)

	out := strings.Join(*printed, "\n")
	assert.Contains(t, out, "Task with ID 42 not found.")
}

func TestNewAppFailsOnMalformedStore(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = t.TempDir()

	require.NoError(t, os.WriteFile(cfg.DataDir+"/users.json", []byte(`{"alice":`), 0o600))

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
	_, err := NewApp(cfg, logging.NewSlogLogger(slog.New(h)))
	assert.Error(t, err)
}
