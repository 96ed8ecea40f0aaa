package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// getSimpleText, getPassword and getTaskID are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getTaskID = GetTaskID

// Register prompts for a username and password and attempts to create a new
// account. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.engine.Register(ctx, username, password); err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			printlnFn("Username already exists. Please choose a different username.")
		case errors.Is(err, common.ErrorValidation):
			printlnFn("Username must not be empty.")
		default:
			printlnFn("Registration failed:", err)
		}
		return err
	}

	printlnFn("Registration successful!")
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// REPL prompt switches to the username.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.engine.Login(ctx, username, password); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			printlnFn("Username does not exist. Please register first.")
		case errors.Is(err, common.ErrorUnauthorized):
			printlnFn("Incorrect password. Please try again.")
		default:
			printlnFn("Login failed:", err)
		}
		return err
	}

	printlnFn("Login successful!")
	return nil
}

// Logout clears the active session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.engine.Logout(ctx); err != nil {
		if errors.Is(err, common.ErrorNotLoggedIn) {
			printlnFn("You are not logged in.")
		}
		return err
	}

	printlnFn("Logged out.")
	return nil
}
