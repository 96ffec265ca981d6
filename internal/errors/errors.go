package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/julianstephens/wellbeing/internal/logger"
	"github.com/julianstephens/wellbeing/internal/storage"
	"github.com/julianstephens/wellbeing/internal/viewstate"
)

const (
	// ExitFatal is used for store and unexpected failures.
	ExitFatal = 1
	// ExitRecoverable is used when the user asked for something that does
	// not exist or is not allowed.
	ExitRecoverable = 2
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// IsRecoverable reports whether err is a user-level problem that should be
// shown as a notice instead of aborting.
func IsRecoverable(err error) bool {
	return stderrors.Is(err, storage.ErrNotFound) ||
		stderrors.Is(err, storage.ErrConstraintViolation) ||
		stderrors.Is(err, viewstate.ErrNoPromptSelected)
}

// Notice renders a recoverable error for display.
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, storage.ErrNotFound):
		return fmt.Sprintf("Not found: %v", err)
	case stderrors.Is(err, storage.ErrConstraintViolation):
		return fmt.Sprintf("Not allowed: %v", err)
	case stderrors.Is(err, viewstate.ErrNoPromptSelected):
		return "Select a prompt first"
	default:
		return Format(err)
	}
}

// Report prints err to w and returns the exit code it warrants.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if IsRecoverable(err) {
		logger.Warn("Command rejected", "error", err)
		color.New(color.FgYellow).Fprintln(w, Notice(err))
		return ExitRecoverable
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(w, Format(err))
	return ExitFatal
}

// Fatal logs an error and exits the program with the exit code from Report.
func Fatal(err error) {
	if err != nil {
		os.Exit(Report(os.Stderr, err))
	}
}
