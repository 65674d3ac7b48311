package converter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"img2pdf/console"
	"img2pdf/contracts"
	"img2pdf/files_manager"
	"img2pdf/input_flags"
	"img2pdf/page_size"
)

// Failure is a terminal outcome of a run: a line for the user and the process
// exit code. Not every Failure is an error for the user; declining to
// overwrite ends with code 0.
type Failure struct {
	Code     int
	Severity console.Severity
	Category string
	Message  string
}

func (f *Failure) Error() string {
	if f.Category == "" {
		return "img2pdf: " + f.Message
	}
	return fmt.Sprintf("img2pdf: %s: %s", f.Category, f.Message)
}

func fail(code int, category, format string, args ...any) *Failure {
	return &Failure{
		Code:     code,
		Severity: console.Error,
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// classify turns any error of a run into a Failure. Cancellation maps to the
// interrupt exit code without a message; the caller prints the notice.
func classify(err error) *Failure {
	var (
		failure    *Failure
		unreadable *files_manager.UnreadableError
		invalid    *page_size.InvalidPageSizeError
	)
	switch {
	case errors.As(err, &failure):
		return failure
	case errors.Is(err, context.Canceled):
		return &Failure{Code: contracts.ExitInterrupted}
	case errors.Is(err, input_flags.ErrNoOutput):
		return fail(contracts.ExitUsage, "Error", "Please specify output file.")
	case errors.Is(err, input_flags.ErrTooManyOutputs):
		return fail(contracts.ExitUsage, "Error", "Please give only one parameter to specify output file.")
	case errors.As(err, &unreadable):
		return fail(contracts.ExitPermission, "Permission Denied",
			"The file '%s' is not readable. Check file permissions or pass -e parameter to not include it.", unreadable.Name)
	case errors.Is(err, files_manager.ErrNoImages):
		return fail(contracts.ExitNoImages, "Error", "There is no valid image file to work with.")
	case errors.As(err, &invalid):
		return fail(contracts.ExitUsage, "Invalid Argument", "%s", invalid.Error())
	case errors.Is(err, fs.ErrPermission):
		return fail(contracts.ExitPermission, "Permission Denied", "%v", err)
	default:
		return fail(contracts.ExitFailure, "Error", "An unexpected error occurred: %v", err)
	}
}
