package files_manager

import (
	"context"
	"errors"
	"os"

	"img2pdf/contracts"
)

type InputFlags = contracts.InputFlags

var ErrNotWritable = errors.New("file is not writable")

type OverwriteDecision int

const (
	// Proceed writes the document, replacing any existing file.
	Proceed OverwriteDecision = iota
	// Declined quits without writing and without an error.
	Declined
	// UserDeclined quits because the user answered no to the prompt.
	UserDeclined
	// Refused quits because no flag allows overwriting.
	Refused
)

// ConfirmFunc asks whether an existing output file may be overwritten.
type ConfirmFunc func(ctx context.Context) (bool, error)

type overwriteRule struct {
	applies func(InputFlags) bool
	decide  func(ctx context.Context, confirm ConfirmFunc) (OverwriteDecision, error)
}

func fixed(d OverwriteDecision) func(context.Context, ConfirmFunc) (OverwriteDecision, error) {
	return func(context.Context, ConfirmFunc) (OverwriteDecision, error) { return d, nil }
}

// overwritePolicy is evaluated top to bottom; the first rule that applies
// decides. Decline wins over force, force over interactive.
var overwritePolicy = []overwriteRule{
	{
		applies: func(f InputFlags) bool { return f.Decline },
		decide:  fixed(Declined),
	},
	{
		applies: func(f InputFlags) bool { return f.Force },
		decide:  fixed(Proceed),
	},
	{
		applies: func(f InputFlags) bool { return f.Interactive },
		decide: func(ctx context.Context, confirm ConfirmFunc) (OverwriteDecision, error) {
			ok, err := confirm(ctx)
			if err != nil {
				return UserDeclined, err
			}
			if !ok {
				return UserDeclined, nil
			}
			return Proceed, nil
		},
	},
	{
		applies: func(InputFlags) bool { return true },
		decide:  fixed(Refused),
	},
}

// ApplyOverwritePolicy decides what to do with an existing output file. It
// returns ErrNotWritable before consulting any flag when the file cannot be
// opened for writing.
func ApplyOverwritePolicy(ctx context.Context, path string, flags InputFlags, confirm ConfirmFunc) (OverwriteDecision, error) {
	if !writable(path) {
		return Refused, ErrNotWritable
	}
	for _, rule := range overwritePolicy {
		if rule.applies(flags) {
			return rule.decide(ctx, confirm)
		}
	}
	return Refused, nil
}

// writable opens path for writing without truncating it, which leaves both
// contents and modification time untouched.
func writable(path string) bool {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
