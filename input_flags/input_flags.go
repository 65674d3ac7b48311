package input_flags

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"img2pdf/contracts"
)

type InputFlags = contracts.InputFlags

var (
	ErrNoOutput       = errors.New("no output file given")
	ErrTooManyOutputs = errors.New("more than one output file given")
)

const Usage = `This program merges image files in a directory and creates a PDF file. Every image is put on a page of exactly its own size unless a fixed page size is given.

Usage:
    img2pdf [OPTIONS] [OUTPUT FILE]

Parameters:
    -h, --help             : Print this help document and exit.
    -d, --dir [DIRECTORY]  : Set directory to work on. Default is working directory.
    -q, --quiet            : Do not print process details.
    -r, --reverse          : Reverse image order.
    -f, --force            : Overwrite existing PDF file.
    -i, --interactive      : Prompt before overwrite.
    -D, --decline          : Do not let overwrite. Ignores --force and --interactive parameter.
                             This option does not return any error if file already exists.
    -e, --except           : Do not include images that have no read permission.
    -s, --selective        : Let selecting which image will be included.
    -p, --page-size [SIZE] : Fixed page size, stretch photos to page.
                             Options are: A4, A3, A5, Letter, Legal, WIDTHxHEIGHT (in pt).
                             WIDTH and HEIGHT must be positive integers.

Exit Codes:
      0 : Program done its job successfully.
      1 : An error occurred.
      2 : Parameter fault. Please check your command.
      3 : No valid image file in directory.
      4 : User declined overwrite.
      5 : File exists and overwrite not allowed.
    126 : File permission denied. Check file permissions.
    130 : Process terminated by user.`

// Parse reads the command line into the canonical options record. Options
// end at the first positional argument, so anything after the output name is
// another positional. Parser errors are returned verbatim; the positional
// argument count is checked only when help was not requested.
func Parse(args []string) (InputFlags, error) {
	var flags InputFlags

	fs := pflag.NewFlagSet("img2pdf", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	fs.SetInterspersed(false)

	fs.BoolVarP(&flags.Help, "help", "h", false, "print this help document and exit")
	fs.StringVarP(&flags.Dir, "dir", "d", "", "set directory to work on")
	fs.BoolVarP(&flags.Quiet, "quiet", "q", false, "do not print process details")
	fs.BoolVarP(&flags.Reverse, "reverse", "r", false, "reverse image order")
	fs.BoolVarP(&flags.Force, "force", "f", false, "overwrite existing PDF file")
	fs.BoolVarP(&flags.Decline, "decline", "D", false, "never overwrite an existing PDF file")
	fs.BoolVarP(&flags.Interactive, "interactive", "i", false, "prompt before overwrite")
	fs.BoolVarP(&flags.Except, "except", "e", false, "skip images without read permission")
	fs.BoolVarP(&flags.Selective, "selective", "s", false, "select images interactively")
	fs.StringVarP(&flags.PageSize, "page-size", "p", "", "fixed page size: A3, A4, A5, Letter, Legal, WIDTHxHEIGHT")

	if err := fs.Parse(args); err != nil {
		return flags, err
	}
	flags.PageSizeSet = fs.Changed("page-size")

	if flags.Help {
		return flags, nil
	}

	switch fs.NArg() {
	case 0:
		return flags, ErrNoOutput
	case 1:
		flags.Output = fs.Arg(0)
	default:
		return flags, ErrTooManyOutputs
	}
	return flags, nil
}

// ResolveDir returns dir, or the working directory when dir is empty, always
// ending with the path separator.
func ResolveDir(dir string, getwd func() (string, error)) (string, error) {
	if dir == "" {
		wd, err := getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}
	if !strings.HasSuffix(dir, string(os.PathSeparator)) {
		dir += string(os.PathSeparator)
	}
	return dir, nil
}

// OutputPath places name inside dir unless it is absolute, appending the
// .pdf suffix when missing.
func OutputPath(dir, name string) string {
	if !strings.HasSuffix(name, ".pdf") {
		name += ".pdf"
	}
	if filepath.IsAbs(name) {
		return name
	}
	return dir + name
}
