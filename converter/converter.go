package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"img2pdf/config"
	"img2pdf/console"
	"img2pdf/contracts"
	"img2pdf/files_manager"
	"img2pdf/input_flags"
	"img2pdf/page_size"
	"img2pdf/pdf_writer"
)

type (
	InputFlags        = contracts.InputFlags
	ImageEntry        = contracts.ImageEntry
	ConversionRequest = contracts.ConversionRequest
)

// Converter runs one conversion from command-line arguments to exit code.
type Converter struct {
	console  *console.Console
	defaults config.Config
	getwd    func() (string, error)
}

var _ contracts.Converter = (*Converter)(nil)

func New(c *console.Console, defaults config.Config) *Converter {
	return &Converter{
		console:  c,
		defaults: defaults,
		getwd:    os.Getwd,
	}
}

// Run performs the whole conversion and returns the process exit code. Every
// outcome except success and interruption is reported on the console here.
func (c *Converter) Run(ctx context.Context, args []string) int {
	err := c.run(ctx, args)
	if err == nil {
		return contracts.ExitOK
	}

	failure := classify(err)
	if failure.Message != "" {
		c.console.Print(failure.Severity, failure.Error())
	}
	log.Debug().Int("code", failure.Code).Err(err).Msg("run finished")
	return failure.Code
}

func (c *Converter) run(ctx context.Context, args []string) error {
	flags, err := input_flags.Parse(args)
	if err != nil {
		if errors.Is(err, input_flags.ErrNoOutput) || errors.Is(err, input_flags.ErrTooManyOutputs) {
			return err
		}
		return fail(contracts.ExitUsage, "", "%v", err)
	}
	if flags.Help {
		c.console.Print(console.Plain, input_flags.Usage)
		return nil
	}

	dir, err := input_flags.ResolveDir(flags.Dir, c.getwd)
	if err != nil {
		return err
	}
	outputPath := input_flags.OutputPath(dir, flags.Output)
	log.Debug().Str("dir", dir).Str("output", outputPath).Msg("resolved paths")

	before, err := files_manager.StatOutput(outputPath)
	if err != nil {
		return err
	}
	if before.Exists {
		if err := c.checkOverwrite(ctx, outputPath, flags); err != nil {
			return err
		}
	}

	images, err := c.discover(ctx, dir, flags)
	if err != nil {
		return err
	}

	if flags.Reverse {
		files_manager.Reverse(images)
		c.console.Print(console.Info, "Image order reversed.")
	}

	rawSize := c.defaults.PageSize
	if flags.PageSizeSet {
		rawSize = flags.PageSize
	}
	size, err := page_size.Resolve(rawSize)
	if err != nil {
		return err
	}
	c.console.Print(console.Info, page_size.Describe(size))
	log.Debug().Stringer("mode", size.Mode).Float64("width", size.Width).Float64("height", size.Height).Msg("page size resolved")

	writer, err := c.render(ctx, ConversionRequest{
		Parameters: flags,
		Images:     images,
		PageSize:   size,
		OutputPath: outputPath,
	})
	if err != nil {
		return err
	}

	if err := save(writer, outputPath); err != nil {
		return err
	}
	return c.verify(outputPath, before)
}

func (c *Converter) checkOverwrite(ctx context.Context, outputPath string, flags InputFlags) error {
	confirm := func(ctx context.Context) (bool, error) {
		return c.console.Confirm(ctx, console.Warning,
			"img2pdf: Prompt: File already exists. Do you want to overwrite? [y/N]: ", false)
	}

	decision, err := files_manager.ApplyOverwritePolicy(ctx, outputPath, flags, confirm)
	if errors.Is(err, files_manager.ErrNotWritable) {
		return fail(contracts.ExitPermission, "Permission Denied",
			"The file '%s' is not writable. Check file permissions.", outputPath)
	}
	if err != nil {
		return err
	}
	log.Debug().Int("decision", int(decision)).Msg("overwrite policy applied")

	switch decision {
	case files_manager.Declined:
		return &Failure{
			Code:     contracts.ExitOK,
			Severity: console.Info,
			Category: "Quit",
			Message:  "Forced to decline overwrite.",
		}
	case files_manager.UserDeclined:
		return fail(contracts.ExitUserDeclined, "Quit", "User declined overwrite.")
	case files_manager.Refused:
		return fail(contracts.ExitRefusedOverwrite, "Quit", "File already exists. To overwrite add -f or --force parameter.")
	}
	return nil
}

func (c *Converter) discover(ctx context.Context, dir string, flags InputFlags) ([]ImageEntry, error) {
	var selectFn files_manager.SelectFunc
	if flags.Selective {
		selectFn = func(ctx context.Context, image ImageEntry) (bool, error) {
			ok, err := c.console.Confirm(ctx, console.Info, fmt.Sprintf("Include %q? [Y/n]: ", image.Name), true)
			if err != nil {
				return false, err
			}
			if ok {
				c.console.Printf(console.Success, "  %s will be added.", image.Name)
			} else {
				c.console.Printf(console.Error, "  %s will be skipped.", image.Name)
			}
			return ok, nil
		}
	}

	images, err := files_manager.DiscoverImages(ctx, dir, flags.Except, selectFn)
	if err != nil {
		var unreadable *files_manager.UnreadableError
		if !errors.As(err, &unreadable) && !errors.Is(err, files_manager.ErrNoImages) && errors.Is(err, os.ErrPermission) {
			return nil, fail(contracts.ExitPermission, "Permission Denied",
				"The directory '%s' is not readable. Check directory permissions.", dir)
		}
		return nil, err
	}
	return images, nil
}

// render places every image on its own page in order. Fixed page sizes are
// shared by all pages; per-image pages take the image's pixel size as points.
func (c *Converter) render(ctx context.Context, req ConversionRequest) (*pdf_writer.PDFWriter, error) {
	title := strings.TrimSuffix(filepath.Base(req.OutputPath), ".pdf")
	writer := pdf_writer.NewPDFWriter(title)

	total := len(req.Images)
	digits := len(strconv.Itoa(total))

	for i := range req.Images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		image, page, err := preparePage(i, req.Images[i], req.PageSize)
		if err != nil {
			return nil, err
		}
		req.Images[i] = image

		if err := writer.WriteImage(page); err != nil {
			return nil, fail(contracts.ExitFailure, "Error", "Could not add image '%s': %v", image.Path, err)
		}
		log.Debug().Str("file", image.Path).Int("page", i+1).Float64("width", page.PageWidth).Float64("height", page.PageHeight).Msg("page added")

		if !req.Parameters.Quiet {
			c.console.Printf(console.Plain, "%*d/%d: Adding image %s", digits, i+1, total, image.Path)
		}
	}
	return writer, nil
}

// save writes the finished document over outputPath.
func save(writer *pdf_writer.PDFWriter, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return fail(contracts.ExitPermission, "Permission Denied",
				"Could not create '%s'. Check directory permissions.", outputPath)
		}
		return fmt.Errorf("error creating PDF file: %w", err)
	}

	if err := writer.Finish(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing PDF file: %w", err)
	}
	log.Debug().Str("output", outputPath).Int("pages", writer.PageCount()).Msg("document written")
	return nil
}

func (c *Converter) verify(outputPath string, before files_manager.Stamp) error {
	after, err := files_manager.StatOutput(outputPath)
	if err != nil {
		return err
	}
	if !after.Exists {
		return fail(contracts.ExitFailure, "Error", "An error occurred. Could not create the PDF.")
	}
	if !after.UpdatedSince(before) {
		return fail(contracts.ExitFailure, "Error", "An error occurred. Could not modify the existing file.")
	}
	c.console.Print(console.Success, "img2pdf: Success: PDF file created.")
	return nil
}
