package files_manager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"

	"img2pdf/contracts"
)

type ImageEntry = contracts.ImageEntry

var (
	ErrNotReadable = errors.New("file is not readable")
	ErrNoImages    = errors.New("no valid image file")
)

// UnreadableError names a directory entry that could not be opened.
type UnreadableError struct {
	Name string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *UnreadableError) Unwrap() []error {
	return []error{ErrNotReadable, e.Err}
}

// SelectFunc decides whether a qualifying image joins the selection.
type SelectFunc func(ctx context.Context, entry ImageEntry) (bool, error)

// DiscoverImages lists dir in byte-wise filename order and returns the
// regular, readable files whose content sniffs as an image. With except set,
// unreadable files are skipped; otherwise the first one aborts the scan. A
// nil selectFn accepts every image.
func DiscoverImages(ctx context.Context, dir string, except bool, selectFn SelectFunc) ([]ImageEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	// Paths keep dir as given, so they match the output path built from it.
	prefix := dir
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}

	images := make([]ImageEntry, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := prefix + entry.Name()

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			log.Debug().Str("file", entry.Name()).Msg("skipping non-regular entry")
			continue
		}

		mime, err := sniff(path)
		if err != nil {
			if except {
				log.Debug().Str("file", entry.Name()).Err(err).Msg("skipping unreadable file")
				continue
			}
			return nil, &UnreadableError{Name: entry.Name(), Err: err}
		}
		if !strings.HasPrefix(mime, "image/") {
			log.Debug().Str("file", entry.Name()).Str("mime", mime).Msg("skipping non-image file")
			continue
		}

		image := ImageEntry{
			Path: path,
			Name: entry.Name(),
			MIME: mime,
		}
		if selectFn != nil {
			ok, err := selectFn(ctx, image)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		log.Debug().Str("file", image.Name).Str("mime", mime).Msg("image selected")
		images = append(images, image)
	}

	if len(images) == 0 {
		return nil, ErrNoImages
	}
	return images, nil
}

// sniff opens path and detects its media type from the leading bytes.
func sniff(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to detect file type: %w", err)
	}
	return mtype.String(), nil
}

// Reverse reverses images in place.
func Reverse(images []ImageEntry) {
	for i, j := 0, len(images)-1; i < j; i, j = i+1, j-1 {
		images[i], images[j] = images[j], images[i]
	}
}
