package files_manager

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func writeFiles(t *testing.T, dir string, files map[string][]byte) {
	t.Helper()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
}

func names(images []ImageEntry) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		out = append(out, img.Name)
	}
	return out
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
}

func TestDiscoverImages(t *testing.T) {
	img := pngBytes(t)

	t.Run("content decides, order is lexicographic", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string][]byte{
			"b.png":     img,
			"A.png":     img,
			"a.dat":     img,
			"fake.jpg":  []byte("this is text"),
			"notes.txt": []byte("hello"),
		})
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

		images, err := DiscoverImages(context.Background(), dir, false, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"A.png", "a.dat", "b.png"}, names(images))
		assert.Equal(t, "image/png", images[0].MIME)
		assert.Equal(t, filepath.Join(dir, "A.png"), images[0].Path)
	})

	t.Run("no images", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string][]byte{"notes.txt": []byte("hello")})

		_, err := DiscoverImages(context.Background(), dir, false, nil)
		assert.ErrorIs(t, err, ErrNoImages)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := DiscoverImages(context.Background(), t.TempDir(), false, nil)
		assert.ErrorIs(t, err, ErrNoImages)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := DiscoverImages(context.Background(), filepath.Join(t.TempDir(), "nope"), false, nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoImages)
	})

	t.Run("selection callback", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string][]byte{"a.png": img, "b.png": img, "c.png": img})

		var asked []string
		images, err := DiscoverImages(context.Background(), dir, false, func(_ context.Context, e ImageEntry) (bool, error) {
			asked = append(asked, e.Name)
			return e.Name != "b.png", nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.png", "b.png", "c.png"}, asked)
		assert.Equal(t, []string{"a.png", "c.png"}, names(images))
	})

	t.Run("selection rejecting everything", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string][]byte{"a.png": img})

		_, err := DiscoverImages(context.Background(), dir, false, func(context.Context, ImageEntry) (bool, error) {
			return false, nil
		})
		assert.ErrorIs(t, err, ErrNoImages)
	})

	t.Run("selection error aborts", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string][]byte{"a.png": img})

		_, err := DiscoverImages(context.Background(), dir, false, func(context.Context, ImageEntry) (bool, error) {
			return false, context.Canceled
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unreadable file", func(t *testing.T) {
		skipIfRoot(t)
		dir := t.TempDir()
		writeFiles(t, dir, map[string][]byte{"a.png": img, "b.png": img})
		require.NoError(t, os.Chmod(filepath.Join(dir, "a.png"), 0o000))

		_, err := DiscoverImages(context.Background(), dir, false, nil)
		var unreadable *UnreadableError
		require.True(t, errors.As(err, &unreadable))
		assert.Equal(t, "a.png", unreadable.Name)
		assert.ErrorIs(t, err, ErrNotReadable)

		images, err := DiscoverImages(context.Background(), dir, true, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"b.png"}, names(images))
	})
}

func TestDiscoverImagesKeepsDirForm(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "imgs"), 0o755))
	writeFiles(t, filepath.Join(root, "imgs"), map[string][]byte{"a.png": pngBytes(t)})
	t.Chdir(root)

	sep := string(os.PathSeparator)
	for _, dir := range []string{"." + sep + "imgs" + sep, "." + sep + "imgs"} {
		images, err := DiscoverImages(context.Background(), dir, false, nil)
		require.NoError(t, err)
		require.Len(t, images, 1)
		assert.Equal(t, "."+sep+"imgs"+sep+"a.png", images[0].Path)
	}
}

func TestReverse(t *testing.T) {
	images := []ImageEntry{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	Reverse(images)
	assert.Equal(t, []string{"c", "b", "a"}, names(images))

	Reverse(nil)
}
