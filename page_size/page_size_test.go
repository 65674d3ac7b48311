package page_size

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"img2pdf/contracts"
)

func TestResolveStandard(t *testing.T) {
	tests := []struct {
		raw           string
		name          string
		width, height float64
	}{
		{"A3", "A3", 842, 1191},
		{"a4", "A4", 595, 842},
		{"A5", "A5", 420, 595},
		{"LETTER", "Letter", 612, 792},
		{"Legal", "Legal", 612, 1008},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			size, err := Resolve(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, contracts.Standard, size.Mode)
			assert.Equal(t, tt.name, size.Name)
			assert.Equal(t, tt.width, size.Width)
			assert.Equal(t, tt.height, size.Height)
			assert.True(t, size.Fixed())
		})
	}
}

func TestResolvePerImage(t *testing.T) {
	size, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, contracts.PerImage, size.Mode)
	assert.False(t, size.Fixed())
	assert.Equal(t, "Every image will be placed on a page that fits its size.", Describe(size))
}

func TestResolveUserDefined(t *testing.T) {
	size, err := Resolve("300X400")
	require.NoError(t, err)
	assert.Equal(t, contracts.UserDefined, size.Mode)
	assert.Equal(t, 300.0, size.Width)
	assert.Equal(t, 400.0, size.Height)
	assert.Equal(t, "Page size set to 300x400", Describe(size))

	size, err = Resolve(" 5 x 10 ")
	require.NoError(t, err)
	assert.Equal(t, contracts.UserDefined, size.Mode)
	assert.Equal(t, "5x10", size.Name)
	assert.Equal(t, 5.0, size.Width)
	assert.Equal(t, 10.0, size.Height)
}

func TestResolveInvalid(t *testing.T) {
	tests := []struct {
		raw     string
		side    string
		message string
	}{
		{"b5", "", `--page-size parameter which is "b5" can only take this parameters: A3, A4, A5, Letter, Legal, WIDTHxHEIGHT (positive integers, in pt).`},
		{"x300", "", `--page-size parameter which is "x300" can only take this parameters: A3, A4, A5, Letter, Legal, WIDTHxHEIGHT (positive integers, in pt).`},
		{"300x", "", `--page-size parameter which is "300x" can only take this parameters: A3, A4, A5, Letter, Legal, WIDTHxHEIGHT (positive integers, in pt).`},
		{"1x2x3", "", `--page-size parameter must be integers connected with "x".`},
		{"axb", "Width", "Width parameter which is a must be an integer."},
		{"300xb", "Height", "Height parameter which is b must be an integer."},
		{"0x400", "Width", "Width parameter which is 0 must be a positive integer."},
		{"300x-4", "Height", "Height parameter which is -4 must be a positive integer."},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := Resolve(tt.raw)
			var invalid *InvalidPageSizeError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.side, invalid.Side)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}
