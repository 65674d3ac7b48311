package contracts

import "context"

type Converter interface {
	Run(ctx context.Context, args []string) int
}

type ConversionRequest struct {
	Parameters InputFlags
	Images     []ImageEntry
	PageSize   PageSize
	OutputPath string
}

// Process exit codes.
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitUsage            = 2
	ExitNoImages         = 3
	ExitUserDeclined     = 4
	ExitRefusedOverwrite = 5
	ExitPermission       = 126
	ExitInterrupted      = 130
)

// ConvertResult is one image ready to be placed on its own page.
type ConvertResult struct {
	ImgBuffer []byte
	ImageId   string
	ImgFormat string
	// PageWidth and PageHeight are points; the image fills the whole page.
	PageWidth  float64
	PageHeight float64
	PageIndex  int
}
