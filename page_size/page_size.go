package page_size

import (
	"fmt"
	"strconv"
	"strings"

	"img2pdf/contracts"
)

type PageSize = contracts.PageSize

// Vocabulary lists the accepted --page-size values.
const Vocabulary = "A3, A4, A5, Letter, Legal, WIDTHxHEIGHT (positive integers, in pt)."

// Standard page dimensions in points.
var standardSizes = map[string]PageSize{
	"a3":     {Mode: contracts.Standard, Name: "A3", Width: 842, Height: 1191},
	"a4":     {Mode: contracts.Standard, Name: "A4", Width: 595, Height: 842},
	"a5":     {Mode: contracts.Standard, Name: "A5", Width: 420, Height: 595},
	"letter": {Mode: contracts.Standard, Name: "Letter", Width: 612, Height: 792},
	"legal":  {Mode: contracts.Standard, Name: "Legal", Width: 612, Height: 1008},
}

// InvalidPageSizeError describes a --page-size value that cannot be used.
// Side is "Width" or "Height" when one side of WIDTHxHEIGHT is bad, and empty
// otherwise.
type InvalidPageSizeError struct {
	Value  string
	Side   string
	Reason string
}

func (e *InvalidPageSizeError) Error() string {
	if e.Side != "" {
		return fmt.Sprintf("%s parameter which is %s %s.", e.Side, e.Value, e.Reason)
	}
	return fmt.Sprintf("--page-size parameter %s", e.Reason)
}

// Resolve maps a raw --page-size value to a page-size mode. The value is
// case-insensitive; an empty value selects per-image sizing.
func Resolve(raw string) (PageSize, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return PageSize{Mode: contracts.PerImage}, nil
	}
	if size, ok := standardSizes[value]; ok {
		return size, nil
	}

	if strings.Contains(value, "x") && !strings.HasPrefix(value, "x") && !strings.HasSuffix(value, "x") {
		dims := strings.Split(value, "x")
		if len(dims) != 2 {
			return PageSize{}, &InvalidPageSizeError{
				Value:  value,
				Reason: `must be integers connected with "x".`,
			}
		}
		width, err := parseSide("Width", dims[0])
		if err != nil {
			return PageSize{}, err
		}
		height, err := parseSide("Height", dims[1])
		if err != nil {
			return PageSize{}, err
		}
		return PageSize{
			Mode:   contracts.UserDefined,
			Name:   fmt.Sprintf("%dx%d", width, height),
			Width:  float64(width),
			Height: float64(height),
		}, nil
	}

	return PageSize{}, &InvalidPageSizeError{
		Value:  value,
		Reason: fmt.Sprintf("which is %q can only take this parameters: %s", value, Vocabulary),
	}
}

func parseSide(side, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InvalidPageSizeError{Value: raw, Side: side, Reason: "must be an integer"}
	}
	if n <= 0 {
		return 0, &InvalidPageSizeError{Value: raw, Side: side, Reason: "must be a positive integer"}
	}
	return n, nil
}

// Describe returns the status line printed once the mode is known.
func Describe(size PageSize) string {
	switch size.Mode {
	case contracts.Standard:
		return fmt.Sprintf("Page size set to %s.", size.Name)
	case contracts.UserDefined:
		return fmt.Sprintf("Page size set to %s", size.Name)
	default:
		return "Every image will be placed on a page that fits its size."
	}
}
