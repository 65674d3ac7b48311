package contracts

type ImageEntry struct {
	Path string
	Name string
	MIME string
	// Width and Height are pixels, zero until the image is inspected.
	Width  int
	Height int
}

type PageSizeMode int

const (
	PerImage PageSizeMode = iota
	Standard
	UserDefined
)

func (m PageSizeMode) String() string {
	switch m {
	case Standard:
		return "standard"
	case UserDefined:
		return "user-defined"
	default:
		return "per-image"
	}
}

// PageSize is resolved once per run. Width and Height are points and are
// unused in PerImage mode.
type PageSize struct {
	Mode   PageSizeMode
	Name   string
	Width  float64
	Height float64
}

// Fixed reports whether every page shares the same dimensions.
func (p PageSize) Fixed() bool {
	return p.Mode != PerImage
}
