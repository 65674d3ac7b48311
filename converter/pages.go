package converter

import (
	"fmt"

	"img2pdf/contracts"
	"img2pdf/utils"
)

// preparePage reads one image and encodes it for embedding. The page takes
// the fixed size when one is set and the image's pixel size otherwise; the
// returned entry carries the pixel size in that case.
func preparePage(index int, image ImageEntry, size contracts.PageSize) (ImageEntry, *contracts.ConvertResult, error) {
	width, height := size.Width, size.Height
	if !size.Fixed() {
		w, h, err := utils.GetImageSize(image.Path)
		if err != nil {
			return image, nil, fail(contracts.ExitFailure, "Error", "Could not read image '%s': %v", image.Path, err)
		}
		image.Width, image.Height = w, h
		width, height = float64(w), float64(h)
	}

	data, format, err := utils.EncodeForPDF(image.Path)
	if err != nil {
		return image, nil, fail(contracts.ExitFailure, "Error", "Could not read image '%s': %v", image.Path, err)
	}

	return image, &contracts.ConvertResult{
		ImgBuffer:  data,
		ImageId:    fmt.Sprintf("img_%d", index),
		ImgFormat:  format,
		PageWidth:  width,
		PageHeight: height,
		PageIndex:  index,
	}, nil
}
