//go:build cgo && linux

package ocr

import (
	"github.com/otiai10/gosseract/v2"
	"github.com/pkg/errors"
)

// ReadImageText performs OCR on the photograph at path and returns the
// recognized text.
//
// Parameters:
//   - path: Absolute or relative path to the image file. Supports PNG,
//     JPEG, TIFF, BMP.
//
// Returns:
//   - string: All recognized text with original spacing and newlines.
//   - error: Non-nil if Tesseract initialization or recognition fails.
//
// Recognition uses the English language pack, which covers the digits and
// unit abbreviations of scale annotations. OCR is CPU-intensive; callers
// that know where the label sits should crop the photograph first.
func ReadImageText(path string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage("eng"); err != nil {
		return "", errors.Wrap(err, "failed to set language")
	}
	if err := client.SetImage(path); err != nil {
		return "", errors.Wrap(err, "failed to set image")
	}

	text, err := client.Text()
	if err != nil {
		return "", errors.Wrap(err, "OCR failed")
	}
	return text, nil
}
