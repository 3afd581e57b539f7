//go:build !cgo || !linux

package ocr

// ReadImageText is a stub for builds without Tesseract support. It always
// returns ErrUnavailable.
func ReadImageText(string) (string, error) {
	return "", ErrUnavailable
}
