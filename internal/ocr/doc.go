// Package ocr reads printed scale annotations off survey photographs.
//
// Plan-view photographs exported from mapping tools usually carry a scale
// bar with a printed length such as "100 m" or "0.5 km". ReadImageText runs
// Tesseract over the photograph and ParseScaleLength picks the first length
// expression out of the recognized text, so the calibration can come from
// the photograph itself instead of a command-line flag.
//
// # Availability
//
// Tesseract bindings (gosseract/v2) need CGO and the native library, so
// ReadImageText is only functional when built with CGO on Linux:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//
// Other builds compile a stub that returns ErrUnavailable. ParseScaleLength
// is pure Go and always available, so recognized text from any source can
// be parsed without Tesseract.
package ocr
