//go:build !ocr

// Package ocr recognizes text in exported region crops. It sits at the
// downstream boundary of the fusion pipeline: the pipeline writes one
// crop per region, and this package turns a crop into text. The core
// pipeline never calls it.
//
// This is the stub compiled when the "ocr" build tag is not set; every
// operation returns ErrOCRNotEnabled. To enable OCR, rebuild with the
// tag (Tesseract must be installed):
//
//	go build -tags ocr
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR support was not compiled in.
// Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is the stub OCR client; all operations fail with
// ErrOCRNotEnabled.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op, safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// RecognizeCrop returns ErrOCRNotEnabled.
func (c *Client) RecognizeCrop(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// RecognizeCropFile returns ErrOCRNotEnabled.
func (c *Client) RecognizeCropFile(path string) (string, error) {
	return "", ErrOCRNotEnabled
}
