//go:build ocr

// Package ocr recognizes text in exported region crops. It sits at the
// downstream boundary of the fusion pipeline: the pipeline writes one
// crop per region, and this package turns a crop into text. The core
// pipeline never calls it.
//
// The implementation wraps the Tesseract engine via gosseract and
// requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Build with the "ocr" tag to enable it; without the tag a stub is
// compiled instead and every operation returns ErrOCRNotEnabled.
package ocr

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ErrOCRNotEnabled is returned by the stub build; it is declared here too
// so errors.Is works against either build.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client wraps a Tesseract session for recognizing region crops.
// A client is not safe for concurrent use; create one per worker.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client. Close it when done to release the Tesseract
// session.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases the underlying Tesseract session.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// SetLanguage sets the recognition language(s), "+"-separated for
// multiple (e.g. "eng+fra"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeCrop recognizes the text in an encoded crop image (PNG, JPEG,
// TIFF). The result is trimmed of surrounding whitespace.
func (c *Client) RecognizeCrop(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("setting crop image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing crop: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// RecognizeCropFile recognizes the text in a crop written by the
// exporter.
func (c *Client) RecognizeCropFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading crop %s: %w", path, err)
	}
	return c.RecognizeCrop(data)
}
