// Package upload checks receipt metadata before an expense references
// it. Only the artifact's name, byte size and MIME type are inspected;
// file bytes never reach this core.
package upload

import (
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/hanifadr/reimbursement-hub/internal"
)

// Kind tells the presentation layer whether it can render a preview.
type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

type CheckRequest struct {
	FileName    string `json:"file_name"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentType string `json:"content_type"`
}

type CheckResult struct {
	FileName   string `json:"file_name"`
	SizeBytes  int64  `json:"size_bytes"`
	Kind       Kind   `json:"kind"`
	ReceiptURL string `json:"receipt_url"`
}

type Checker struct {
	maxSizeBytes int64
	logger       *slog.Logger
}

func NewChecker(maxSizeBytes int64, logger *slog.Logger) *Checker {
	return &Checker{
		maxSizeBytes: maxSizeBytes,
		logger:       logger,
	}
}

// Check validates the selected artifact and mints the opaque receipt
// reference an expense can carry. Rejections leave no state behind.
func (c *Checker) Check(req CheckRequest) (*CheckResult, error) {
	if strings.TrimSpace(req.FileName) == "" {
		return nil, internal.NewValidationFieldError("file_name", "file name is required", internal.ErrCodeValidationFailed)
	}
	if req.SizeBytes <= 0 {
		return nil, internal.NewValidationFieldError("size_bytes", "file size must be greater than 0", internal.ErrCodeValidationFailed)
	}
	if req.SizeBytes > c.maxSizeBytes {
		c.logger.Warn("receipt rejected: too large",
			"file_name", req.FileName,
			"size_bytes", req.SizeBytes,
			"limit_bytes", c.maxSizeBytes)
		return nil, internal.NewFileTooLargeError(req.SizeBytes, c.maxSizeBytes)
	}

	kind, ok := classify(req.ContentType)
	if !ok {
		c.logger.Warn("receipt rejected: unsupported type",
			"file_name", req.FileName,
			"content_type", req.ContentType)
		return nil, internal.NewValidationFieldError("content_type", "only images and PDF documents are accepted", internal.ErrCodeUnsupportedFileType)
	}

	result := &CheckResult{
		FileName:   req.FileName,
		SizeBytes:  req.SizeBytes,
		Kind:       kind,
		ReceiptURL: "uploads/receipts/" + uuid.NewString() + path.Ext(req.FileName),
	}

	c.logger.Info("receipt accepted",
		"file_name", req.FileName,
		"size_bytes", req.SizeBytes,
		"kind", kind)

	return result, nil
}

// classify branches on the MIME-type prefix: any image gets a preview,
// PDFs are handled as generic documents.
func classify(contentType string) (Kind, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return KindImage, true
	case contentType == "application/pdf":
		return KindDocument, true
	}
	return "", false
}
