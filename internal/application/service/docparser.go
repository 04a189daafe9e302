package service

import (
	"context"
	"io"
)

// ResumeParser extracts plain text from an uploaded resume document.
type ResumeParser interface {
	ExtractText(ctx context.Context, file io.Reader, size int64) (string, error)
}
