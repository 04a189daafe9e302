package docparse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/hanntran/folio-forge/internal/application/service"
	"github.com/hanntran/folio-forge/pkg/apperror"
)

type pdfParser struct{}

func NewPDFParser() service.ResumeParser {
	return &pdfParser{}
}

// ExtractText reads every page of the PDF and concatenates its plain text.
// Pages that fail to decode are skipped; a document yielding no text at all
// is reported as invalid input so the caller can fail fast.
func (p *pdfParser) ExtractText(ctx context.Context, file io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", apperror.NewInvalidInput("failed to read uploaded file", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperror.NewInvalidInput("file is not a readable PDF document", err)
	}

	var textContent strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textContent.WriteString(text)
		textContent.WriteString("\n")
	}

	result := strings.TrimSpace(textContent.String())
	if result == "" {
		return "", apperror.NewInvalidInput(
			fmt.Sprintf("no extractable text in PDF (%d pages)", reader.NumPage()), nil)
	}
	return result, nil
}
