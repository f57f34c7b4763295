package extract

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported upload content types.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeText = "text/plain"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// Text extracts plain text from an uploaded resume. The content type decides
// the decoder; anything else is rejected up front rather than guessed.
func Text(contentType string, data []byte) (string, error) {
	switch contentType {
	case ContentTypeText:
		return strings.TrimSpace(string(data)), nil
	case ContentTypePDF:
		return pdfText(data)
	case ContentTypeDocx:
		return docxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("pdf contains no extractable text")
	}
	return out, nil
}

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the raw document XML; strip markup down to text.
	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagRe.ReplaceAllString(content, "")

	out := strings.TrimSpace(content)
	if out == "" {
		return "", errors.New("docx contains no extractable text")
	}
	return out, nil
}
