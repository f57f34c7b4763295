package extract

import (
	"errors"
	"testing"
)

func TestText_Plain(t *testing.T) {
	out, err := Text(ContentTypeText, []byte("  Jane Doe\nBackend Engineer  "))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "Jane Doe\nBackend Engineer" {
		t.Fatalf("unexpected text: %q", out)
	}
}

func TestText_UnsupportedType(t *testing.T) {
	_, err := Text("image/png", []byte{0x89, 0x50})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestText_CorruptPDF(t *testing.T) {
	if _, err := Text(ContentTypePDF, []byte("not a pdf")); err == nil {
		t.Fatalf("expected error for corrupt pdf")
	}
}

func TestText_CorruptDocx(t *testing.T) {
	if _, err := Text(ContentTypeDocx, []byte("not a zip")); err == nil {
		t.Fatalf("expected error for corrupt docx")
	}
}
