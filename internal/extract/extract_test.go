package extract

import (
	"strings"
	"testing"
)

func TestFromUploadPlainText(t *testing.T) {
	text, err := FromUpload("essay.txt", []byte("hello from a file"))
	if err != nil {
		t.Fatalf("FromUpload: %v", err)
	}
	if text != "hello from a file" {
		t.Fatalf("text = %q", text)
	}
}

func TestFromUploadMarkdown(t *testing.T) {
	text, err := FromUpload("notes.MD", []byte("# heading"))
	if err != nil {
		t.Fatalf("FromUpload: %v", err)
	}
	if text != "# heading" {
		t.Fatalf("text = %q", text)
	}
}

func TestFromUploadInvalidUTF8(t *testing.T) {
	if _, err := FromUpload("bad.txt", []byte{0xff, 0xfe, 0xfd}); err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}

func TestFromUploadUnsupportedType(t *testing.T) {
	_, err := FromUpload("image.png", []byte("data"))
	if err == nil {
		t.Fatal("expected error for unsupported type")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("error = %v", err)
	}
}

func TestFromUploadCorruptPDF(t *testing.T) {
	if _, err := FromUpload("doc.pdf", []byte("not a pdf")); err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}
