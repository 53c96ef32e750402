package docconv

import (
	"bytes"
	"strings"
	"testing"
)

func TestExtractTextPlain(t *testing.T) {
	got, err := ExtractText("notes.txt", []byte("line one\r\nline two\rline three"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != "line one\nline two\nline three" {
		t.Fatalf("newlines not normalized: %q", got)
	}
}

func TestDOCXRoundTrip(t *testing.T) {
	input := "First paragraph with <angle> & ampersand.\nSecond paragraph."
	data, err := GenerateDOCX(input)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	got, err := ExtractText("out.docx", data)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(got, "First paragraph with <angle> & ampersand.") {
		t.Fatalf("escaped characters lost: %q", got)
	}
	if !strings.Contains(got, "Second paragraph.") {
		t.Fatalf("second paragraph lost: %q", got)
	}
}

func TestExtractDOCXRejectsGarbage(t *testing.T) {
	if _, err := ExtractDOCX([]byte("not a zip")); err == nil {
		t.Fatal("expected error for non-zip input")
	}
}

func TestGeneratePDF(t *testing.T) {
	data, err := GeneratePDF("Hello there.\n\nAnother paragraph.")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("output is not a pdf")
	}
}
