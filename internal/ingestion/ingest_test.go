package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner stubs the tesseract binary for OCR tests.
type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.gotName = name
	f.gotArgs = args
	return f.stdout, f.stderr, f.err
}

func TestExtractFromSource_RawText(t *testing.T) {
	result, err := ExtractFromSource(context.Background(), "Globex is seeking a program director with healthcare experience.", Options{})
	require.NoError(t, err)

	assert.Equal(t, SourceRawText, result.Kind)
	assert.Equal(t, "direct input", result.Method)
	assert.Contains(t, result.Text, "healthcare experience")
	assert.Equal(t, "Globex", result.Company)
}

func TestExtractFromSource_EmptySource(t *testing.T) {
	_, err := ExtractFromSource(context.Background(), "   ", Options{})
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestExtractFromSource_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.txt")
	require.NoError(t, os.WriteFile(path, []byte("Acme is hiring.\r\nLead   delivery teams."), 0644))

	result, err := ExtractFromSource(context.Background(), path, Options{})
	require.NoError(t, err)

	assert.Equal(t, SourceTextFile, result.Kind)
	assert.Equal(t, "direct file read", result.Method)
	assert.Equal(t, "Acme is hiring.\nLead delivery teams.", result.Text)
}

func TestExtractFromSource_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.docx")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	_, err := ExtractFromSource(context.Background(), path, Options{})
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, extractionErr.Message, ".docx")
}

func TestExtractFromSource_EmptyFileContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0644))

	_, err := ExtractFromSource(context.Background(), path, Options{})
	require.Error(t, err)

	var extractionErr *ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestExtractFromSource_ScreenshotUsesOCR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.png")
	require.NoError(t, os.WriteFile(path, []byte("fake image bytes"), 0644))

	runner := &fakeRunner{stdout: []byte("Acme is seeking a  Director\nof   Operations")}
	extractor := NewOCRExtractorWithRunner(OCRConfig{}, runner, nil)

	result, err := ExtractFromSource(context.Background(), path, Options{OCR: extractor})
	require.NoError(t, err)

	assert.Equal(t, SourceScreenshot, result.Kind)
	assert.Equal(t, "OCR", result.Method)
	assert.Equal(t, "Acme is seeking a Director of Operations", result.Text)
	assert.Equal(t, "tesseract", runner.gotName)
	assert.Equal(t, []string{path, "stdout", "-l", "eng"}, runner.gotArgs)
}

func TestExtractFromSource_OCRFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.png")
	require.NoError(t, os.WriteFile(path, []byte("fake image bytes"), 0644))

	runner := &fakeRunner{err: errors.New("binary not found"), stderr: []byte("no tesseract")}
	extractor := NewOCRExtractorWithRunner(OCRConfig{}, runner, nil)

	_, err := ExtractFromSource(context.Background(), path, Options{OCR: extractor})
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "OCR failed", extractionErr.Message)
}

func TestOCRExtractor_ConfigDefaults(t *testing.T) {
	runner := &fakeRunner{stdout: []byte("text")}
	extractor := NewOCRExtractorWithRunner(OCRConfig{Tesseract: "/opt/bin/tesseract", Lang: "deu"}, runner, nil)

	_, err := extractor.ExtractText(context.Background(), "file.png")
	require.NoError(t, err)
	assert.Equal(t, "/opt/bin/tesseract", runner.gotName)
	assert.Equal(t, []string{"file.png", "stdout", "-l", "deu"}, runner.gotArgs)
}
