package ingestion

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner lets us stub external commands in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	dur := time.Since(start)

	if err != nil {
		slog.Error("exec failed",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", dur.Milliseconds(),
			"error", err,
		)
	} else {
		slog.Debug("exec ok",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", dur.Milliseconds(),
			"stdout_bytes", out.Len(),
		)
	}

	return out.Bytes(), errb.Bytes(), err
}

// OCRConfig configures the tesseract invocation.
type OCRConfig struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Lang      string // default "eng"
}

// OCRExtractor runs tesseract over screenshot files to recover job text.
type OCRExtractor struct {
	cfg    OCRConfig
	runner Runner
	logger *slog.Logger
}

// NewOCRExtractor builds an extractor with the default exec runner.
func NewOCRExtractor(cfg OCRConfig, logger *slog.Logger) *OCRExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	return &OCRExtractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// NewOCRExtractorWithRunner injects a custom runner. Tests use this to stub
// the tesseract binary.
func NewOCRExtractorWithRunner(cfg OCRConfig, runner Runner, logger *slog.Logger) *OCRExtractor {
	e := NewOCRExtractor(cfg, logger)
	e.runner = runner
	return e
}

// ExtractText OCRs a screenshot and returns cleaned text.
func (e *OCRExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	e.logger.Debug("starting ocr extraction", "path", path, "lang", e.cfg.Lang)

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.Lang)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (stderr: %s)", err, strings.TrimSpace(string(errb)))
	}

	return CleanOCRText(string(out)), nil
}
