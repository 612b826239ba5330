package rendering

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CompilationTimeout is the maximum time to wait for LaTeX compilation
const CompilationTimeout = 30 * time.Second

// CompileLaTeX compiles a LaTeX file using pdflatex
func CompileLaTeX(texPath string, workDir string) (pdfPath string, logOutput string, err error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return "", "", &CompilationError{
			Message: "pdflatex not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	if workDir == "" {
		var err error
		workDir, err = os.MkdirTemp("", "latex-compile-*")
		if err != nil {
			return "", "", &CompilationError{
				Message: "failed to create temporary working directory",
				Cause:   err,
			}
		}
	} else {
		if err := os.MkdirAll(workDir, 0755); err != nil {
			return "", "", &CompilationError{
				Message: fmt.Sprintf("failed to create working directory: %s", workDir),
				Cause:   err,
			}
		}
	}

	texBaseName := filepath.Base(texPath)
	workTexPath := filepath.Join(workDir, texBaseName)

	if texPath != workTexPath {
		texContent, err := os.ReadFile(texPath)
		if err != nil {
			return "", "", &RenderError{
				Message: fmt.Sprintf("failed to read LaTeX file: %s", texPath),
				Cause:   err,
			}
		}
		if err := os.WriteFile(workTexPath, texContent, 0644); err != nil {
			return "", "", &CompilationError{
				Message: fmt.Sprintf("failed to write LaTeX file to working directory: %s", workDir),
				Cause:   err,
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), CompilationTimeout)
	defer cancel()

	// -interaction=nonstopmode prevents interactive prompts
	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", "-output-directory", workDir, workTexPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	logOutput = stdout.String() + stderr.String()

	pdfPath = filepath.Join(workDir, strings.TrimSuffix(texBaseName, ".tex")+".pdf")
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		return "", logOutput, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	// LaTeX can produce a PDF alongside errors; surface both.
	if runErr != nil {
		return pdfPath, logOutput, &CompilationError{
			Message:   "LaTeX compilation completed with errors (PDF may be incomplete)",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	return pdfPath, logOutput, nil
}

// CleanupCompilationArtifacts removes the auxiliary files pdflatex leaves
// next to the compiled PDF. Temporary working directories are removed whole.
func CleanupCompilationArtifacts(workDir, texPath string) error {
	if workDir == "" {
		return nil
	}

	if strings.Contains(workDir, "latex-compile-") {
		return os.RemoveAll(workDir)
	}

	base := strings.TrimSuffix(filepath.Base(texPath), ".tex")
	for _, ext := range []string{".aux", ".log", ".out", ".toc"} {
		_ = os.Remove(filepath.Join(workDir, base+ext))
	}

	return nil
}
