package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// OCRConfig configures the external OCR binaries.
type OCRConfig struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	DPI       int    // rasterization DPI for scanned PDFs, default 200
	MaxPages  int    // 0 = no limit
}

// OCR renders document pages to images and runs tesseract over them.
type OCR struct {
	cfg    OCRConfig
	runner Runner
	logger *slog.Logger
}

func NewOCR(cfg OCRConfig, logger *slog.Logger) *OCR {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	return &OCR{cfg: cfg, runner: execRunner{}, logger: logger}
}

// RenderPDF rasterizes each PDF page and OCRs it, returning per-page text.
func (o *OCR) RenderPDF(ctx context.Context, data []byte) ([]string, error) {
	tmpDir, err := os.MkdirTemp("", "ia-ocr-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			o.logger.Warn("failed to remove temp dir", "path", tmpDir, "error", err)
		}
	}()

	in := filepath.Join(tmpDir, "doc.pdf")
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return nil, err
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	if _, errb, err := o.runner.Run(ctx, o.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", o.cfg.DPI), "-png", in, prefix); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w (%s)", err, truncate(string(errb), 512))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if o.cfg.MaxPages > 0 && len(matches) > o.cfg.MaxPages {
		matches = matches[:o.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no images")
	}

	var texts []string
	for _, img := range matches {
		txt, err := o.tesseract(ctx, img)
		if err != nil {
			o.logger.Warn("page ocr failed", "image", img, "error", err)
			texts = append(texts, "")
			continue
		}
		texts = append(texts, txt)
	}
	return texts, nil
}

// Image OCRs a single raster image.
func (o *OCR) Image(ctx context.Context, data []byte, ext string) (string, error) {
	tmp, err := os.CreateTemp("", "ia-img-*."+strings.TrimPrefix(ext, "."))
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(tmp.Name()); err != nil {
			o.logger.Warn("failed to remove temp file", "path", tmp.Name(), "error", err)
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	return o.tesseract(ctx, tmp.Name())
}

func (o *OCR) tesseract(ctx context.Context, path string) (string, error) {
	// tesseract <file> stdout
	out, errb, err := o.runner.Run(ctx, o.cfg.Tesseract, path, "stdout")
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
	}
	return string(out), nil
}
