// Package pdf ingests rate-sheet PDFs: pdfcpu pulls per-page text out of
// the content streams, a heuristic splitter recovers cell grids from the
// text layout, and the core extractor turns those into price tables.
// Any collaborator producing page text and cell grids can replace this
// adapter behind catalog.Source.
package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"

	"ratefinder/core/extract"
	"ratefinder/core/types"
	"ratefinder/internal/errors"
	"ratefinder/internal/logging"
)

// Adapter loads rate-sheet PDFs into ExtractedPDFData.
type Adapter struct {
	extractor   *extract.Extractor
	maxFileSize int64
	log         *zap.Logger
}

// NewAdapter creates an Adapter. maxFileSizeMB of 0 disables the size
// check.
func NewAdapter(maxFileSizeMB int) *Adapter {
	return &Adapter{
		extractor:   extract.NewExtractor(),
		maxFileSize: int64(maxFileSizeMB) * 1024 * 1024,
		log:         logging.Logger,
	}
}

// Extract parses one PDF. Failures on an individual page or table are
// logged and skipped; the whole document fails only when it cannot be
// read or yields no text at all.
func (a *Adapter) Extract(path string) (*types.ExtractedPDFData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Extraction(fmt.Sprintf("opening %s", path), err)
	}
	defer f.Close()

	if a.maxFileSize > 0 {
		info, err := f.Stat()
		if err != nil {
			return nil, errors.Extraction(fmt.Sprintf("stat %s", path), err)
		}
		if info.Size() > a.maxFileSize {
			return nil, errors.Newf(errors.TypeExtraction,
				"%s exceeds maximum file size (%d bytes)", path, a.maxFileSize)
		}
	}

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, errors.Extraction(fmt.Sprintf("reading %s", path), err)
	}

	result := &types.ExtractedPDFData{
		Metadata:    types.PDFMetadata{FilePath: path, TotalPages: ctx.PageCount},
		ServiceData: make(map[string]*types.ServicePriceData),
	}

	sawText := false
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		text := pageText(ctx, pageNr)
		if text == "" {
			continue
		}
		sawText = true

		if pageNr == 1 {
			fillMetadata(&result.Metadata, text)
		}

		table, err := a.extractor.Extract(text, gridFromText(text), pageNr)
		if err != nil {
			a.log.Warn("skipping page", zap.String("path", path),
				zap.Int("page", pageNr), zap.Error(err))
			continue
		}
		if table != nil {
			result.PriceTables = append(result.PriceTables, *table)
		}
	}

	if !sawText {
		return nil, errors.Newf(errors.TypeExtraction, "no text content found in %s", path)
	}

	result.Metadata.ExtractedTables = len(result.PriceTables)
	result.ServiceData, result.ServiceOrder = extract.Assemble(result.PriceTables)

	a.log.Info("extracted rate sheet",
		zap.String("path", path),
		zap.Int("pages", ctx.PageCount),
		zap.Int("tables", len(result.PriceTables)),
		zap.Int("services", len(result.ServiceData)))

	return result, nil
}

// fillMetadata takes the document title from the first non-empty line and
// scans the opening lines for an effective-date marker.
func fillMetadata(meta *types.PDFMetadata, firstPageText string) {
	lines := strings.Split(firstPageText, "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			meta.Title = line
			break
		}
	}

	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		if strings.Contains(strings.ToLower(line), "effective") && strings.ContainsAny(line, "0123456789") {
			meta.EffectiveDate = strings.TrimSpace(line)
			break
		}
	}
}
