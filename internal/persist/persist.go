// Package persist writes the named detail tables and the data-source
// manifest to durable storage.
package persist

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ousamg/vcqc/internal/report"
)

// Table file names, one per detail table.
const (
	TableVCFQuality  = "vcfquality"
	TableLowCoverage = "lowcoverage"
	TableBaseQuality = "basequality"

	sourcesFile = "sources.txt"
)

// Write stores every non-empty detail table as <name>.json plus a gzipped
// copy under dir, and the provenance manifest as sources.txt. Empty tables
// produce no file.
func Write(rpt *report.Report, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	if rpt.VCFQuality != nil {
		if err := writeTable(dir, TableVCFQuality, rpt.VCFQuality); err != nil {
			return err
		}
	}

	if rpt.LowCoverage != nil {
		lowCoverage := map[string]any{
			"depth": rpt.LowCoverage.Depth,
			"size":  rpt.LowCoverage.Size,
		}
		if err := writeTable(dir, TableLowCoverage, lowCoverage); err != nil {
			return err
		}
	}

	if rpt.BaseQuality != nil {
		if err := writeTable(dir, TableBaseQuality, rpt.BaseQuality); err != nil {
			return err
		}
	}

	return writeSources(rpt, dir)
}

func writeTable(dir, name string, value any) error {
	path := filepath.Join(dir, name+".json")

	file, err := os.Create(path) //nolint:gosec // writing our own output files
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return compressFile(path)
}

func writeSources(rpt *report.Report, dir string) error {
	path := filepath.Join(dir, sourcesFile)

	file, err := os.Create(path) //nolint:gosec // writing our own output files
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	for _, source := range rpt.Sources {
		fmt.Fprintf(file, "%s\t%s\n", source.Sample, source.Path)
	}

	return nil
}

func compressFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // reading our own output file
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	gzFile, err := os.Create(path + ".gz")
	if err != nil {
		return fmt.Errorf("creating %s.gz: %w", path, err)
	}
	defer gzFile.Close()

	gzWriter := gzip.NewWriter(gzFile)

	if _, err := gzWriter.Write(data); err != nil {
		return fmt.Errorf("compressing %s: %w", path, err)
	}

	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("compressing %s: %w", path, err)
	}

	return gzFile.Close()
}
