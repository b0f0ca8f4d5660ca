// Package converter turns a directory of power YAML files into Roll20 macro
// files.
package converter

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/cory-johannsen/powerconv/internal/config"
	"github.com/cory-johannsen/powerconv/internal/power"
	"github.com/cory-johannsen/powerconv/internal/roll20"
)

// Result summarises one Run.
type Result struct {
	// Written holds the output path of every converted file, in conversion order.
	Written []string
	// Failed holds the input path of every file skipped under the skip policy.
	Failed []string
}

// Converter converts power files found in a source directory.
type Converter struct {
	fs     afero.Fs
	cfg    config.ConvertConfig
	logger *zap.Logger
}

// New constructs a Converter reading and writing through fs.
//
// Precondition: fs and logger must be non-nil; cfg must pass config validation.
// Postcondition: returns a non-nil Converter.
func New(fs afero.Fs, cfg config.ConvertConfig, logger *zap.Logger) *Converter {
	return &Converter{fs: fs, cfg: cfg, logger: logger}
}

// Run converts every file directly inside dir whose name ends in the input
// extension. Files are converted one at a time in name order.
//
// Under the abort policy the first failing file ends the run and its error is
// returned. Under the skip policy failures are logged, recorded in
// Result.Failed and returned together once every file has been tried.
//
// Precondition: dir must exist and be readable.
// Postcondition: Result.Written lists every output written before returning.
func (c *Converter) Run(dir string) (Result, error) {
	start := time.Now()

	files, err := c.powerFiles(dir)
	if err != nil {
		return Result{}, err
	}
	c.logger.Info("found power files", zap.String("dir", dir), zap.Int("count", len(files)))

	var (
		res  Result
		errs error
	)
	for _, path := range files {
		out, err := c.ConvertFile(path)
		if err != nil {
			if c.cfg.OnError != config.OnErrorSkip {
				return res, err
			}
			c.logger.Warn("skipping power file", zap.String("file", path), zap.Error(err))
			res.Failed = append(res.Failed, path)
			errs = multierr.Append(errs, err)
			continue
		}
		res.Written = append(res.Written, out)
	}

	c.logger.Info("conversion complete",
		zap.Int("written", len(res.Written)),
		zap.Int("failed", len(res.Failed)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, errs
}

// ConvertFile converts a single power file and returns the path written.
//
// Precondition: path names a readable power file.
// Postcondition: the output file holds the joined macro segments, or a
// non-nil error is returned and nothing is written.
func (c *Converter) ConvertFile(path string) (string, error) {
	out := c.OutputPath(path)
	c.logger.Info("converting", zap.String("file", path), zap.String("output", out))

	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return "", fmt.Errorf("reading power file %s: %w", path, err)
	}
	p, err := power.Parse(path, data)
	if err != nil {
		return "", err
	}

	segments, err := roll20.Segments(p)
	if err != nil {
		return "", fmt.Errorf("rendering power file %s: %w", path, err)
	}
	c.logger.Debug("rendered segments", zap.String("file", path), zap.Int("segments", len(segments)))

	if err := c.fs.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return "", fmt.Errorf("creating output directory for %s: %w", out, err)
	}
	if err := afero.WriteFile(c.fs, out, []byte(roll20.Join(segments)), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", out, err)
	}
	return out, nil
}

// OutputPath derives the output file for an input power file: the input
// extension becomes the output extension and the first directory element
// equal to the source segment becomes the output segment. Paths without a
// source segment keep their directory.
func (c *Converter) OutputPath(in string) string {
	base := strings.TrimSuffix(filepath.Base(in), c.cfg.InputExt) + c.cfg.OutputExt

	parts := strings.Split(filepath.ToSlash(filepath.Dir(in)), "/")
	for i, p := range parts {
		if p == c.cfg.SourceSegment {
			parts[i] = c.cfg.OutputSegment
			break
		}
	}
	return filepath.Join(filepath.FromSlash(strings.Join(parts, "/")), base)
}

func (c *Converter) powerFiles(dir string) ([]string, error) {
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), c.cfg.InputExt) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
