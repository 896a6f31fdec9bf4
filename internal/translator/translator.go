// Package translator cooks a directory of legacy AWS pricing files into a
// single aws-costs.json document.
package translator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/rshade/pricecook/internal/pricing"
)

// Options configures a Translator.
type Options struct {
	// Manifest names the input and output files. Zero value means DefaultManifest.
	Manifest Manifest

	// Indent pretty-prints the output document.
	Indent bool
}

// Result describes a completed run.
type Result struct {
	Document   *pricing.Document
	OutputPath string
}

// Translator runs the fixed ingest sequence over one directory.
type Translator struct {
	manifest Manifest
	indent   bool
	logger   zerolog.Logger
	ingester *pricing.Ingester
}

// New returns a Translator. It fails if the manifest is invalid.
func New(opts Options, logger zerolog.Logger) (*Translator, error) {
	m := opts.Manifest
	if len(m.Instances) == 0 && m.EBS == "" && m.S3 == "" && m.Output == "" {
		m = DefaultManifest()
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	return &Translator{
		manifest: m,
		indent:   opts.Indent,
		logger:   logger,
		ingester: pricing.NewIngester(logger),
	}, nil
}

// Build ingests every input file under dir, in manifest order, and returns the
// merged document. Nothing is written.
func (t *Translator) Build(ctx context.Context, dir string) (*pricing.Document, error) {
	doc := pricing.NewDocument()

	for _, src := range t.manifest.Instances {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(dir, src.File)
		stats, err := t.ingester.IngestInstances(doc.Instances, path, src.Class)
		if err != nil {
			return nil, fmt.Errorf("ingesting %s: %w", src.Class, err)
		}
		t.logStats(path, stats).Str("class", src.Class).Msg("Instance pricing loaded")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, t.manifest.EBS)
	stats, err := t.ingester.IngestEBS(doc.EBS, path)
	if err != nil {
		return nil, fmt.Errorf("ingesting EBS: %w", err)
	}
	t.logStats(path, stats).Msg("EBS pricing loaded")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path = filepath.Join(dir, t.manifest.S3)
	stats, err = t.ingester.IngestS3(doc.S3, path)
	if err != nil {
		return nil, fmt.Errorf("ingesting S3: %w", err)
	}
	t.logStats(path, stats).Msg("S3 pricing loaded")

	return doc, nil
}

// Run builds the document for dir and writes it to the manifest's output file
// in the same directory. The output is only written once every input has been
// ingested.
func (t *Translator) Run(ctx context.Context, dir string) (*Result, error) {
	doc, err := t.Build(ctx, dir)
	if err != nil {
		return nil, err
	}

	data, err := encodeDocument(doc, t.indent)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}

	outPath := filepath.Join(dir, t.manifest.Output)
	if err := writeFileAtomic(data, outPath); err != nil {
		return nil, err
	}

	t.logger.Info().
		Str("output", outPath).
		Int("bytes", len(data)).
		Int("instance_regions", len(doc.Instances)).
		Int("ebs_regions", len(doc.EBS)).
		Int("s3_regions", len(doc.S3)).
		Msg("Wrote cost document")

	return &Result{Document: doc, OutputPath: outPath}, nil
}

func (t *Translator) logStats(path string, stats pricing.IngestStats) *zerolog.Event {
	return t.logger.Info().
		Str("file", filepath.Base(path)).
		Int("regions", stats.Regions).
		Int("products", stats.Products).
		Int("parsed", stats.Parsed).
		Int("skipped", stats.Skipped)
}
