package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	formdata "github.com/goliatone/go-formdata"
	"github.com/goliatone/go-formdata/pkg/openapi"
	"github.com/goliatone/go-formdata/pkg/pipeline"
	"github.com/goliatone/go-formdata/pkg/tui"
)

func main() {
	source := flag.String("source", "", "form document path (.json or .yaml)")
	openapiSource := flag.String("openapi", "", "OpenAPI document path, used instead of -source")
	operation := flag.String("operation", "", "operationId to import when -openapi is set")
	skin := flag.String("skin", "bootstrap5", "skin to render with")
	output := flag.String("output", "", "output file (stdout if empty)")
	page := flag.Bool("page", false, "wrap the fragments in a full HTML page")
	fill := flag.Bool("fill", false, "fill the form interactively and print the submission")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	ctx := context.Background()

	p, err := pipeline.New()
	if err != nil {
		logger.Fatal("setup failed", "err", err)
	}

	f, err := loadForm(ctx, p, *source, *openapiSource, *operation)
	if err != nil {
		logger.Fatal("load failed", "err", err)
	}

	if *fill {
		submission, err := tui.NewSession().Fill(ctx, f)
		if err != nil {
			logger.Fatal("fill failed", "err", err)
		}
		for _, line := range submissionLines(f, submission) {
			fmt.Println(line)
		}
		return
	}

	result, err := formdata.Render(f, *skin, formdata.WithPipeline(p))
	if err != nil {
		logger.Fatal("render failed", "err", err, "skins", p.Skins())
	}

	out := result.Markup
	if *page {
		out = formdata.Page(f.Header().ID, result)
	}

	if *output == "" {
		fmt.Println(out)
		return
	}
	if err := os.WriteFile(*output, []byte(out), 0o644); err != nil {
		logger.Fatal("write failed", "err", err, "path", *output)
	}
	logger.Info("form written", "path", *output, "skin", *skin)
}

func loadForm(ctx context.Context, p *pipeline.Pipeline, source, openapiSource, operation string) (*formdata.Form, error) {
	switch {
	case openapiSource != "":
		if operation == "" {
			return nil, fmt.Errorf("-operation is required with -openapi")
		}
		raw, err := os.ReadFile(openapiSource)
		if err != nil {
			return nil, err
		}
		return openapi.New().FormFromData(ctx, raw, operation)

	case source != "":
		raw, err := os.ReadFile(source)
		if err != nil {
			return nil, err
		}
		return p.Decode(ctx, raw, formatFromPath(source))

	default:
		return nil, fmt.Errorf("one of -source or -openapi is required")
	}
}

// submissionLines prints answers in form element order so output is stable
// run to run.
func submissionLines(f *formdata.Form, submission tui.Submission) []string {
	lines := make([]string, 0, len(submission))
	for _, element := range f.Elements() {
		values, ok := submission[element.Name]
		if !ok {
			continue
		}
		lines = append(lines, element.Name+"="+strings.Join(values, ","))
	}
	return lines
}

func formatFromPath(path string) pipeline.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return pipeline.FormatYAML
	default:
		return pipeline.FormatJSON
	}
}
