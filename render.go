package main

import (
	"io"
	"time"

	"github.com/google/uuid"

	"statusdeck/config"
	"statusdeck/deck"
	"statusdeck/export"
	"statusdeck/i18n"
	"statusdeck/logger"
	"statusdeck/report"
	"statusdeck/statusreport"
)

const (
	appName       = "statusdeck"
	renderService = "render"
)

// renderOptions holds the settings of one render.
type renderOptions struct {
	OutputPath string
	Format     string
	ThemePath  string
	Language   string
	LogDir     string
	// Now replaces the clock for the default report date.
	Now time.Time
}

// render decodes the payload read from in and writes the deck, or the
// requested handout, to opts.OutputPath.
func render(in io.Reader, opts renderOptions) (*statusreport.Result, error) {
	runID := uuid.New().String()
	log := logger.NewLogger()
	if opts.LogDir != "" {
		if err := log.Init(opts.LogDir, runID); err != nil {
			return nil, WrapError(renderService, "log", err)
		}
		defer log.Close()
	}

	format, err := export.FormatFor(opts.OutputPath, opts.Format)
	if err != nil {
		return nil, WrapError(renderService, "format", err)
	}

	lang, err := i18n.ParseLanguage(opts.Language)
	if err != nil {
		return nil, WrapError(renderService, "language", err)
	}
	i18n.SetLanguage(lang)

	theme, err := config.LoadTheme(opts.ThemePath)
	if err != nil {
		return nil, WrapError(renderService, "theme", err)
	}

	payload, err := report.Decode(in, report.Defaults{
		Now:            opts.Now,
		PrimaryColor:   theme.PrimaryColor,
		SecondaryColor: theme.SecondaryColor,
	})
	if err != nil {
		return nil, WrapError(renderService, "decode", err)
	}
	log.Logf("Rendering %q as %s to %s", payload.ProjectName, format, opts.OutputPath)

	buildOpts := statusreport.Options{Theme: theme, Logger: log}

	if !format.IsHandout() {
		backend := export.NewGoPPTBackend(payload.ProjectName, appName)
		result, err := statusreport.Build(backend, payload, buildOpts)
		if err != nil {
			return nil, WrapError(renderService, "build", err)
		}
		backend.SetTitle(result.Outline.Title)
		if err := backend.Save(opts.OutputPath); err != nil {
			return nil, WrapError(renderService, "save", err)
		}
		return result, nil
	}

	// Handouts are built from the outline the slide builder records.
	result, err := statusreport.Build(deck.NewRecorder(), payload, buildOpts)
	if err != nil {
		return nil, WrapError(renderService, "build", err)
	}
	if err := export.WriteHandout(format, result.Outline, opts.OutputPath, appName); err != nil {
		return nil, WrapError(renderService, "save", WrapOperationErrorf("export %s handout", err, format))
	}
	return result, nil
}
