// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package view renders the catalog's HTML pages and is the single place where a
request error turns into a response.

Architecture:

  - Pages: one html/template set per page, each parsed together with the layout.
  - Data: every page receives the negotiated locale, pending flashes and the
    request ID in addition to its own values.
  - Errors: [Renderer.Fail] handles each error exactly once. Missing records
    flash and redirect to their list, everything else renders the error page
    (or a JSON envelope when the client asked for JSON).
*/
package view

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/internal/platform/ctxutil"
	"github.com/taibuivan/locallibrary/internal/platform/i18n"
	"github.com/taibuivan/locallibrary/internal/platform/lookup"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
	"github.com/taibuivan/locallibrary/internal/platform/session"
	"github.com/taibuivan/locallibrary/internal/platform/validate"
	"github.com/taibuivan/locallibrary/pkg/slug"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutFile = "templates/layout.html"
	pagesDir   = "templates/pages"
)

// Data is the value map handed to a page template.
type Data map[string]any

// FormMetrics receives rejected form submissions.
type FormMetrics interface {
	FormRejected(ctx context.Context, form string)
}

// Fallback tells [Renderer.Fail] where to send the visitor when a record is missing.
type Fallback struct {
	URL      string
	FlashKey string
}

// Renderer executes page templates.
type Renderer struct {
	pages      map[string]*template.Template
	translator *i18n.Translator
	metrics    FormMetrics
}

// New parses every embedded page together with the layout.
func New(translator *i18n.Translator, metrics FormMetrics) (*Renderer, error) {
	renderer := &Renderer{
		pages:      make(map[string]*template.Template),
		translator: translator,
		metrics:    metrics,
	}

	funcs := renderer.funcs()

	err := fs.WalkDir(templateFS, pagesDir, func(file string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() || path.Ext(file) != ".html" {
			return err
		}

		name := strings.TrimSuffix(strings.TrimPrefix(file, pagesDir+"/"), ".html")

		page, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return fmt.Errorf("view: failed to parse %s: %w", name, err)
		}
		renderer.pages[name] = page
		return nil
	})
	if err != nil {
		return nil, err
	}

	return renderer, nil
}

// # Rendering

// HTML renders a page with the given status code.
func (renderer *Renderer) HTML(writer http.ResponseWriter, request *http.Request, status int, page string, data Data) {
	ctx := request.Context()

	tmpl, ok := renderer.pages[page]
	if !ok {
		ctxutil.GetLogger(ctx).ErrorContext(ctx, "template_missing", slog.String("page", page))
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Buffer first so a failing template never produces half a page
	var buffer bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buffer, "layout", renderer.base(request, data)); err != nil {
		ctxutil.GetLogger(ctx).ErrorContext(ctx, "template_render_failed",
			slog.String("page", page),
			slog.Any("error", err),
		)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writer.Header().Set(constants.HeaderContentType, "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}

// Invalid re-renders a form with its violations and counts the rejection.
func (renderer *Renderer) Invalid(writer http.ResponseWriter, request *http.Request, form, page string, violations []apperr.FieldError, data Data) {
	ctx := request.Context()

	if renderer.metrics != nil {
		renderer.metrics.FormRejected(ctx, form)
	}
	ctxutil.GetLogger(ctx).DebugContext(ctx, "form_rejected",
		slog.String("form", form),
		slog.Int("violations", len(violations)),
	)

	if wantsJSON(request) {
		respond.JSON(writer, http.StatusBadRequest, respond.ErrorEnvelope{
			Error:   "Validation failed",
			Code:    apperr.CodeValidation,
			Key:     "error.validation",
			Details: violations,
		})
		return
	}

	data["errors"] = violations
	renderer.HTML(writer, request, http.StatusBadRequest, page, data)
}

// Redirect sends a 303 so the browser follows up with a GET.
func (renderer *Renderer) Redirect(writer http.ResponseWriter, request *http.Request, target string) {
	http.Redirect(writer, request, target, http.StatusSeeOther)
}

// Flash queues a notice on the visitor session. Storage failures are logged, not returned.
func (renderer *Renderer) Flash(request *http.Request, kind, key string) {
	ctx := request.Context()
	if err := ctxutil.GetSession(ctx).AddFlash(ctx, kind, key); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "flash_store_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// # Error Handling

// Fail handles a request error exactly once.
func (renderer *Renderer) Fail(writer http.ResponseWriter, request *http.Request, err error, fallback Fallback) {
	if lookup.IsNotFound(err) && fallback.URL != "" && !wantsJSON(request) {
		renderer.Flash(request, session.KindError, fallback.FlashKey)
		renderer.Redirect(writer, request, fallback.URL)
		return
	}
	renderer.Error(writer, request, err)
}

// Error renders the error page, or a JSON envelope for JSON clients.
func (renderer *Renderer) Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := respond.Classify(request, err)

	if wantsJSON(request) {
		respond.JSON(writer, appError.HTTPStatus, respond.ErrorEnvelope{
			Error:   appError.Message,
			Code:    appError.Code,
			Key:     appError.Key,
			Details: appError.Details,
		})
		return
	}

	renderer.HTML(writer, request, appError.HTTPStatus, "error", Data{
		"title":  "page.error",
		"error":  appError,
		"status": appError.HTTPStatus,
	})
}

// # Helpers

// base merges the per-request values every page needs.
func (renderer *Renderer) base(request *http.Request, data Data) Data {
	ctx := request.Context()

	merged := Data{
		"locale":     ctxutil.GetLocale(ctx),
		"request_id": ctxutil.GetRequestID(ctx),
		"path":       request.URL.Path,
	}

	flashes, err := ctxutil.GetSession(ctx).Flashes(ctx)
	if err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "flash_read_failed", slog.Any("error", err))
	}
	merged["flashes"] = flashes

	for key, value := range data {
		merged[key] = value
	}
	return merged
}

func (renderer *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"t": func(tag language.Tag, key string, args ...any) string {
			return renderer.translator.T(tag, key, args...)
		},
		// plain undoes the escaping applied on input; html/template escapes again on output
		"plain": html.UnescapeString,
		"date": func(date *time.Time) string {
			if date == nil {
				return ""
			}
			return date.Format("Jan 2, 2006")
		},
		"isodate":  validate.EncodeDate,
		"cssClass": slug.Class,
		"itoa":     strconv.Itoa,
		"errorsFor": func(violations []apperr.FieldError, field string) []apperr.FieldError {
			var matched []apperr.FieldError
			for _, violation := range violations {
				if violation.Field == field {
					matched = append(matched, violation)
				}
			}
			return matched
		},
	}
}

// wantsJSON reports whether the client prefers JSON over HTML.
func wantsJSON(request *http.Request) bool {
	accept := request.Header.Get(constants.HeaderAccept)
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
