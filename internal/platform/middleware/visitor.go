// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	"github.com/taibuivan/locallibrary/internal/platform/constants"
	"github.com/taibuivan/locallibrary/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/locallibrary/internal/platform/request"
	"github.com/taibuivan/locallibrary/internal/platform/respond"
	"github.com/taibuivan/locallibrary/internal/platform/session"
	"github.com/taibuivan/locallibrary/internal/platform/telemetry"
)

// # Method Override

// MethodOverride lets HTML forms reach PUT and DELETE routes. A POST carrying
// "_method" in its query or body is re-dispatched with that method. Form
// bodies are parsed here under the same size cap handlers apply.
func MethodOverride() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Method == http.MethodPost {
				override := request.URL.Query().Get(constants.MethodOverrideField)
				if override == "" && isForm(request) {
					if err := requestutil.ParseBody(writer, request); err != nil {
						respond.Error(writer, request, err)
						return
					}
					override = request.PostForm.Get(constants.MethodOverrideField)
				}

				switch method := strings.ToUpper(strings.TrimSpace(override)); method {
				case http.MethodPut, http.MethodPatch, http.MethodDelete:
					request.Method = method
				}
			}

			next.ServeHTTP(writer, request)
		})
	}
}

func isForm(request *http.Request) bool {
	contentType := request.Header.Get(constants.HeaderContentType)
	return strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data")
}

// # Locale Negotiation

// LocaleMatcher resolves raw language tags against the supported locales.
type LocaleMatcher interface {
	MatchString(raw string) (language.Tag, bool)
	MatchAcceptLanguage(header string) (language.Tag, bool)
	Fallback() language.Tag
}

/*
Locale picks the visitor's locale and stores it in the request context.

Resolution order:
 1. The "lang" query parameter, which is also remembered in a cookie.
 2. The "lang" cookie.
 3. The Accept-Language header.
 4. The configured fallback.
*/
func Locale(matcher LocaleMatcher, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			tag := matcher.Fallback()

			if picked, ok := matcher.MatchString(request.URL.Query().Get(constants.LocaleQueryParam)); ok {
				http.SetCookie(writer, &http.Cookie{
					Name:     constants.LocaleCookieName,
					Value:    picked.String(),
					Path:     "/",
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
				next.ServeHTTP(writer, request.WithContext(ctxutil.WithLocale(request.Context(), picked)))
				return
			}

			if cookie, err := request.Cookie(constants.LocaleCookieName); err == nil {
				if matched, ok := matcher.MatchString(cookie.Value); ok {
					tag = matched
				}
			} else if matched, ok := matcher.MatchAcceptLanguage(request.Header.Get(constants.HeaderAcceptLanguage)); ok {
				tag = matched
			}

			next.ServeHTTP(writer, request.WithContext(ctxutil.WithLocale(request.Context(), tag)))
		})
	}
}

// # Visitor Session

// SessionLoader restores and issues visitor sessions.
type SessionLoader interface {
	Load(request *http.Request) *session.Session
	Issue(writer http.ResponseWriter, current *session.Session) error
}

// Session attaches the visitor session to the request context. New sessions
// get their cookie before the handler writes anything.
func Session(loader SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			current := loader.Load(request)

			if err := loader.Issue(writer, current); err != nil {
				ctxutil.GetLogger(ctx).WarnContext(ctx, "session_issue_failed", slog.Any("error", err))
			}

			next.ServeHTTP(writer, request.WithContext(ctxutil.WithSession(ctx, current)))
		})
	}
}

// # Distributed Tracing

// Trace opens a server span per request, continuing any propagated trace.
// The span is renamed to the matched route once routing has run.
func Trace() func(http.Handler) http.Handler {
	tracer := otel.Tracer(telemetry.InstrumentationName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := otel.GetTextMapPropagator().Extract(request.Context(), propagation.HeaderCarrier(request.Header))

			ctx, span := tracer.Start(ctx, request.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", request.Method),
					attribute.String("url.path", request.URL.Path),
					attribute.String("request.id", ctxutil.GetRequestID(ctx)),
				),
			)
			defer span.End()

			recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
			next.ServeHTTP(recorder, request.WithContext(ctx))

			if routeContext := chi.RouteContext(ctx); routeContext != nil {
				if pattern := routeContext.RoutePattern(); pattern != "" {
					span.SetName(request.Method + " " + pattern)
					span.SetAttributes(attribute.String("http.route", pattern))
				}
			}

			span.SetAttributes(attribute.Int("http.response.status_code", recorder.status))
			if recorder.status >= 500 {
				span.SetStatus(codes.Error, http.StatusText(recorder.status))
			}
		})
	}
}
