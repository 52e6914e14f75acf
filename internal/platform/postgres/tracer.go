// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/taibuivan/locallibrary/internal/platform/telemetry"
)

// maxStatementLength caps the SQL text recorded on a span.
const maxStatementLength = 512

// queryTracer records every query as a child span of the request span.
type queryTracer struct {
	tracer trace.Tracer
}

func newQueryTracer() *queryTracer {
	return &queryTracer{tracer: otel.Tracer(telemetry.InstrumentationName)}
}

// TraceQueryStart implements pgx.QueryTracer.
func (tracer *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	ctx, _ = tracer.tracer.Start(ctx, "postgres.query",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.statement", statement(data.SQL)),
		),
	)
	return ctx
}

// TraceQueryEnd implements pgx.QueryTracer.
func (tracer *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	span.SetAttributes(attribute.Int64("db.rows_affected", data.CommandTag.RowsAffected()))

	// A missing row is an answer, not a failure
	if data.Err != nil && !errors.Is(data.Err, pgx.ErrNoRows) {
		span.RecordError(data.Err)
		span.SetStatus(codes.Error, data.Err.Error())
	}
}

// statement collapses whitespace so multi-line queries read as one line.
func statement(sql string) string {
	compact := strings.Join(strings.Fields(sql), " ")
	if len(compact) > maxStatementLength {
		return compact[:maxStatementLength]
	}
	return compact
}
