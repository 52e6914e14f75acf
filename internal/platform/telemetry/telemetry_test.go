// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package telemetry_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/locallibrary/internal/platform/telemetry"
)

/*
TestSetup_WithoutEndpoint keeps the no-op providers and still records metrics safely.
*/
func TestSetup_WithoutEndpoint(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tel, err := telemetry.Setup(context.Background(), telemetry.Options{ServiceName: "test"}, logger)
	require.NoError(t, err)

	assert.NotPanics(t, func() { tel.FormRejected(context.Background(), "author") })
	assert.NoError(t, tel.Shutdown(context.Background()))
}

/*
TestTelemetry_NilSafe allows handlers built without telemetry.
*/
func TestTelemetry_NilSafe(t *testing.T) {
	var tel *telemetry.Telemetry
	assert.NotPanics(t, func() { tel.FormRejected(context.Background(), "book") })
	assert.NoError(t, tel.Shutdown(context.Background()))
}
