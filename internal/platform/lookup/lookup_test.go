// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lookup_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/internal/platform/dberr"
	"github.com/taibuivan/locallibrary/internal/platform/lookup"
)

/*
TestParseID covers accepted ids and the malformed ones rejected before storage.
*/
func TestParseID(t *testing.T) {
	tests := []struct {
		raw   string
		id    int
		valid bool
	}{
		{"1", 1, true},
		{"9999", 9999, true},
		{" 12 ", 12, true},
		{"abc", 0, false},
		{"", 0, false},
		{"1.5", 0, false},
		{"0", 0, false},
		{"-4", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, err := lookup.ParseID(tt.raw)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.id, id)
				return
			}

			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeInvalidID))
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
			assert.Equal(t, "error.id_format_int", ae.Key)
		})
	}
}

/*
TestMustFind verifies the three outcomes of a lookup.
*/
func TestMustFind(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")

	find := func(_ context.Context, id int) (string, error) {
		switch id {
		case 1:
			return "Emma", nil
		case 2:
			return "", dberr.ErrNotFound
		default:
			return "", apperr.Internal(boom)
		}
	}

	title, err := lookup.MustFind(ctx, "Book", find, 1)
	require.NoError(t, err)
	assert.Equal(t, "Emma", title)

	_, err = lookup.MustFind(ctx, "Book", find, 2)
	require.Error(t, err)
	assert.True(t, lookup.IsNotFound(err))
	assert.Equal(t, "Book not found", err.Error())

	_, err = lookup.MustFind(ctx, "Book", find, 3)
	assert.ErrorIs(t, err, boom)
	assert.False(t, lookup.IsNotFound(err))
}
