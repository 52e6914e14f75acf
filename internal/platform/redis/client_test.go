// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/locallibrary/internal/platform/redis"
)

/*
TestOptions keeps the address and database from the URL.
*/
func TestOptions(t *testing.T) {
	options, err := redis.Options("redis://:secret@cache:6379/2")
	require.NoError(t, err)

	assert.Equal(t, "cache:6379", options.Addr)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, 5, options.PoolSize)
}

/*
TestOptions_Invalid rejects other schemes.
*/
func TestOptions_Invalid(t *testing.T) {
	_, err := redis.Options("http://cache:6379")
	assert.ErrorContains(t, err, "invalid URL")
}
