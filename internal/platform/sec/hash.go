// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrWeakSecret is returned when the configured secret is too short to derive keys from.
var ErrWeakSecret = errors.New("sec: secret must be at least 16 bytes")

// minSecretLength is the shortest SESSION_SECRET accepted at startup.
const minSecretLength = 16

// DeriveKey expands the application secret into a purpose-bound key of the requested size.
//
// # Parameters
//   - secret: the raw SESSION_SECRET value
//   - info: a label naming what the key is used for
//   - size: key length in bytes
func DeriveKey(secret, info string, size int) ([]byte, error) {
	if len(secret) < minSecretLength {
		return nil, ErrWeakSecret
	}

	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(info))

	key := make([]byte, size)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, err
	}
	return key, nil
}
