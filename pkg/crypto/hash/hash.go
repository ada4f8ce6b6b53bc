// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package hash provides the digest algorithms referenced by X.509 signature
// algorithms.
package hash

import "crypto"

// Algorithm is a digest algorithm, as named inside an AlgorithmIdentifier
// either as the message digest of a signature scheme or as the hash carried
// by an MGF1 mask generation function.
type Algorithm uint16

// Digest enums. None is the zero value and doubles as "no digest defined".
const (
	None   Algorithm = 0
	SHA1   Algorithm = 2
	SHA256 Algorithm = 4
	SHA384 Algorithm = 5
	SHA512 Algorithm = 6
)

// String makes Algorithm printable.
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case SHA1:
		return "sha-1"
	case SHA256:
		return "sha-256"
	case SHA384:
		return "sha-384"
	case SHA512:
		return "sha-512"
	default:
		return "invalid hash algorithm"
	}
}

// CryptoHash returns the crypto.Hash implementation for the given Algorithm.
func (a Algorithm) CryptoHash() crypto.Hash {
	switch a {
	case None:
		return crypto.Hash(0)
	case SHA1:
		return crypto.SHA1
	case SHA256:
		return crypto.SHA256
	case SHA384:
		return crypto.SHA384
	case SHA512:
		return crypto.SHA512
	default:
		return crypto.Hash(0)
	}
}

// Size returns the digest length in bytes, or zero for None.
func (a Algorithm) Size() int {
	h := a.CryptoHash()
	if h == crypto.Hash(0) {
		return 0
	}

	return h.Size()
}

// Insecure returns true for digests that are no longer considered collision
// resistant.
func (a Algorithm) Insecure() bool {
	return a == SHA1
}

// Algorithms returns all defined digest algorithms.
func Algorithms() map[Algorithm]struct{} {
	return map[Algorithm]struct{}{
		None:   {},
		SHA1:   {},
		SHA256: {},
		SHA384: {},
		SHA512: {},
	}
}
