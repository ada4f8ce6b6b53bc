// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package algorithmid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var derNULL = []byte{0x05, 0x00}

// buildAlgorithmID DER-encodes SEQUENCE{OID, params...}. oid is given as
// content octets; params are raw pre-encoded TLVs.
func buildAlgorithmID(t *testing.T, oid []byte, params ...[]byte) []byte {
	t.Helper()

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.OBJECT_IDENTIFIER, func(b *cryptobyte.Builder) { b.AddBytes(oid) })
		for _, p := range params {
			b.AddBytes(p)
		}
	})

	out, err := b.Bytes()
	assert.NoError(t, err)

	return out
}

func TestParse(t *testing.T) {
	t.Run("NoParams", func(t *testing.T) {
		ident, err := Parse(buildAlgorithmID(t, oidECDSAWithSHA256))
		assert.NoError(t, err)
		assert.Equal(t, []byte(oidECDSAWithSHA256), ident.OID)
		assert.Equal(t, ParamsAbsent, ident.Presence)
		assert.Nil(t, ident.Params)
	})

	t.Run("NULLParams", func(t *testing.T) {
		ident, err := Parse(buildAlgorithmID(t, oidSHA256WithRSAEncryption, derNULL))
		assert.NoError(t, err)
		assert.Equal(t, ParamsNULL, ident.Presence)
		assert.Equal(t, derNULL, ident.Params)
	})

	t.Run("OtherParams", func(t *testing.T) {
		// A stray INTEGER 5.
		ident, err := Parse(buildAlgorithmID(t, oidSHA256WithRSAEncryption, []byte{0x02, 0x01, 0x05}))
		assert.NoError(t, err)
		assert.Equal(t, ParamsOther, ident.Presence)
		assert.Equal(t, []byte{0x02, 0x01, 0x05}, ident.Params)
	})

	t.Run("NULLWithContentIsNotNULL", func(t *testing.T) {
		ident, err := Parse(buildAlgorithmID(t, oidSHA256WithRSAEncryption, []byte{0x05, 0x01, 0x00}))
		assert.NoError(t, err)
		assert.Equal(t, ParamsOther, ident.Presence)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		_, err := Parse(nil)
		assert.ErrorIs(t, err, ErrMalformedAlgorithmIdentifier)
	})

	t.Run("NotASequence", func(t *testing.T) {
		_, err := Parse([]byte{0x02, 0x01, 0x01})
		assert.ErrorIs(t, err, ErrMalformedAlgorithmIdentifier)
	})

	t.Run("TruncatedSequence", func(t *testing.T) {
		valid := buildAlgorithmID(t, oidSHA256WithRSAEncryption, derNULL)
		_, err := Parse(valid[:len(valid)-1])
		assert.ErrorIs(t, err, ErrMalformedAlgorithmIdentifier)
	})

	t.Run("TrailingBytesAfterSequence", func(t *testing.T) {
		raw := buildAlgorithmID(t, oidSHA256WithRSAEncryption, derNULL)
		_, err := Parse(append(raw, 0x00))
		assert.ErrorIs(t, err, ErrMalformedAlgorithmIdentifier)
	})

	t.Run("TrailingFieldInsideSequence", func(t *testing.T) {
		// Two TLVs after the OID. AlgorithmIdentifier has no extension
		// point after parameters.
		_, err := Parse(buildAlgorithmID(t, oidSHA256WithRSAEncryption, derNULL, derNULL))
		assert.ErrorIs(t, err, ErrMalformedAlgorithmIdentifier)
	})

	t.Run("FirstFieldNotAnOID", func(t *testing.T) {
		var b cryptobyte.Builder
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1Uint64(1)
		})
		raw, err := b.Bytes()
		assert.NoError(t, err)

		_, err = Parse(raw)
		assert.ErrorIs(t, err, ErrMalformedAlgorithmIdentifier)
	})
}
