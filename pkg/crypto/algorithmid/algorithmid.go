// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package algorithmid classifies DER-encoded X.509 AlgorithmIdentifiers
// (RFC 5912) into the closed signature-algorithm set of pkg/crypto/signature.
//
// Everything here operates on untrusted bytes. Parsing is strict DER via
// golang.org/x/crypto/cryptobyte, and every branch that accepts an encoding
// does so against an exact rule; unrecognized or non-canonical inputs are
// rejected rather than guessed at.
package algorithmid

import (
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// ParamsPresence describes how the optional parameters of an
// AlgorithmIdentifier were encoded.
//
// The distinction is load-bearing: RFC 5912 requires ECDSA parameters to be
// absent, while RSA PKCS#1 v1.5 parameters must be NULL (with absent also
// accepted, for compatibility with non-compliant OCSP responders). Collapsing
// these states is how signature-algorithm confusion bugs start, so the
// presence is an explicit enum rather than a nil-slice pun.
type ParamsPresence uint8

// Parameter presence enums.
const (
	// ParamsAbsent means the SEQUENCE ended after the OID.
	ParamsAbsent ParamsPresence = iota

	// ParamsNULL means the parameters are exactly a DER NULL (05 00).
	ParamsNULL

	// ParamsOther means some other single TLV is present. Its contents are
	// not validated at extraction time.
	ParamsOther
)

// Identifier is the decomposed form of an AlgorithmIdentifier. OID holds the
// content octets of the OBJECT IDENTIFIER and Params the raw parameters TLV
// (nil when absent). Both alias the caller's input and are only valid while
// it is.
type Identifier struct {
	OID      []byte
	Params   []byte
	Presence ParamsPresence
}

// Parse decodes a single AlgorithmIdentifier:
//
//	AlgorithmIdentifier ::= SEQUENCE {
//	    algorithm   OBJECT IDENTIFIER,
//	    parameters  ANY DEFINED BY algorithm OPTIONAL
//	}
//
// The input must contain exactly one SEQUENCE with no trailing bytes, and
// nothing may follow the single optional parameters TLV inside it. RFC 5912's
// notation for AlgorithmIdentifier has no extension point after parameters.
func Parse(raw []byte) (Identifier, error) {
	input := cryptobyte.String(raw)

	var seq cryptobyte.String
	if !input.ReadASN1(&seq, asn1.SEQUENCE) || !input.Empty() {
		return Identifier{}, ErrMalformedAlgorithmIdentifier
	}

	var oid cryptobyte.String
	if !seq.ReadASN1(&oid, asn1.OBJECT_IDENTIFIER) {
		return Identifier{}, ErrMalformedAlgorithmIdentifier
	}

	ident := Identifier{OID: oid, Presence: ParamsAbsent}
	if seq.Empty() {
		return ident, nil
	}

	var params cryptobyte.String
	var tag asn1.Tag
	if !seq.ReadAnyASN1Element(&params, &tag) || !seq.Empty() {
		return Identifier{}, ErrMalformedAlgorithmIdentifier
	}

	ident.Params = params
	// A DER NULL is the exact two bytes 05 00. A NULL tag with content is
	// not a NULL value and falls through to ParamsOther.
	if tag == asn1.NULL && len(params) == 2 {
		ident.Presence = ParamsNULL
	} else {
		ident.Presence = ParamsOther
	}

	return ident, nil
}

// nullOrAbsent reports whether the parameters satisfy the RSA PKCS#1 v1.5 and
// DSA rule: NULL per RFC 5912, or absent for interoperability.
func (i Identifier) nullOrAbsent() bool {
	return i.Presence == ParamsNULL || i.Presence == ParamsAbsent
}

// absent reports whether the parameters satisfy the strict ECDSA rule.
func (i Identifier) absent() bool {
	return i.Presence == ParamsAbsent
}
