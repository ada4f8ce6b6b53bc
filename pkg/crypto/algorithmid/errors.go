// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package algorithmid

import "errors"

// Typed errors. All three mean "do not trust this signature"; they differ
// only in what the caller may want to log.
var (
	// ErrMalformedAlgorithmIdentifier is returned when the input does not
	// decode as a single well-formed AlgorithmIdentifier SEQUENCE.
	ErrMalformedAlgorithmIdentifier = errors.New("malformed AlgorithmIdentifier")

	// ErrUnsupportedParameters is returned when the OID names a known
	// algorithm but the parameters violate its required shape or the
	// accepted RSASSA-PSS policy. These encodings come from known
	// non-compliant producers and are never reported to a Recorder.
	ErrUnsupportedParameters = errors.New("unsupported algorithm parameters")

	// ErrUnknownAlgorithm is returned when the OID matches nothing in the
	// registry. The OID and parameter bytes are reported to the Recorder,
	// if one was provided.
	ErrUnknownAlgorithm = errors.New("unknown signature algorithm")

	// ErrUnsupportedDigestAlgorithm is returned by ParseHashAlgorithm for
	// digests outside the SHA-1/SHA-2 set accepted here.
	ErrUnsupportedDigestAlgorithm = errors.New("unsupported digest algorithm")
)
