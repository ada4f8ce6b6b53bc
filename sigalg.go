// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package sigalg identifies and validates the signature algorithm bound to a
// DER-encoded X.509 AlgorithmIdentifier, for use by certificate and signed
// object verification pipelines.
//
// Classification is strict: an input either maps to exactly one value of the
// closed signature.Algorithm set, or it is rejected. The library performs no
// signature verification, no encoding and no chain evaluation.
package sigalg

import (
	"crypto/x509"

	"github.com/pion/sigalg/pkg/crypto/algorithmid"
	"github.com/pion/sigalg/pkg/crypto/hash"
	"github.com/pion/sigalg/pkg/crypto/signature"
)

// ParseAlgorithmIdentifier decodes a single AlgorithmIdentifier SEQUENCE,
// returning the OID content octets and the raw parameters TLV (nil when the
// parameters are absent). Both views alias raw. This is exposed for callers
// that need the OID itself, for example to decide whether to attempt a
// signature verification at all.
func ParseAlgorithmIdentifier(raw []byte) (oid, params []byte, err error) {
	ident, err := algorithmid.Parse(raw)
	if err != nil {
		return nil, nil, err
	}

	return ident.OID, ident.Params, nil
}

// ParseSignatureAlgorithm classifies a DER AlgorithmIdentifier. A nil
// Recorder is valid; when one is given it receives a report for each OID the
// registry does not know about. See algorithmid.ParseSignatureAlgorithm for
// the error contract.
func ParseSignatureAlgorithm(raw []byte, rec algorithmid.Recorder) (signature.Algorithm, error) {
	return algorithmid.ParseSignatureAlgorithm(raw, rec)
}

// GetChannelBindingDigestAlgorithm returns the digest used for the RFC 5929
// tls-server-end-point channel binding of the given algorithm, or hash.None
// when no binding digest is defined.
func GetChannelBindingDigestAlgorithm(alg signature.Algorithm) hash.Algorithm {
	return alg.ChannelBindingHash()
}

// FromCertificate classifies the signature algorithm a certificate was
// signed with, from its raw DER. rec may be nil.
func FromCertificate(cert *x509.Certificate, rec algorithmid.Recorder) (signature.Algorithm, error) {
	return algorithmid.FromCertificate(cert, rec)
}
