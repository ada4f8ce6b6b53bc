// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package algorithmid

import (
	"crypto/x509"

	"github.com/pion/sigalg/pkg/crypto/signature"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// FromCertificate classifies the outer signatureAlgorithm of an X.509
// certificate, re-slicing the raw DER rather than trusting the lossy
// x509.SignatureAlgorithm mapping (which collapses PSS parameter choices):
//
//	Certificate ::= SEQUENCE {
//	    tbsCertificate      TBSCertificate,
//	    signatureAlgorithm  AlgorithmIdentifier,
//	    signatureValue      BIT STRING
//	}
func FromCertificate(cert *x509.Certificate, rec Recorder) (signature.Algorithm, error) {
	input := cryptobyte.String(cert.Raw)

	var certSeq cryptobyte.String
	if !input.ReadASN1(&certSeq, asn1.SEQUENCE) || !input.Empty() {
		return signature.Unknown, ErrMalformedAlgorithmIdentifier
	}

	var tbs, algID cryptobyte.String
	if !certSeq.ReadASN1Element(&tbs, asn1.SEQUENCE) ||
		!certSeq.ReadASN1Element(&algID, asn1.SEQUENCE) {
		return signature.Unknown, ErrMalformedAlgorithmIdentifier
	}

	return ParseSignatureAlgorithm(algID, rec)
}
