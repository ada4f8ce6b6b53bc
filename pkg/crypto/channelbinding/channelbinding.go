// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package channelbinding implements the tls-server-end-point channel binding
// defined in RFC 5929 section 4.
package channelbinding

import (
	"crypto/x509"
	"errors"

	"github.com/pion/sigalg/pkg/crypto/algorithmid"
	"github.com/pion/sigalg/pkg/crypto/hash"
)

// Typed errors.
var (
	// ErrNoBindingDigest is returned for certificates signed with an
	// algorithm that has no defined tls-server-end-point digest (DSA, or
	// the MD2/MD4 legacy variants).
	ErrNoBindingDigest = errors.New("no channel-binding digest defined for signature algorithm")
)

// TLSServerEndPoint computes the tls-server-end-point channel binding for the
// given end-entity certificate: the certificate's DER encoding hashed with
// the digest selected by RFC 5929 section 4.1 from its signature algorithm.
func TLSServerEndPoint(cert *x509.Certificate) ([]byte, error) {
	alg, err := algorithmid.FromCertificate(cert, nil)
	if err != nil {
		return nil, err
	}

	bindingHash := alg.ChannelBindingHash()
	if bindingHash == hash.None {
		return nil, ErrNoBindingDigest
	}

	hasher := bindingHash.CryptoHash().New()
	hasher.Write(cert.Raw)

	return hasher.Sum(nil), nil
}
