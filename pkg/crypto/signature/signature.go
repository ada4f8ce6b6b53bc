// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package signature provides the closed set of X.509 signature algorithms
// understood by this module.
package signature

import "github.com/pion/sigalg/pkg/crypto/hash"

// Algorithm identifies a signature scheme and digest pair, as bound to a
// certificate or signed object by its AlgorithmIdentifier.
//
// The set is closed on purpose: classification either yields exactly one of
// these values or fails. There is no "carry the OID through" escape hatch,
// since every downstream policy decision is per known algorithm.
type Algorithm uint16

// SignatureAlgorithm enums.
const (
	Unknown Algorithm = iota

	// RSASSA-PKCS1-v1_5, RFC 8017 section 8.2.
	RSAPKCS1MD2
	RSAPKCS1MD4
	RSAPKCS1MD5
	RSAPKCS1SHA1
	RSAPKCS1SHA256
	RSAPKCS1SHA384
	RSAPKCS1SHA512

	// ECDSA, RFC 5912 section 6.
	ECDSASHA1
	ECDSASHA256
	ECDSASHA384
	ECDSASHA512

	// DSA. Legacy, kept so callers can recognize and refuse it explicitly.
	DSASHA1
	DSASHA256

	// RSASSA-PSS, RFC 8017 section 8.1, restricted to the TLS 1.3
	// (RFC 8446) compatible parameter combinations.
	RSAPSSSHA256
	RSAPSSSHA384
	RSAPSSSHA512
)

// String makes Algorithm printable.
func (a Algorithm) String() string { //nolint:cyclop
	switch a {
	case RSAPKCS1MD2:
		return "rsa_pkcs1_md2"
	case RSAPKCS1MD4:
		return "rsa_pkcs1_md4"
	case RSAPKCS1MD5:
		return "rsa_pkcs1_md5"
	case RSAPKCS1SHA1:
		return "rsa_pkcs1_sha1"
	case RSAPKCS1SHA256:
		return "rsa_pkcs1_sha256"
	case RSAPKCS1SHA384:
		return "rsa_pkcs1_sha384"
	case RSAPKCS1SHA512:
		return "rsa_pkcs1_sha512"
	case ECDSASHA1:
		return "ecdsa_sha1"
	case ECDSASHA256:
		return "ecdsa_sha256"
	case ECDSASHA384:
		return "ecdsa_sha384"
	case ECDSASHA512:
		return "ecdsa_sha512"
	case DSASHA1:
		return "dsa_sha1"
	case DSASHA256:
		return "dsa_sha256"
	case RSAPSSSHA256:
		return "rsa_pss_sha256"
	case RSAPSSSHA384:
		return "rsa_pss_sha384"
	case RSAPSSSHA512:
		return "rsa_pss_sha512"
	case Unknown:
		return "unknown"
	default:
		return "invalid signature algorithm"
	}
}

// Algorithms returns all classified signature algorithms. Unknown is not a
// member; it is the zero value returned alongside errors.
func Algorithms() map[Algorithm]struct{} {
	return map[Algorithm]struct{}{
		RSAPKCS1MD2:    {},
		RSAPKCS1MD4:    {},
		RSAPKCS1MD5:    {},
		RSAPKCS1SHA1:   {},
		RSAPKCS1SHA256: {},
		RSAPKCS1SHA384: {},
		RSAPKCS1SHA512: {},
		ECDSASHA1:      {},
		ECDSASHA256:    {},
		ECDSASHA384:    {},
		ECDSASHA512:    {},
		DSASHA1:        {},
		DSASHA256:      {},
		RSAPSSSHA256:   {},
		RSAPSSSHA384:   {},
		RSAPSSSHA512:   {},
	}
}

// IsPSS returns true if the algorithm is an RSASSA-PSS instantiation.
func (a Algorithm) IsPSS() bool {
	return a == RSAPSSSHA256 || a == RSAPSSSHA384 || a == RSAPSSSHA512
}

// IsRSAPKCS1 returns true if the algorithm is an RSASSA-PKCS1-v1_5
// instantiation, including the legacy MD2/MD4/MD5 ones.
func (a Algorithm) IsRSAPKCS1() bool {
	switch a {
	case RSAPKCS1MD2, RSAPKCS1MD4, RSAPKCS1MD5, RSAPKCS1SHA1,
		RSAPKCS1SHA256, RSAPKCS1SHA384, RSAPKCS1SHA512:
		return true
	default:
		return false
	}
}

// ChannelBindingHash returns the digest used for the tls-server-end-point
// channel binding of RFC 5929 section 4.1, or hash.None for algorithms with
// no defined binding digest.
//
// RFC 5929 upgrades MD5 and SHA-1 to SHA-256 rather than binding to a weak
// digest. DSA and the MD2/MD4 variants have no defined mapping.
func (a Algorithm) ChannelBindingHash() hash.Algorithm {
	switch a {
	case RSAPKCS1MD5, RSAPKCS1SHA1, ECDSASHA1:
		return hash.SHA256

	case RSAPKCS1SHA256, ECDSASHA256, RSAPSSSHA256:
		return hash.SHA256

	case RSAPKCS1SHA384, ECDSASHA384, RSAPSSSHA384:
		return hash.SHA384

	case RSAPKCS1SHA512, ECDSASHA512, RSAPSSSHA512:
		return hash.SHA512

	case DSASHA1, DSASHA256, RSAPKCS1MD2, RSAPKCS1MD4:
		return hash.None

	case Unknown:
		return hash.None
	default:
		return hash.None
	}
}
