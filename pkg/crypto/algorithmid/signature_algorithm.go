// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package algorithmid

import (
	"bytes"

	"github.com/pion/sigalg/pkg/crypto/hash"
	"github.com/pion/sigalg/pkg/crypto/signature"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// paramsRule is the parameter-shape requirement attached to a registry entry.
type paramsRule uint8

const (
	paramsNULLOrAbsent paramsRule = iota
	paramsStrictlyAbsent
)

func (r paramsRule) allows(ident Identifier) bool {
	if r == paramsStrictlyAbsent {
		return ident.absent()
	}

	return ident.nullOrAbsent()
}

// registry is the fixed OID table. Matching is exact byte equality of the
// content octets; order only fixes the scan for determinism. id-RSASSA-PSS is
// dispatched separately since its parameters are a mandatory SEQUENCE with
// its own grammar.
var registry = []struct {
	oid  []byte
	alg  signature.Algorithm
	rule paramsRule
}{
	{oidSHA1WithRSAEncryption, signature.RSAPKCS1SHA1, paramsNULLOrAbsent},
	{oidSHA256WithRSAEncryption, signature.RSAPKCS1SHA256, paramsNULLOrAbsent},
	{oidSHA384WithRSAEncryption, signature.RSAPKCS1SHA384, paramsNULLOrAbsent},
	{oidSHA512WithRSAEncryption, signature.RSAPKCS1SHA512, paramsNULLOrAbsent},
	{oidSHA1WithRSASignature, signature.RSAPKCS1SHA1, paramsNULLOrAbsent},
	{oidMD2WithRSAEncryption, signature.RSAPKCS1MD2, paramsNULLOrAbsent},
	{oidMD4WithRSAEncryption, signature.RSAPKCS1MD4, paramsNULLOrAbsent},
	{oidMD5WithRSAEncryption, signature.RSAPKCS1MD5, paramsNULLOrAbsent},
	{oidECDSAWithSHA1, signature.ECDSASHA1, paramsStrictlyAbsent},
	{oidECDSAWithSHA256, signature.ECDSASHA256, paramsStrictlyAbsent},
	{oidECDSAWithSHA384, signature.ECDSASHA384, paramsStrictlyAbsent},
	{oidECDSAWithSHA512, signature.ECDSASHA512, paramsStrictlyAbsent},
	{oidDSAWithSHA1, signature.DSASHA1, paramsNULLOrAbsent},
	{oidDSAWithSHA256, signature.DSASHA256, paramsNULLOrAbsent},
}

// ParseSignatureAlgorithm classifies a DER AlgorithmIdentifier into a
// signature.Algorithm.
//
// A recognized OID whose parameters fail the family's shape rule (or the
// RSASSA-PSS policy) returns ErrUnsupportedParameters without touching the
// Recorder: those encodings come from known producers and reporting them as
// unknown would only add noise. Only an OID absent from the registry is
// reported, with owned copies of the OID and parameter bytes. rec may be nil.
func ParseSignatureAlgorithm(raw []byte, rec Recorder) (signature.Algorithm, error) {
	ident, err := Parse(raw)
	if err != nil {
		return signature.Unknown, err
	}

	if bytes.Equal(ident.OID, oidRSASSAPSS) {
		return parseRSAPSS(ident.Params)
	}

	for _, entry := range registry {
		if !bytes.Equal(ident.OID, entry.oid) {
			continue
		}
		if !entry.rule.allows(ident) {
			return signature.Unknown, ErrUnsupportedParameters
		}

		return entry.alg, nil
	}

	if rec != nil {
		rec.RecordUnknownAlgorithm(
			append([]byte(nil), ident.OID...),
			append([]byte(nil), ident.Params...),
		)
	}

	return signature.Unknown, ErrUnknownAlgorithm
}

// parseRSAPSS decodes RSASSA-PSS-params (RFC 5912):
//
//	RSASSA-PSS-params ::= SEQUENCE {
//	    hashAlgorithm     [0] HashAlgorithm DEFAULT sha1Identifier,
//	    maskGenAlgorithm  [1] MaskGenAlgorithm DEFAULT mgf1SHA1,
//	    saltLength        [2] INTEGER DEFAULT 20,
//	    trailerField      [3] INTEGER DEFAULT 1
//	}
//
// Only the combinations representable by TLS 1.3 (RFC 8446) are accepted, so
// all three leading fields are required: their defaults correspond to SHA-1,
// which is never accepted here. DER (X.690 section 11.5) forbids encoding a
// default value explicitly, so a present trailerField is rejected like any
// other trailing data.
func parseRSAPSS(params []byte) (signature.Algorithm, error) {
	input := cryptobyte.String(params)

	var seq cryptobyte.String
	if !input.ReadASN1(&seq, asn1.SEQUENCE) || !input.Empty() {
		return signature.Unknown, ErrUnsupportedParameters
	}

	var field cryptobyte.String
	if !seq.ReadASN1(&field, asn1.Tag(0).Constructed().ContextSpecific()) {
		return signature.Unknown, ErrUnsupportedParameters
	}
	hashAlg, err := ParseHashAlgorithm(field)
	if err != nil {
		return signature.Unknown, ErrUnsupportedParameters
	}

	if !seq.ReadASN1(&field, asn1.Tag(1).Constructed().ContextSpecific()) {
		return signature.Unknown, ErrUnsupportedParameters
	}
	mgf1Hash, err := parseMaskGenAlgorithm(field)
	if err != nil {
		return signature.Unknown, ErrUnsupportedParameters
	}

	var saltField cryptobyte.String
	var saltLength uint64
	if !seq.ReadASN1(&saltField, asn1.Tag(2).Constructed().ContextSpecific()) ||
		!saltField.ReadASN1Integer(&saltLength) ||
		!saltField.Empty() ||
		!seq.Empty() {
		return signature.Unknown, ErrUnsupportedParameters
	}

	// TLS 1.3 always matches the MGF-1 hash and the message hash.
	if hashAlg != mgf1Hash {
		return signature.Unknown, ErrUnsupportedParameters
	}

	switch {
	case hashAlg == hash.SHA256 && saltLength == 32:
		return signature.RSAPSSSHA256, nil
	case hashAlg == hash.SHA384 && saltLength == 48:
		return signature.RSAPSSSHA384, nil
	case hashAlg == hash.SHA512 && saltLength == 64:
		return signature.RSAPSSSHA512, nil
	default:
		return signature.Unknown, ErrUnsupportedParameters
	}
}

// parseMaskGenAlgorithm decodes a MaskGenAlgorithm (RFC 5912), which is an
// AlgorithmIdentifier whose algorithm must be id-mgf1 and whose parameters
// are the HashAlgorithm driving the mask. MGF1 is the only mask generation
// function defined by RFC 4055 / RFC 5912.
func parseMaskGenAlgorithm(raw []byte) (hash.Algorithm, error) {
	ident, err := Parse(raw)
	if err != nil {
		return hash.None, err
	}

	if !bytes.Equal(ident.OID, oidMGF1) {
		return hash.None, ErrUnsupportedParameters
	}

	return ParseHashAlgorithm(ident.Params)
}

// ParseHashAlgorithm decodes a digest AlgorithmIdentifier and maps it to one
// of the SHA-1/SHA-2 digests. Parameters must be absent or NULL; RFC 5912
// asks for absent, but NULL is widespread in practice. Any other digest
// (MD5, the SHA-3 family, unknown OIDs) is rejected.
//
// This resolver serves both the hashAlgorithm field of RSASSA-PSS-params and
// the HashAlgorithm inside its MGF1 maskGenAlgorithm.
func ParseHashAlgorithm(raw []byte) (hash.Algorithm, error) {
	ident, err := Parse(raw)
	if err != nil {
		return hash.None, err
	}

	if !ident.nullOrAbsent() {
		return hash.None, ErrUnsupportedDigestAlgorithm
	}

	switch {
	case bytes.Equal(ident.OID, oidSHA1):
		return hash.SHA1, nil
	case bytes.Equal(ident.OID, oidSHA256):
		return hash.SHA256, nil
	case bytes.Equal(ident.OID, oidSHA384):
		return hash.SHA384, nil
	case bytes.Equal(ident.OID, oidSHA512):
		return hash.SHA512, nil
	default:
		return hash.None, ErrUnsupportedDigestAlgorithm
	}
}
