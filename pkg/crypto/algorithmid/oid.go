// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package algorithmid

// OID constants, stored as DER content octets so classification can compare
// attacker-supplied bytes without decoding or allocating. Dotted notation in
// the comments; definitions are from RFC 5912 unless noted.
var (
	// md2WithRSAEncryption, 1.2.840.113549.1.1.2
	oidMD2WithRSAEncryption = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x02}

	// md4WithRSAEncryption, 1.2.840.113549.1.1.3
	oidMD4WithRSAEncryption = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x03}

	// md5WithRSAEncryption, 1.2.840.113549.1.1.4
	oidMD5WithRSAEncryption = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x04}

	// sha1WithRSAEncryption, 1.2.840.113549.1.1.5
	oidSHA1WithRSAEncryption = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x05}

	// sha1WithRSASignature, 1.3.14.3.2.29.
	//
	// A deprecated OIW equivalent of sha1WithRSAEncryption, still emitted
	// by some Microsoft certificate tooling (notably makecert.exe).
	oidSHA1WithRSASignature = []byte{0x2b, 0x0e, 0x03, 0x02, 0x1d}

	// sha256WithRSAEncryption, 1.2.840.113549.1.1.11
	oidSHA256WithRSAEncryption = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b}

	// sha384WithRSAEncryption, 1.2.840.113549.1.1.12
	oidSHA384WithRSAEncryption = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0c}

	// sha512WithRSAEncryption, 1.2.840.113549.1.1.13
	oidSHA512WithRSAEncryption = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0d}

	// id-RSASSA-PSS, 1.2.840.113549.1.1.10
	oidRSASSAPSS = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0a}

	// id-mgf1, 1.2.840.113549.1.1.8
	oidMGF1 = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x08}

	// ecdsa-with-SHA1, 1.2.840.10045.4.1
	oidECDSAWithSHA1 = []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x01}

	// ecdsa-with-SHA256, 1.2.840.10045.4.3.2
	oidECDSAWithSHA256 = []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x02}

	// ecdsa-with-SHA384, 1.2.840.10045.4.3.3
	oidECDSAWithSHA384 = []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x03}

	// ecdsa-with-SHA512, 1.2.840.10045.4.3.4
	oidECDSAWithSHA512 = []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x04}

	// dsa-with-sha1, 1.2.840.10040.4.3
	oidDSAWithSHA1 = []byte{0x2a, 0x86, 0x48, 0xce, 0x38, 0x04, 0x03}

	// dsa-with-sha256, 2.16.840.1.101.3.4.3.2
	oidDSAWithSHA256 = []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x03, 0x02}
)

// Digest OIDs, used by ParseHashAlgorithm.
var (
	// id-sha1, 1.3.14.3.2.26
	oidSHA1 = []byte{0x2b, 0x0e, 0x03, 0x02, 0x1a}

	// id-sha256, 2.16.840.1.101.3.4.2.1
	oidSHA256 = []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}

	// id-sha384, 2.16.840.1.101.3.4.2.2
	oidSHA384 = []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02}

	// id-sha512, 2.16.840.1.101.3.4.2.3
	oidSHA512 = []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03}
)
