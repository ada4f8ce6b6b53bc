// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sigalg

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/pion/sigalg/pkg/crypto/channelbinding"
	"github.com/pion/sigalg/pkg/crypto/signature"
	"github.com/pion/transport/v3/test"
	"github.com/stretchr/testify/assert"
)

func newServerCertificate(t *testing.T) tls.Certificate {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	assert.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "sigalg e2e"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, key.Public(), key)
	assert.NoError(t, err)

	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}
}

// TestE2ELoopbackTLS classifies the certificate actually served on a TLS
// connection and checks the tls-server-end-point binding against it.
func TestE2ELoopbackTLS(t *testing.T) {
	lim := test.TimeOut(time.Second * 30)
	defer lim.Stop()

	report := test.CheckRoutines(t)
	defer report()

	listener, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{
		Certificates: []tls.Certificate{newServerCertificate(t)},
		MinVersion:   tls.VersionTLS12,
	})
	assert.NoError(t, err)

	serverDone := make(chan struct{})
	go func() {
		defer close(serverDone)

		conn, aErr := listener.Accept()
		if aErr != nil {
			return
		}
		// Drive the handshake; the client side is blocked on it.
		_ = conn.(*tls.Conn).Handshake() //nolint:forcetypeassert
		_ = conn.Close()
	}()

	conn, err := tls.Dial("tcp", listener.Addr().String(), &tls.Config{
		InsecureSkipVerify: true, //nolint:gosec
		MinVersion:         tls.VersionTLS12,
	})
	assert.NoError(t, err)

	peerCerts := conn.ConnectionState().PeerCertificates
	assert.NotEmpty(t, peerCerts)
	peer := peerCerts[0]

	alg, err := FromCertificate(peer, nil)
	assert.NoError(t, err)
	assert.Equal(t, signature.ECDSASHA256, alg)

	binding, err := channelbinding.TLSServerEndPoint(peer)
	assert.NoError(t, err)

	expected := sha256.Sum256(peer.Raw)
	assert.Equal(t, expected[:], binding)

	assert.NoError(t, conn.Close())
	<-serverDone
	assert.NoError(t, listener.Close())
}
