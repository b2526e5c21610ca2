// internal/services/notification_service_test.go
package services

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tab1k/tbd-back/internal/config"
)

// silentSMTPServer accepts connections but never sends the SMTP greeting,
// imitating a mail server that hangs mid-handshake.
func silentSMTPServer(t *testing.T) (host, port string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			t.Cleanup(func() { conn.Close() })
		}
	}()

	host, port, err = net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	return host, port
}

func TestSMTPSenderTimesOutOnSilentServer(t *testing.T) {
	host, port := silentSMTPServer(t)

	sender := &smtpSender{cfg: config.EmailConfig{
		SMTPHost:    host,
		SMTPPort:    port,
		FromName:    "Site",
		SendTimeout: 1,
	}}

	start := time.Now()
	err := sender.Send("Новая заявка", "body", "noreply@example.com", []string{"admin@example.com"})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, 3*time.Second, "send must fail within the configured timeout")
}

func TestSMTPSenderConnectTimeoutOnUnreachableServer(t *testing.T) {
	// A closed port fails the dial immediately; the error must come back
	// instead of being retried or swallowed.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	ln.Close()

	sender := &smtpSender{cfg: config.EmailConfig{
		SMTPHost:    host,
		SMTPPort:    port,
		SendTimeout: 1,
	}}

	err = sender.Send("subject", "body", "noreply@example.com", []string{"admin@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to smtp server")
}

func TestSMTPSenderRequiresHost(t *testing.T) {
	sender := &smtpSender{cfg: config.EmailConfig{SendTimeout: 1}}
	err := sender.Send("subject", "body", "noreply@example.com", []string{"admin@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp host not configured")
}
