package credential

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/deploy-admin/pkg/config"
)

func newTestRPCChecker(heliusURL string, timeout time.Duration) *RPCChecker {
	return NewRPCChecker(&config.CredentialsConfig{
		HeliusWSURL:            heliusURL,
		RPCTimeout:             timeout,
		AllowPrivateRPCTargets: true,
	})
}

// newCountingListener accepts and counts TCP connections without answering them
func newCountingListener(t *testing.T) (net.Listener, *atomic.Int32) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	var accepted atomic.Int32
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			accepted.Add(1)
			_ = conn.Close()
		}
	}()
	return ln, &accepted
}

// newWebsocketServer upgrades every request and records the query string of the last one.
func newWebsocketServer(t *testing.T) (*httptest.Server, <-chan string) {
	t.Helper()

	queries := make(chan string, 1)
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case queries <- r.URL.RawQuery:
		default:
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv, queries
}

func TestRPCChecker_Endpoint(t *testing.T) {
	c := newTestRPCChecker("wss://rpc-ws.helius.xyz/", time.Second)

	tests := []struct {
		name    string
		creds   RPCCredentials
		want    string
		wantErr error
	}{
		{
			name:  "helius",
			creds: RPCCredentials{Provider: "helius", APIKey: "abc"},
			want:  "wss://rpc-ws.helius.xyz/?api-key=abc",
		},
		{
			name:  "helius escapes key",
			creds: RPCCredentials{Provider: "helius", APIKey: "a&b"},
			want:  "wss://rpc-ws.helius.xyz/?api-key=a%26b",
		},
		{
			name:    "helius without key",
			creds:   RPCCredentials{Provider: "helius"},
			wantErr: ErrMissingAPIKey,
		},
		{
			name:  "quicknode wss",
			creds: RPCCredentials{Provider: "quicknode", URL: "wss://example.quiknode.pro/abc/"},
			want:  "wss://example.quiknode.pro/abc/",
		},
		{
			name:  "quicknode https is upgraded",
			creds: RPCCredentials{Provider: "quicknode", URL: "https://example.quiknode.pro/abc/"},
			want:  "wss://example.quiknode.pro/abc/",
		},
		{
			name:    "quicknode without url",
			creds:   RPCCredentials{Provider: "quicknode", APIKey: "ignored"},
			wantErr: ErrMissingURL,
		},
		{
			name:    "quicknode bad scheme",
			creds:   RPCCredentials{Provider: "quicknode", URL: "ftp://example.com"},
			wantErr: ErrUnsupportedScheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Endpoint(tt.creds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := c.Endpoint(RPCCredentials{Provider: "alchemy", APIKey: "k"})
	assert.Error(t, err)
}

func TestRPCChecker_Check_HeliusSendsKey(t *testing.T) {
	srv, queries := newWebsocketServer(t)
	c := newTestRPCChecker("ws://"+strings.TrimPrefix(srv.URL, "http://")+"/", 2*time.Second)

	err := c.Check(context.Background(), RPCCredentials{Provider: "helius", APIKey: "secret"})
	require.NoError(t, err)

	select {
	case q := <-queries:
		assert.Equal(t, "api-key=secret", q)
	case <-time.After(time.Second):
		t.Fatal("server never saw the handshake")
	}
}

func TestRPCChecker_Check_QuickNode(t *testing.T) {
	srv, _ := newWebsocketServer(t)
	c := newTestRPCChecker("wss://unused/", 2*time.Second)

	err := c.Check(context.Background(), RPCCredentials{Provider: "quicknode", URL: srv.URL})
	assert.NoError(t, err)
}

func TestRPCChecker_Check_HandshakeRejected(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)
	c := newTestRPCChecker("wss://unused/", 2*time.Second)

	err := c.Check(context.Background(), RPCCredentials{Provider: "quicknode", URL: srv.URL})
	assert.ErrorIs(t, err, ErrConnectionFailed)
	assert.Equal(t, ErrConnectionFailed.Error(), Message(err))
}

func TestRPCChecker_Check_Timeout(t *testing.T) {
	// accepts TCP connections and never answers the handshake
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	var conns []net.Conn
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conns = append(conns, conn)
		}
	}()

	c := newTestRPCChecker("wss://unused/", 200*time.Millisecond)

	start := time.Now()
	err = c.Check(context.Background(), RPCCredentials{Provider: "quicknode", URL: "ws://" + ln.Addr().String()})
	assert.ErrorIs(t, err, ErrConnectionTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, "connection timeout", Message(err))
}

func TestRPCChecker_Check_ValidationNeverDials(t *testing.T) {
	c := newTestRPCChecker("wss://unused/", time.Second)

	err := c.Check(context.Background(), RPCCredentials{Provider: "helius"})
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
	assert.Equal(t, "api key is required", Message(err))
}

func TestRPCChecker_Check_RefusesNonPublicTargets(t *testing.T) {
	ln, accepted := newCountingListener(t)
	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	c := NewRPCChecker(&config.CredentialsConfig{
		HeliusWSURL: "wss://rpc-ws.helius.xyz/",
		RPCTimeout:  time.Second,
	})

	targets := []string{
		"ws://" + ln.Addr().String(),
		"http://127.0.0.1:" + port + "/admin/secret",
		"ws://localhost:" + port,
		"ws://[::1]:" + port,
		"ws://0.0.0.0:" + port,
		"ws://10.0.0.1:8546",
		"wss://192.168.1.10/",
		"http://169.254.169.254/latest/meta-data/",
		"ws://[fe80::1]:8546",
		"ws://[::ffff:127.0.0.1]:" + port,
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			err := c.Check(context.Background(), RPCCredentials{Provider: "quicknode", URL: target})
			assert.ErrorIs(t, err, ErrForbiddenTarget)
			assert.Equal(t, "rpc url must point to a public host", Message(err))
		})
	}

	assert.Equal(t, int32(0), accepted.Load())
}

func TestRPCChecker_Check_RefusesPrivateHeliusURL(t *testing.T) {
	ln, accepted := newCountingListener(t)

	c := NewRPCChecker(&config.CredentialsConfig{
		HeliusWSURL: "ws://" + ln.Addr().String() + "/",
		RPCTimeout:  time.Second,
	})

	err := c.Check(context.Background(), RPCCredentials{Provider: "helius", APIKey: "k"})
	assert.ErrorIs(t, err, ErrForbiddenTarget)
	assert.Equal(t, int32(0), accepted.Load())
}

func TestIsPublicAddr(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"8.8.8.8", true},
		{"2606:4700:4700::1111", true},
		{"127.0.0.1", false},
		{"::1", false},
		{"0.0.0.0", false},
		{"::", false},
		{"10.1.2.3", false},
		{"172.16.0.1", false},
		{"192.168.0.1", false},
		{"169.254.169.254", false},
		{"fe80::1", false},
		{"fc00::1", false},
		{"::ffff:10.0.0.1", false},
		{"224.0.0.1", false},
		{"255.255.255.255", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, isPublicAddr(netip.MustParseAddr(tt.addr)))
		})
	}
}
