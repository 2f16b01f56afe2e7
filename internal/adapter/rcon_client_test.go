// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRCON is a minimal game server console: it authenticates against
// password and answers each command with the fragments returned by reply.
type fakeRCON struct {
	t        *testing.T
	listener net.Listener
	password string

	// emptyBeforeAuth makes the server send an empty response value ahead
	// of the auth reply, as some servers do.
	emptyBeforeAuth bool

	// silent makes the server accept connections and never answer.
	silent bool

	reply func(cmd string) []string

	mu       sync.Mutex
	commands []string
	accepted atomic.Int32
	wg       sync.WaitGroup
}

func startFakeRCON(t *testing.T, password string, reply func(cmd string) []string) *fakeRCON {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	f := &fakeRCON{t: t, listener: l, password: password, reply: reply}
	t.Cleanup(func() {
		_ = l.Close()
		f.wg.Wait()
	})
	return f
}

func (f *fakeRCON) serve() {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		for {
			conn, err := f.listener.Accept()
			if err != nil {
				return
			}
			f.accepted.Add(1)
			f.wg.Add(1)
			go func() {
				defer f.wg.Done()
				defer conn.Close()
				f.handle(conn)
			}()
		}
	}()
}

func (f *fakeRCON) handle(conn net.Conn) {
	_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

	auth, err := readPacket(conn, defaultPacketLimits)
	if err != nil || auth.Type != typeAuth {
		return
	}
	if f.silent {
		// hold the connection open until the client gives up
		_, _ = readPacket(conn, defaultPacketLimits)
		return
	}

	if f.emptyBeforeAuth {
		_ = writePacket(conn, packet{ID: auth.ID, Type: typeResponseValue}, packetLimits{})
	}

	if string(auth.Payload) != f.password {
		_ = writePacket(conn, packet{ID: authFailedID, Type: typeAuthResponse}, packetLimits{})
		return
	}
	_ = writePacket(conn, packet{ID: auth.ID, Type: typeAuthResponse}, packetLimits{})

	cmd, err := readPacket(conn, defaultPacketLimits)
	if err != nil || cmd.Type != typeExecCommand {
		return
	}

	// the client follows every command with an end marker
	end, err := readPacket(conn, defaultPacketLimits)
	if err != nil || end.Type != typeResponseValue {
		return
	}

	f.mu.Lock()
	f.commands = append(f.commands, string(cmd.Payload))
	f.mu.Unlock()

	for _, fragment := range f.reply(string(cmd.Payload)) {
		if err = writePacket(conn, packet{ID: cmd.ID, Type: typeResponseValue, Payload: []byte(fragment)}, packetLimits{}); err != nil {
			return
		}
	}
	_ = writePacket(conn, packet{ID: end.ID, Type: typeResponseValue, Payload: []byte("Unknown request 0")}, packetLimits{})
}

func (f *fakeRCON) config() config.Remote {
	addr := f.listener.Addr().(*net.TCPAddr)
	return config.Remote{
		Host:     addr.IP.String(),
		Port:     addr.Port,
		Password: f.password,
		Enabled:  true,
		Timeout:  2 * time.Second,
	}
}

func (f *fakeRCON) seenCommands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.commands...)
}

func echo(cmd string) []string { return []string{"ok: " + cmd} }

func TestRemoteConsole_Enabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Remote
		want bool
	}{
		{"enabled with password", config.Remote{Enabled: true, Password: "pw"}, true},
		{"enabled without password", config.Remote{Enabled: true}, false},
		{"disabled with password", config.Remote{Password: "pw"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := NewRemoteConsole(tt.cfg, logger.Nop())
			assert.Equal(t, tt.want, rc.Enabled())
		})
	}
}

func TestRemoteConsole_DisabledRejectsEveryCall(t *testing.T) {
	f := startFakeRCON(t, "pw", echo)
	f.serve()

	cfg := f.config()
	cfg.Enabled = false
	rc := NewRemoteConsole(cfg, logger.Nop())
	ctx := context.Background()

	_, err := rc.SendCommand(ctx, "list")
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	_, err = rc.WhitelistAdd(ctx, "Alice")
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	_, err = rc.WhitelistRemove(ctx, "Alice")
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	_, err = rc.WhitelistList(ctx)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)

	assert.Zero(t, f.accepted.Load())
}

func TestRemoteConsole_SendCommand(t *testing.T) {
	f := startFakeRCON(t, "pw", echo)
	f.serve()

	rc := NewRemoteConsole(f.config(), logger.Nop())
	got, err := rc.SendCommand(context.Background(), "say hi")

	require.NoError(t, err)
	assert.Equal(t, "ok: say hi", got)
	assert.Equal(t, []string{"say hi"}, f.seenCommands())
}

func TestRemoteConsole_EmptyReply(t *testing.T) {
	f := startFakeRCON(t, "pw", func(string) []string { return []string{""} })
	f.serve()

	rc := NewRemoteConsole(f.config(), logger.Nop())
	got, err := rc.SendCommand(context.Background(), "save-all")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRemoteConsole_EmptyPacketBeforeAuth(t *testing.T) {
	f := startFakeRCON(t, "pw", echo)
	f.emptyBeforeAuth = true
	f.serve()

	rc := NewRemoteConsole(f.config(), logger.Nop())
	got, err := rc.SendCommand(context.Background(), "list")

	require.NoError(t, err)
	assert.Equal(t, "ok: list", got)
}

func TestRemoteConsole_AuthFailure(t *testing.T) {
	f := startFakeRCON(t, "right", echo)
	f.serve()

	cfg := f.config()
	cfg.Password = "wrong"
	rc := NewRemoteConsole(cfg, logger.Nop())

	_, err := rc.SendCommand(context.Background(), "list")
	assert.ErrorIs(t, err, ErrRemoteAuth)
	assert.Empty(t, f.seenCommands())
}

func TestRemoteConsole_FragmentedReply(t *testing.T) {
	full := strings.Repeat("a", fragmentSize)
	tail := "tail"

	f := startFakeRCON(t, "pw", func(string) []string { return []string{full, full, tail} })
	f.serve()

	rc := NewRemoteConsole(f.config(), logger.Nop())
	got, err := rc.SendCommand(context.Background(), "banlist")

	require.NoError(t, err)
	assert.Len(t, got, 2*fragmentSize+len(tail))
	assert.True(t, strings.HasSuffix(got, tail))
}

func TestRemoteConsole_ReplyOfExactFragmentSize(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
	}{
		{name: "one full fragment", fragments: []string{strings.Repeat("a", fragmentSize)}},
		{name: "two full fragments", fragments: []string{strings.Repeat("a", fragmentSize), strings.Repeat("b", fragmentSize)}},
		{name: "no fragments", fragments: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := startFakeRCON(t, "pw", func(string) []string { return tt.fragments })
			f.serve()

			rc := NewRemoteConsole(f.config(), logger.Nop())
			got, err := rc.SendCommand(context.Background(), "whitelist list")

			require.NoError(t, err)
			assert.Equal(t, strings.Join(tt.fragments, ""), got)
			assert.NotContains(t, got, "Unknown request")
		})
	}
}

func TestRemoteConsole_ConnectionPerCall(t *testing.T) {
	f := startFakeRCON(t, "pw", echo)
	f.serve()

	rc := NewRemoteConsole(f.config(), logger.Nop())
	for i := 0; i < 3; i++ {
		_, err := rc.SendCommand(context.Background(), "list "+strconv.Itoa(i))
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), f.accepted.Load())
	assert.Equal(t, []string{"list 0", "list 1", "list 2"}, f.seenCommands())
}

func TestRemoteConsole_DialRefused(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	rc := NewRemoteConsole(config.Remote{
		Host:     "127.0.0.1",
		Port:     port,
		Password: "pw",
		Enabled:  true,
		Timeout:  time.Second,
	}, logger.Nop())

	_, err = rc.SendCommand(context.Background(), "list")
	assert.ErrorIs(t, err, ErrRemoteConnection)
}

func TestRemoteConsole_ReadTimeout(t *testing.T) {
	f := startFakeRCON(t, "pw", echo)
	f.silent = true
	f.serve()

	cfg := f.config()
	cfg.Timeout = 150 * time.Millisecond
	rc := NewRemoteConsole(cfg, logger.Nop())

	started := time.Now()
	_, err := rc.SendCommand(context.Background(), "list")

	assert.ErrorIs(t, err, ErrRemoteConnection)
	assert.Less(t, time.Since(started), 2*time.Second)
}

func TestRemoteConsole_ContextDeadlineWins(t *testing.T) {
	f := startFakeRCON(t, "pw", echo)
	f.silent = true
	f.serve()

	rc := NewRemoteConsole(f.config(), logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	started := time.Now()
	_, err := rc.SendCommand(ctx, "list")

	assert.Error(t, err)
	assert.Less(t, time.Since(started), time.Second)
}

func TestRemoteConsole_WhitelistCommands(t *testing.T) {
	f := startFakeRCON(t, "pw", func(cmd string) []string {
		switch {
		case cmd == "whitelist list":
			return []string{"There are 2 whitelisted player(s): Alice, Bob"}
		case strings.HasPrefix(cmd, "whitelist add "):
			return []string{"Added " + strings.TrimPrefix(cmd, "whitelist add ") + " to the whitelist"}
		default:
			return []string{"Removed " + strings.TrimPrefix(cmd, "whitelist remove ") + " from the whitelist"}
		}
	})
	f.serve()

	rc := NewRemoteConsole(f.config(), logger.Nop())
	ctx := context.Background()

	reply, err := rc.WhitelistAdd(ctx, "  Steve ")
	require.NoError(t, err)
	assert.Equal(t, "Added Steve to the whitelist", reply)

	reply, err = rc.WhitelistRemove(ctx, "Alex")
	require.NoError(t, err)
	assert.Equal(t, "Removed Alex from the whitelist", reply)

	names, err := rc.WhitelistList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)

	assert.Equal(t, []string{"whitelist add Steve", "whitelist remove Alex", "whitelist list"}, f.seenCommands())
}

func TestRemoteConsole_WhitelistEmptyName(t *testing.T) {
	f := startFakeRCON(t, "pw", echo)
	f.serve()

	rc := NewRemoteConsole(f.config(), logger.Nop())

	_, err := rc.WhitelistAdd(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = rc.WhitelistRemove(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyName)

	assert.Zero(t, f.accepted.Load())
}

func TestCommandVerb(t *testing.T) {
	assert.Equal(t, "whitelist add", commandVerb("whitelist add Steve"))
	assert.Equal(t, "list", commandVerb("list"))
	assert.Equal(t, "", commandVerb("  "))
}
