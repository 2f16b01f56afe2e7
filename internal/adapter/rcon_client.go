// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
)

const defaultRemoteTimeout = 10 * time.Second

type rconClient struct {
	address  string
	password string
	enabled  bool
	timeout  time.Duration
	limits   packetLimits

	nextID atomic.Int32
	dialer net.Dialer
	logger *logger.Logger
}

// NewRemoteConsole builds a [RemoteConsole] from cfg. No connection is made
// until the first command.
func NewRemoteConsole(cfg config.Remote, log *logger.Logger) RemoteConsole {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}

	return &rconClient{
		address:  net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		password: cfg.Password,
		enabled:  cfg.Enabled,
		timeout:  timeout,
		limits:   defaultPacketLimits,
		logger:   log.Component("rcon"),
	}
}

func (c *rconClient) Enabled() bool {
	return c.enabled && c.password != ""
}

func (c *rconClient) SendCommand(ctx context.Context, text string) (string, error) {
	if !c.Enabled() {
		return "", ErrRemoteUnavailable
	}

	started := time.Now()
	reply, err := c.exec(ctx, text)
	if err != nil {
		c.logger.Warn().Err(err).Str("command", commandVerb(text)).Msg("remote command failed")
		return "", err
	}

	c.logger.Debug().
		Str("command", commandVerb(text)).
		Int("reply_bytes", len(reply)).
		Dur("elapsed", time.Since(started)).
		Msg("remote command done")
	return reply, nil
}

func (c *rconClient) WhitelistAdd(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return c.SendCommand(ctx, "whitelist add "+name)
}

func (c *rconClient) WhitelistRemove(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return c.SendCommand(ctx, "whitelist remove "+name)
}

func (c *rconClient) WhitelistList(ctx context.Context) ([]string, error) {
	reply, err := c.SendCommand(ctx, "whitelist list")
	if err != nil {
		return nil, err
	}
	return parseWhitelistList(reply), nil
}

// exec runs one command over a dedicated connection.
func (c *rconClient) exec(ctx context.Context, text string) (string, error) {
	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dialer.DialContext(dialCtx, "tcp", c.address)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRemoteConnection, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err = conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRemote, err)
	}

	// unblock pending reads when the caller gives up
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	if err = c.authenticate(conn); err != nil {
		return "", err
	}
	return c.command(conn, text)
}

func (c *rconClient) authenticate(conn net.Conn) error {
	id := c.requestID()
	if err := writePacket(conn, packet{ID: id, Type: typeAuth, Payload: []byte(c.password)}, c.limits); err != nil {
		return classifyIOError(err)
	}

	for {
		p, err := readPacket(conn, c.limits)
		if err != nil {
			return classifyIOError(err)
		}

		// some servers send an empty response value ahead of the auth reply
		if p.Type == typeResponseValue {
			continue
		}
		if p.Type != typeAuthResponse {
			return fmt.Errorf("%w: unexpected packet type %d during auth", ErrRemote, p.Type)
		}
		if p.ID == authFailedID {
			return ErrRemoteAuth
		}
		if p.ID != id {
			return fmt.Errorf("%w: auth reply id %d, want %d", ErrRemote, p.ID, id)
		}
		return nil
	}
}

// command runs text and collects its reply. The server splits long replies
// over several packets with no end marker, so a second packet of type
// typeResponseValue follows the command; the server answers it only after
// the whole reply, and its echo ends the read.
func (c *rconClient) command(conn net.Conn, text string) (string, error) {
	id := c.requestID()
	if err := writePacket(conn, packet{ID: id, Type: typeExecCommand, Payload: []byte(text)}, c.limits); err != nil {
		return "", classifyIOError(err)
	}

	endID := c.requestID()
	if err := writePacket(conn, packet{ID: endID, Type: typeResponseValue}, c.limits); err != nil {
		return "", classifyIOError(err)
	}

	var reply strings.Builder
	for {
		p, err := readPacket(conn, c.limits)
		if err != nil {
			return "", classifyIOError(err)
		}

		switch p.ID {
		case id:
			reply.Write(p.Payload)
		case endID:
			return reply.String(), nil
		}
	}
}

func (c *rconClient) requestID() int32 {
	for {
		id := c.nextID.Add(1)
		if id > 0 {
			return id
		}
		c.nextID.CompareAndSwap(id, 0)
	}
}

// classifyIOError maps a read or write failure on an open connection.
func classifyIOError(err error) error {
	if errors.Is(err, ErrPacketTooLarge) || errors.Is(err, ErrShortPacket) || errors.Is(err, ErrMissingTerminator) {
		return fmt.Errorf("%w: %w", ErrRemote, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrRemoteConnection, err)
	}
	return fmt.Errorf("%w: %w", ErrRemote, err)
}

// commandVerb keeps player names out of debug logs' command field.
func commandVerb(text string) string {
	fields := strings.Fields(text)
	switch {
	case len(fields) >= 2:
		return fields[0] + " " + fields[1]
	case len(fields) == 1:
		return fields[0]
	default:
		return ""
	}
}
