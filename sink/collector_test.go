// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"net"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/farolog/faro/severity"
)

func collectorRecord(level severity.Level, facility string, args ...any) Record {
	return Record{
		Level:    level,
		Facility: facility,
		Args:     args,
		Time:     time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC),
	}
}

func TestCollectorUDP(t *testing.T) {
	t.Parallel()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	c, err := NewCollector(WithAddress(pc.LocalAddr().String()))
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Log(collectorRecord(severity.Info, "store", "checkout", 3)))

	require.NoError(t, pc.SetReadDeadline(time.Now().Add(5*time.Second)))
	buf := make([]byte, 2048)
	n, _, err := pc.ReadFrom(buf)
	require.NoError(t, err)

	msg := string(buf[:n])
	// local0 (16) * 8 + info (6) = 134
	assert.True(t, strings.HasPrefix(msg, "<134>1 "), "got %q", msg)
	assert.Contains(t, msg, "2026-08-24T10:30:00Z")
	assert.Contains(t, msg, " store ")
	assert.Contains(t, msg, "checkout 3")
}

func TestCollectorUDPNoFacility(t *testing.T) {
	t.Parallel()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	c, err := NewCollector(WithAddress(pc.LocalAddr().String()))
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Log(collectorRecord(severity.Emergency, "", "down")))

	require.NoError(t, pc.SetReadDeadline(time.Now().Add(5*time.Second)))
	buf := make([]byte, 2048)
	n, _, err := pc.ReadFrom(buf)
	require.NoError(t, err)

	msg := string(buf[:n])
	// local0 (16) * 8 + emergency (0) = 128; "-" fills the MSGID slot.
	assert.True(t, strings.HasPrefix(msg, "<128>1 "), "got %q", msg)
	assert.Contains(t, msg, " - down")
}

func TestCollectorLevelGate(t *testing.T) {
	t.Parallel()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	c, err := NewCollector(WithAddress(pc.LocalAddr().String()), WithLevel(severity.Error))
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Log(collectorRecord(severity.Info, "", "dropped")))
	require.NoError(t, c.Log(collectorRecord(severity.Error, "", "kept")))

	require.NoError(t, pc.SetReadDeadline(time.Now().Add(5*time.Second)))
	buf := make([]byte, 2048)
	n, _, err := pc.ReadFrom(buf)
	require.NoError(t, err)
	assert.Contains(t, string(buf[:n]), "kept", "first datagram must be the unfiltered record")
}

func TestCollectorWebsocket(t *testing.T) {
	t.Parallel()

	received := make(chan wireRecord, 1)
	srv := httptest.NewServer(websocket.Handler(func(ws *websocket.Conn) {
		var wr wireRecord
		if err := websocket.JSON.Receive(ws, &wr); err == nil {
			received <- wr
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c, err := NewCollector(WithWebsocketURL(url))
	require.NoError(t, err)
	defer c.Close()

	rec := collectorRecord(severity.Warn, "cache", "evicting")
	rec.Meta = map[string]any{"keys": 12}
	require.NoError(t, c.Log(rec))

	select {
	case wr := <-received:
		assert.Equal(t, "WARN", wr.Level)
		assert.Equal(t, "cache", wr.Facility)
		assert.Equal(t, "evicting", wr.Message)
		assert.Equal(t, "2026-08-24T10:30:00Z", wr.Time)
	case <-time.After(5 * time.Second):
		t.Fatal("collector frame never arrived")
	}
}

func TestCollectorDialFailure(t *testing.T) {
	t.Parallel()

	_, err := NewCollector(WithWebsocketURL("ws://127.0.0.1:1/nope"))
	require.Error(t, err)

	_, err = NewCollector(WithAddress("not-an-address"))
	require.Error(t, err)
}

func TestCollectorDoubleClose(t *testing.T) {
	t.Parallel()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	c, err := NewCollector(WithAddress(pc.LocalAddr().String()))
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.Log(collectorRecord(severity.Info, "", "late")), os.ErrClosed)
}
