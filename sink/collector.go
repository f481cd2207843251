// SPDX-FileCopyrightText: Copyright 2026 The Faro Authors
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"golang.org/x/net/websocket"
)

// Collector's syslog facility code (local0).
const syslogFacility = 16

// Collector ships records to a remote log collector, fire and forget. The
// default transport is RFC 5424-shaped syslog datagrams over UDP; with
// WithWebsocketURL it streams JSON records over a websocket instead.
// Delivery is not guaranteed and the dispatcher never waits on it.
type Collector struct {
	threshold
	mu       sync.Mutex
	conn     net.Conn        // UDP transport
	ws       *websocket.Conn // websocket transport
	hostname string
}

// NewCollector builds a collector sink. Recognized options: WithLevel,
// WithAddress (UDP, default 127.0.0.1:514), WithWebsocketURL, WithOrigin.
func NewCollector(opts ...Option) (*Collector, error) {
	o := newOptions(opts)
	c := &Collector{}
	c.SetLevel(o.level)

	c.hostname, _ = os.Hostname()
	if c.hostname == "" {
		c.hostname = "-"
	}

	if o.url != "" {
		origin := o.origin
		if origin == "" {
			origin = "http://localhost/"
		}
		ws, err := websocket.Dial(o.url, "", origin)
		if err != nil {
			return nil, fmt.Errorf("sink: collector dial %q: %w", o.url, err)
		}
		c.ws = ws
		return c, nil
	}

	addr := o.address
	if addr == "" {
		addr = "127.0.0.1:514"
	}
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("sink: collector dial %q: %w", addr, err)
	}
	c.conn = conn
	return c, nil
}

// Log sends one datagram or one websocket frame. UDP writes do not block on
// the network and errors surface only through the dispatcher's diagnostic
// callback.
func (c *Collector) Log(rec Record) error {
	if !c.enabled(rec.Level) {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ws != nil {
		return websocket.JSON.Send(c.ws, encodeRecord(rec))
	}
	if c.conn == nil {
		return os.ErrClosed
	}
	_, err := c.conn.Write([]byte(c.syslogLine(rec)))
	return err
}

// syslogLine renders an RFC 5424-shaped message; the facility name rides in
// the MSGID slot so collectors can key on it.
func (c *Collector) syslogLine(rec Record) string {
	pri := syslogFacility*8 + rec.Level.Syslog()
	msgid := rec.Facility
	if msgid == "" {
		msgid = "-"
	}
	return fmt.Sprintf("<%d>1 %s %s faro - %s - %s",
		pri, rec.Time.Format(time.RFC3339), c.hostname, msgid, rec.Message())
}

// Close tears down the transport. A second Close is a no-op.
func (c *Collector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.ws != nil:
		ws := c.ws
		c.ws = nil
		return ws.Close()
	case c.conn != nil:
		conn := c.conn
		c.conn = nil
		return conn.Close()
	}
	return nil
}
