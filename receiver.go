package gxnet

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"bytes"
	"errors"
	"io"
	"net"
	"sync/atomic"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/sirupsen/logrus"
	"github.com/valyala/bytebufferpool"
)

// ReceiveBufferSize is the size of the TCP read buffer.
// Ethernet maximum frame size is 1518 bytes.
const ReceiveBufferSize = 1518

// maxDatagramSize is the largest UDP payload.
const maxDatagramSize = 65507

// receiver reads one socket and routes the received bytes either to the
// synchronous buffer or to the received event handler.
type receiver struct {
	media *GXNet
	// TCP connection. Nil for UDP.
	conn net.Conn
	// UDP socket. Nil for TCP.
	packet *net.UDPConn
	// Remote address of the TCP connection.
	address string
	// Set when the connection is a client of a TCP server.
	server bool

	stopped  atomic.Bool
	detached atomic.Bool
	done     chan struct{}

	// Partial frame waiting for the end of packet.
	pending *bytebufferpool.ByteBuffer
	log     *logrus.Entry
}

func newReceiver(media *GXNet, conn net.Conn, packet *net.UDPConn, server bool) *receiver {
	r := &receiver{
		media:  media,
		conn:   conn,
		packet: packet,
		server: server,
		done:   make(chan struct{}),
	}
	if conn != nil {
		r.address = conn.RemoteAddr().String()
	}
	r.log = media.log().WithField("remote", r.address)
	return r
}

// run reads the socket until it is closed or the receiver is stopped.
func (r *receiver) run() {
	r.pending = bytebufferpool.Get()
	defer func() {
		bytebufferpool.Put(r.pending)
		r.pending = nil
		close(r.done)
	}()
	if r.packet != nil {
		r.readUDP()
	} else {
		r.readTCP()
	}
}

// interrupt tells the receiver that the socket is closed on purpose.
func (r *receiver) interrupt() {
	r.stopped.Store(true)
}

// wait waits until the receiver has stopped or the timeout elapses.
func (r *receiver) wait(timeout time.Duration) bool {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-r.done:
		return true
	case <-t.C:
		return false
	}
}

func (r *receiver) readTCP() {
	chunk := bytebufferpool.Get()
	defer bytebufferpool.Put(chunk)
	if cap(chunk.B) < ReceiveBufferSize {
		chunk.B = make([]byte, ReceiveBufferSize)
	}
	buf := chunk.B[:ReceiveBufferSize]
	for {
		n, err := r.conn.Read(buf)
		if r.stopped.Load() {
			return
		}
		if n > 0 {
			if delay := r.media.GetReceiveDelay(); delay > 0 {
				time.Sleep(time.Duration(delay) * time.Millisecond)
			}
			n = r.drain(buf, n)
			r.handleData(buf[:n], r.address)
		}
		if err != nil {
			r.finish(err)
			return
		}
	}
}

// drain reads the bytes that are already available without blocking. When
// the buffer fills up it is handled as one chunk and filling starts again.
func (r *receiver) drain(buf []byte, n int) int {
	for {
		cnt := available(r.conn)
		if cnt <= 0 {
			return n
		}
		if n+cnt > len(buf) {
			cnt = len(buf) - n
		}
		m, err := r.conn.Read(buf[n : n+cnt])
		n += m
		if n == len(buf) {
			r.handleData(buf, r.address)
			n = 0
		}
		if err != nil {
			// Error is returned again by the next read.
			return n
		}
	}
}

func (r *receiver) readUDP() {
	buf := make([]byte, maxDatagramSize)
	for {
		n, addr, err := r.packet.ReadFromUDP(buf)
		if err != nil {
			if r.stopped.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			r.log.WithError(err).Warn("UDP receive failed")
			r.media.trace(gxcommon.TraceTypesError, r.media.msg("msg.connection_failed", err))
			r.media.errorf(err)
			continue
		}
		r.handleData(buf[:n], addr.String())
	}
}

// finish handles the end of a TCP connection.
func (r *receiver) finish(err error) {
	if r.stopped.Load() || r.detached.Load() || errors.Is(err, net.ErrClosed) {
		return
	}
	eof := errors.Is(err, io.EOF)
	if r.server {
		if !eof {
			r.log.WithError(err).Warn("Client connection failed")
			r.media.trace(gxcommon.TraceTypesError, r.media.msg("msg.connection_failed", err))
			r.media.errorf(err)
		}
		r.media.clientDisconnected(r)
		return
	}
	if eof {
		r.log.Debug("Connection closed by peer")
		r.media.trace(gxcommon.TraceTypesInfo, r.media.msg("msg.peer_closed", r.address))
	} else {
		r.log.WithError(err).Warn("Connection failed")
		r.media.trace(gxcommon.TraceTypesError, r.media.msg("msg.connection_failed", err))
		r.media.errorf(err)
	}
	// Close waits for this goroutine so it can't be called from here.
	go r.media.closeFromReceiver(r)
}

// handleData routes one received chunk.
func (r *receiver) handleData(data []byte, sender string) {
	if len(data) == 0 || r.stopped.Load() {
		return
	}
	g := r.media
	g.bytesReceived.Add(uint64(len(data)))
	g.traceData(gxcommon.TraceTypesReceived, data, sender)
	if g.IsSynchronous() {
		// A partial frame must not be joined to data received later.
		r.pending.Reset()
		g.received.Append(data)
		return
	}
	marker := g.getEop()
	if marker.isEmpty() {
		g.receivef(bytes.Clone(data), sender)
		return
	}
	if r.packet != nil {
		// Datagram boundary ends the last frame.
		n := splitFrames(data, marker, func(frame []byte) {
			g.receivef(frame, sender)
		})
		if n < len(data) {
			g.receivef(bytes.Clone(data[n:]), sender)
		}
		return
	}
	_, _ = r.pending.Write(data)
	n := splitFrames(r.pending.B, marker, func(frame []byte) {
		g.receivef(frame, sender)
	})
	r.pending.Set(r.pending.B[n:])
}

// splitFrames calls emit for every frame terminated by the marker. The
// marker is not part of the frame. It returns the number of bytes used.
func splitFrames(buf []byte, marker eop, emit func([]byte)) int {
	start := 0
	for {
		pos, size := marker.search(buf, start, len(buf))
		if pos == -1 {
			return start
		}
		emit(bytes.Clone(buf[start:pos]))
		start = pos + size
	}
}
