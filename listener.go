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
	"errors"
	"net"
	"sync/atomic"
	"time"

	"github.com/Gurux/gxcommon-go"
)

// listener accepts new TCP clients for the server media.
type listener struct {
	media   *GXNet
	ln      net.Listener
	stopped atomic.Bool
	done    chan struct{}
}

func newListener(media *GXNet, ln net.Listener) *listener {
	return &listener{media: media, ln: ln, done: make(chan struct{})}
}

// run accepts connections until the listener is interrupted.
func (l *listener) run() {
	defer close(l.done)
	var delay time.Duration
	for {
		conn, err := l.ln.Accept()
		if err != nil {
			if l.stopped.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			l.media.log().WithError(err).Warn("Accept failed")
			l.media.trace(gxcommon.TraceTypesError, l.media.msg("msg.accept_failed", err))
			l.media.errorf(err)
			// Don't spin if accept keeps failing.
			if delay == 0 {
				delay = 5 * time.Millisecond
			} else if delay *= 2; delay > time.Second {
				delay = time.Second
			}
			time.Sleep(delay)
			continue
		}
		delay = 0
		if l.stopped.Load() {
			_ = conn.Close()
			return
		}
		l.media.accept(conn)
	}
}

// interrupt stops accepting. Accept is unblocked by closing the socket.
func (l *listener) interrupt() {
	l.stopped.Store(true)
}

func (l *listener) wait(timeout time.Duration) bool {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-l.done:
		return true
	case <-t.C:
		return false
	}
}
