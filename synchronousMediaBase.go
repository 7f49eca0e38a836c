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
	"sync"
	"time"
)

// frameCondition tells when the synchronous receiver has a complete frame.
type frameCondition struct {
	eop     eop
	count   int
	allData bool
}

// find returns the length of the frame available in buf, or -1.
// Scanning for the marker starts from the given position.
func (c *frameCondition) find(buf []byte, from int) int {
	if !c.eop.isEmpty() {
		// Marker may be split between two appended chunks.
		from -= c.eop.maxLen() - 1
		if from < 0 {
			from = 0
		}
		return c.eop.frameEnd(buf, from, len(buf))
	}
	if c.count > 0 {
		if len(buf) >= c.count {
			return c.count
		}
		return -1
	}
	if c.allData && len(buf) != 0 {
		return len(buf)
	}
	return -1
}

// synchronousMediaBase accumulates bytes received while the media is in
// synchronous mode. The receive loop appends, the caller of Receive waits
// until its frame is available and consumes it.
type synchronousMediaBase struct {
	mu sync.Mutex
	// Received bytes.
	data []byte
	// Position where the next marker scan starts.
	lastPosition int
	// Condition of the waiting consumer. Nil when nobody waits.
	want *frameCondition
	// Frame ready signal.
	received chan struct{}
}

func newGXSynchronousMediaBase(size int) *synchronousMediaBase {
	return &synchronousMediaBase{
		data:     make([]byte, 0, size),
		received: make(chan struct{}, 1),
	}
}

// Append adds received bytes. A waiting consumer is woken when its frame
// condition is met.
func (s *synchronousMediaBase) Append(data []byte) {
	if len(data) == 0 {
		return
	}
	s.mu.Lock()
	s.data = append(s.data, data...)
	ready := false
	if s.want != nil {
		if s.want.find(s.data, s.lastPosition) != -1 {
			ready = true
		} else {
			s.lastPosition = len(s.data)
		}
	}
	s.mu.Unlock()
	if ready {
		s.signalFrameReady()
	}
}

// consume removes n bytes from the beginning of the buffer.
func (s *synchronousMediaBase) consume(n int) []byte {
	ret := make([]byte, n)
	copy(ret, s.data[:n])
	s.data = s.data[:copy(s.data, s.data[n:])]
	s.lastPosition = 0
	return ret
}

// Search waits until a frame that fulfils the condition is available and
// returns its length. A negative wait time waits forever, zero checks only
// once. -1 is returned when the wait time elapses.
func (s *synchronousMediaBase) Search(c frameCondition, waitTime time.Duration) int {
	var deadline time.Time
	if waitTime > 0 {
		deadline = time.Now().Add(waitTime)
	}
	for {
		s.mu.Lock()
		n := c.find(s.data, s.lastPosition)
		if n != -1 || waitTime == 0 {
			s.want = nil
			if n == -1 {
				s.lastPosition = len(s.data)
			}
			s.mu.Unlock()
			return n
		}
		s.lastPosition = len(s.data)
		s.want = &c
		s.mu.Unlock()

		timeout := time.Duration(-1)
		if waitTime > 0 {
			timeout = time.Until(deadline)
			if timeout <= 0 {
				// Last check before giving up.
				waitTime = 0
				continue
			}
		}
		if !s.WaitForFrame(timeout) {
			waitTime = 0
		}
	}
}

// Get returns count bytes from the beginning of the buffer, or everything
// when count is negative. The bytes are removed unless peek is set.
func (s *synchronousMediaBase) Get(count int, peek bool) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if count < 0 || count > len(s.data) {
		count = len(s.data)
	}
	if peek {
		ret := make([]byte, count)
		copy(ret, s.data[:count])
		// Peeked bytes are scanned again.
		s.lastPosition = 0
		return ret
	}
	return s.consume(count)
}

// WaitForFrame blocks until a frame is signaled or the timeout elapses. A
// negative timeout waits forever. It reports whether a signal was received.
func (s *synchronousMediaBase) WaitForFrame(timeout time.Duration) bool {
	if timeout < 0 {
		<-s.received
		return true
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-s.received:
		return true
	case <-t.C:
		return false
	}
}

func (s *synchronousMediaBase) signalFrameReady() {
	select {
	case s.received <- struct{}{}:
	default:
	}
}

// ResetLastPosition restarts the marker scan from the beginning of the buffer.
func (s *synchronousMediaBase) ResetLastPosition() {
	s.mu.Lock()
	s.lastPosition = 0
	s.mu.Unlock()
}

// Reset clears received bytes.
func (s *synchronousMediaBase) Reset() {
	s.mu.Lock()
	s.data = s.data[:0]
	s.lastPosition = 0
	s.mu.Unlock()
	select {
	case <-s.received:
	default:
	}
}

// Len returns the amount of buffered bytes.
func (s *synchronousMediaBase) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
