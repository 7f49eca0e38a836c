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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineCondition(t *testing.T) frameCondition {
	t.Helper()
	e, err := newEop("\n")
	require.NoError(t, err)
	return frameCondition{eop: e}
}

func TestSearchFindsBufferedFrame(t *testing.T) {
	s := newGXSynchronousMediaBase(16)
	s.Append([]byte("AB\nCD"))
	n := s.Search(lineCondition(t), 0)
	require.Equal(t, 3, n)
	assert.Equal(t, []byte("AB\n"), s.Get(n, false))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, -1, s.Search(lineCondition(t), 0))
}

func TestSearchMarkerSplitBetweenChunks(t *testing.T) {
	e, err := newEop("\r\n")
	require.NoError(t, err)
	c := frameCondition{eop: e}
	s := newGXSynchronousMediaBase(16)
	s.Append([]byte("OK\r"))
	assert.Equal(t, -1, s.Search(c, 0))
	s.Append([]byte("\n"))
	assert.Equal(t, 4, s.Search(c, 0))
}

func TestSearchWaitsForProducer(t *testing.T) {
	s := newGXSynchronousMediaBase(16)
	go func() {
		for _, it := range []string{"H", "EL", "LO", "\nNEXT"} {
			time.Sleep(10 * time.Millisecond)
			s.Append([]byte(it))
		}
	}()
	n := s.Search(lineCondition(t), 2*time.Second)
	require.Equal(t, 6, n)
	assert.Equal(t, []byte("HELLO\n"), s.Get(n, false))
}

func TestSearchChunkingDoesNotChangeResult(t *testing.T) {
	payload := []byte("first\nsecond\nthird\n")
	for size := 1; size <= len(payload); size++ {
		s := newGXSynchronousMediaBase(4)
		for i := 0; i < len(payload); i += size {
			end := min(i+size, len(payload))
			s.Append(payload[i:end])
		}
		var frames []string
		for {
			n := s.Search(lineCondition(t), 0)
			if n == -1 {
				break
			}
			frames = append(frames, string(s.Get(n, false)))
		}
		assert.Equal(t, []string{"first\n", "second\n", "third\n"}, frames, "chunk size %d", size)
	}
}

func TestSearchTimeout(t *testing.T) {
	s := newGXSynchronousMediaBase(16)
	s.Append([]byte("no end"))
	start := time.Now()
	assert.Equal(t, -1, s.Search(lineCondition(t), 100*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
	// Data is kept.
	assert.Equal(t, 6, s.Len())
}

func TestSearchCount(t *testing.T) {
	s := newGXSynchronousMediaBase(16)
	c := frameCondition{count: 4}
	s.Append([]byte("ABC"))
	assert.Equal(t, -1, s.Search(c, 0))
	go func() {
		time.Sleep(20 * time.Millisecond)
		s.Append([]byte("DE"))
	}()
	assert.Equal(t, 4, s.Search(c, time.Second))
	assert.Equal(t, []byte("ABCD"), s.Get(4, false))
}

func TestSearchAllData(t *testing.T) {
	s := newGXSynchronousMediaBase(16)
	c := frameCondition{allData: true}
	assert.Equal(t, -1, s.Search(c, 0))
	s.Append([]byte("ABC"))
	assert.Equal(t, 3, s.Search(c, 0))
}

func TestGetPeekAndAll(t *testing.T) {
	s := newGXSynchronousMediaBase(16)
	s.Append([]byte("ABCDEF"))
	assert.Equal(t, []byte("AB"), s.Get(2, true))
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, []byte("ABCDEF"), s.Get(100, true))
	assert.Equal(t, []byte("ABCDEF"), s.Get(-1, false))
	assert.Equal(t, 0, s.Len())
}

func TestReset(t *testing.T) {
	s := newGXSynchronousMediaBase(16)
	s.Append([]byte("AB\n"))
	s.signalFrameReady()
	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.WaitForFrame(10*time.Millisecond))
}

func TestWaitForFrame(t *testing.T) {
	s := newGXSynchronousMediaBase(16)
	assert.False(t, s.WaitForFrame(0))
	s.signalFrameReady()
	// Only one pending signal is kept.
	s.signalFrameReady()
	assert.True(t, s.WaitForFrame(-1))
	assert.False(t, s.WaitForFrame(10*time.Millisecond))
}
