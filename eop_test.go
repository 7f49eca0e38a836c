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

	"github.com/Gurux/gxcommon-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEop(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		kind    eopKind
		markers [][]byte
	}{
		{"nil", nil, eopNone, nil},
		{"empty string", "", eopNone, nil},
		{"byte", byte(0x7E), eopSingle, [][]byte{{0x7E}}},
		{"int", 0x0A, eopSingle, [][]byte{{0x0A}}},
		{"string", "\r\n", eopSingle, [][]byte{[]byte("\r\n")}},
		{"bytes", []byte{1, 2}, eopSingle, [][]byte{{1, 2}}},
		{"strings", []string{"OK", "", "ERROR"}, eopAnyOf, [][]byte{[]byte("OK"), []byte("ERROR")}},
		{"one string in list", []string{"OK"}, eopAnyOf, [][]byte{[]byte("OK")}},
		{"byte slices", [][]byte{{1}, {2, 3}}, eopAnyOf, [][]byte{{1}, {2, 3}}},
		{"mixed", []any{byte(0x7E), "\n"}, eopAnyOf, [][]byte{{0x7E}, []byte("\n")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := newEop(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, e.kind)
			assert.Equal(t, tt.markers, e.markers)
			assert.Equal(t, tt.kind == eopNone, e.isEmpty())
		})
	}
}

func TestNewEopInvalid(t *testing.T) {
	_, err := newEop(256)
	assert.ErrorIs(t, err, gxcommon.ErrArgumentOutOfRange)
	_, err = newEop([]any{"OK", -1})
	assert.ErrorIs(t, err, gxcommon.ErrArgumentOutOfRange)
}

func TestEopSearch(t *testing.T) {
	e, err := newEop("\n")
	require.NoError(t, err)
	buf := []byte("AB\nCD\n")
	pos, size := e.search(buf, 0, len(buf))
	assert.Equal(t, 2, pos)
	assert.Equal(t, 1, size)
	pos, _ = e.search(buf, 3, len(buf))
	assert.Equal(t, 5, pos)
	pos, _ = e.search(buf, 3, 5)
	assert.Equal(t, -1, pos)
	assert.Equal(t, 3, e.frameEnd(buf, 0, len(buf)))
	assert.Equal(t, -1, e.frameEnd([]byte("AB"), 0, 2))

	none, err := newEop(nil)
	require.NoError(t, err)
	pos, _ = none.search(buf, 0, len(buf))
	assert.Equal(t, -1, pos)
}

func TestEopSearchFirstCandidateWins(t *testing.T) {
	e, err := newEop([]string{"END", "\n"})
	require.NoError(t, err)
	buf := []byte("A\nB END")
	pos, size := e.search(buf, 0, len(buf))
	assert.Equal(t, 4, pos)
	assert.Equal(t, 3, size)
	assert.Equal(t, 3, e.maxLen())

	// Second candidate is used when the first one is not found.
	buf = []byte("A\nB")
	pos, size = e.search(buf, 0, len(buf))
	assert.Equal(t, 1, pos)
	assert.Equal(t, 1, size)
}

func TestIndexOfBounds(t *testing.T) {
	buf := []byte("0123456789")
	assert.Equal(t, 3, indexOf(buf, []byte("34"), -5, 100))
	assert.Equal(t, -1, indexOf(buf, []byte("34"), 4, 10))
	assert.Equal(t, -1, indexOf(buf, []byte("89"), 0, 9))
	assert.Equal(t, -1, indexOf(buf, nil, 0, 10))
	assert.Equal(t, -1, indexOf(buf, []byte("0123456789A"), 0, 10))
}
