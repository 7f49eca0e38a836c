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
	"encoding/binary"
	"fmt"

	"github.com/Gurux/gxcommon-go"
)

type eopKind int

const (
	eopNone eopKind = iota
	eopSingle
	eopAnyOf
)

// eop is the end of packet marker used to find frame boundaries.
type eop struct {
	kind    eopKind
	markers [][]byte
}

// newEop converts a user given end of packet value to a marker.
//
// A byte, string or byte slice is a single marker. A slice of strings, byte
// slices or values is a set of candidate markers that are tried in the given
// order. Nil or an empty value disables framing.
func newEop(value any) (eop, error) {
	var markers [][]byte
	list := false
	switch v := value.(type) {
	case nil:
		return eop{}, nil
	case eop:
		return v, nil
	case int:
		if v < 0 || v > 0xFF {
			return eop{}, fmt.Errorf("%w: eop %d", gxcommon.ErrArgumentOutOfRange, v)
		}
		markers = append(markers, []byte{byte(v)})
	case []string:
		list = true
		for _, it := range v {
			markers = append(markers, []byte(it))
		}
	case [][]byte:
		list = true
		markers = append(markers, v...)
	case []any:
		list = true
		for _, it := range v {
			tmp, err := newEop(it)
			if err != nil {
				return eop{}, err
			}
			markers = append(markers, tmp.markers...)
		}
	default:
		tmp, err := gxcommon.ToBytes(value, binary.BigEndian)
		if err != nil {
			return eop{}, err
		}
		markers = append(markers, tmp)
	}
	ret := eop{}
	for _, it := range markers {
		if len(it) != 0 {
			ret.markers = append(ret.markers, bytes.Clone(it))
		}
	}
	switch {
	case len(ret.markers) == 0:
		ret.kind = eopNone
	case list || len(ret.markers) > 1:
		ret.kind = eopAnyOf
	default:
		ret.kind = eopSingle
	}
	return ret, nil
}

// isEmpty reports whether no marker is set.
func (e eop) isEmpty() bool {
	return e.kind == eopNone || len(e.markers) == 0
}

// maxLen returns the length of the longest candidate marker.
func (e eop) maxLen() int {
	ret := 0
	for _, it := range e.markers {
		if len(it) > ret {
			ret = len(it)
		}
	}
	return ret
}

// indexOf returns the index of the first occurrence of marker in
// buf[from:to], or -1.
func indexOf(buf []byte, marker []byte, from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > len(buf) {
		to = len(buf)
	}
	if len(marker) == 0 || to-from < len(marker) {
		return -1
	}
	pos := bytes.Index(buf[from:to], marker)
	if pos == -1 {
		return -1
	}
	return from + pos
}

// search returns the start index and the length of the first marker found in
// buf[from:to]. Candidates are evaluated in the configured order and the
// first candidate that matches wins even if another candidate occurs earlier
// in the buffer. Index is -1 if no candidate matches.
func (e eop) search(buf []byte, from, to int) (int, int) {
	if e.kind == eopNone {
		return -1, 0
	}
	for _, it := range e.markers {
		if pos := indexOf(buf, it, from, to); pos != -1 {
			return pos, len(it)
		}
	}
	return -1, 0
}

// frameEnd returns the length of the first frame in buf[from:to], marker
// included, or -1 if the frame is not complete.
func (e eop) frameEnd(buf []byte, from, to int) int {
	pos, size := e.search(buf, from, to)
	if pos == -1 {
		return -1
	}
	return pos + size
}
