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
	"github.com/Gurux/gxcommon-go"
)

// ConnectionEventHandler is a callback invoked when a client connects to or
// disconnects from a server media.
type ConnectionEventHandler func(gxcommon.IGXMedia, *ConnectionEventArgs)

// PropertyChangedEventHandler is a callback invoked when a media property is
// changed. The second argument is the name of the property.
type PropertyChangedEventHandler func(gxcommon.IGXMedia, string)

// ConnectionEventArgs describes a connected or disconnected client.
type ConnectionEventArgs struct {
	// info is the remote address of the client.
	info string

	// accept reports whether the connection is accepted.
	accept bool
}

// NewConnectionEventArgs creates connection event arguments for the client
// at the given address. The connection is accepted by default.
func NewConnectionEventArgs(info string) *ConnectionEventArgs {
	return &ConnectionEventArgs{info: info, accept: true}
}

// Info returns the remote address of the client.
func (e *ConnectionEventArgs) Info() string {
	return e.info
}

// Accepted reports whether the connection is accepted.
func (e *ConnectionEventArgs) Accepted() bool {
	return e.accept
}

// SetAccepted accepts or rejects the connection. Only meaningful in the
// client connected event.
func (e *ConnectionEventArgs) SetAccepted(v bool) {
	e.accept = v
}

// String implements fmt.Stringer.
func (e *ConnectionEventArgs) String() string {
	return e.info
}
