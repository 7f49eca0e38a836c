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

import "errors"

// ErrInvalidPort is returned when the port is not between 1 and 65535.
var ErrInvalidPort = errors.New("invalid port")

// ErrInvalidHost is returned when a client has no host name.
var ErrInvalidHost = errors.New("invalid host name")

// ErrInvalidProtocol is returned for an unknown network protocol.
var ErrInvalidProtocol = errors.New("invalid protocol")

// ErrNotSynchronous is returned when Receive is called outside synchronous mode.
var ErrNotSynchronous = errors.New("media is not in synchronous mode")

// ErrUnknownTarget is returned when the receiver of the data is not connected.
var ErrUnknownTarget = errors.New("unknown target address")

// ErrPortMissing is returned when the UDP target address has no port.
var ErrPortMissing = errors.New("port is missing")

// ErrAttachTCPOnly is returned when Attach is used with other than TCP server.
var ErrAttachTCPOnly = errors.New("attach can be used only with TCP/IP server")

// ErrMaxClients is reported when a client is rejected because the maximum
// client count is reached.
var ErrMaxClients = errors.New("maximum client count reached")
