// Package gxnet provides TCP and UDP media for Gurux components.
//
// GXNet implements gxcommon.IGXMedia. The same media works as a client that
// connects one peer or as a server that listens a port. A TCP server serves
// many clients at the same time and keeps them in a registry keyed by the
// remote address. Data is sent to a client by giving its address as the
// receiver of Send.
//
// # Receiving
//
// Received bytes are delivered to the handler set with SetOnReceived. When an
// end of packet (EOP) marker is set the bytes are split into frames and the
// marker is removed. The marker can be a byte, a string, a byte slice or a
// slice of them. With a slice the first marker in the given order that is
// found ends the frame.
//
// In synchronous mode the bytes are collected to a buffer instead and read
// with Receive:
//
//	n := gxnet.NewGXNet(gxnet.NetworkTypeTCP, "127.0.0.1", 4059)
//	if err := n.Open(); err != nil {
//		return err
//	}
//	defer n.Close()
//	release := n.GetSynchronous()
//	defer release()
//	if err := n.Send("PING\n", ""); err != nil {
//		return err
//	}
//	p := gxcommon.NewReceiveParameters[string]()
//	p.EOP = "\n"
//	p.WaitTime = 1000
//	ok, err := n.Receive(p)
//
// # Server
//
//	s := gxnet.NewGXNetServer(gxnet.NetworkTypeTCP, 4059)
//	s.SetOnClientConnected(func(m gxcommon.IGXMedia, e *gxnet.ConnectionEventArgs) {
//		// e.SetAccepted(false) rejects the client.
//	})
//	s.SetOnReceived(func(m gxcommon.IGXMedia, e gxcommon.ReceiveEventArgs) {
//		_ = m.Send(e.Data(), e.SenderInfo())
//	})
//
// Event handlers are called on the goroutine that detected the event. A
// handler must not call Close of the same media.
//
// Trace and error texts are localized with Localize. Diagnostics are also
// written to the logrus logger set with SetLogger.
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
