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

// SetOnReceived implements IGXMedia
func (g *GXNet) SetOnReceived(value gxcommon.ReceivedEventHandler) {
	g.mu.Lock()
	g.onReceive = value
	g.mu.Unlock()
}

// SetOnError implements IGXMedia
func (g *GXNet) SetOnError(value gxcommon.ErrorEventHandler) {
	g.mu.Lock()
	g.onErr = value
	g.mu.Unlock()
}

// SetOnMediaStateChange implements IGXMedia
func (g *GXNet) SetOnMediaStateChange(value gxcommon.MediaStateHandler) {
	g.mu.Lock()
	g.onState = value
	g.mu.Unlock()
}

// SetOnTrace implements IGXMedia
func (g *GXNet) SetOnTrace(value gxcommon.TraceEventHandler) {
	g.mu.Lock()
	g.onTrace = value
	g.mu.Unlock()
}

// SetOnClientConnected sets the handler that is called when a client
// connects to the TCP server. The client is rejected if the handler calls
// SetAccepted(false).
func (g *GXNet) SetOnClientConnected(value ConnectionEventHandler) {
	g.mu.Lock()
	g.onClientConnected = value
	g.mu.Unlock()
}

// SetOnClientDisconnected sets the handler that is called when a client of
// the TCP server disconnects.
func (g *GXNet) SetOnClientDisconnected(value ConnectionEventHandler) {
	g.mu.Lock()
	g.onClientDisconnected = value
	g.mu.Unlock()
}

// SetOnPropertyChanged sets the handler that is called when a setting of the
// media changes.
func (g *GXNet) SetOnPropertyChanged(value PropertyChangedEventHandler) {
	g.mu.Lock()
	g.onPropertyChanged = value
	g.mu.Unlock()
}

// Handlers are called without holding the lock so they can use the media.

func (g *GXNet) receivef(data []byte, sender string) {
	g.mu.RLock()
	cb := g.onReceive
	g.mu.RUnlock()
	if cb != nil {
		cb(g, *gxcommon.NewReceiveEventArgs(data, sender))
	}
}

func (g *GXNet) errorf(err error) {
	g.mu.RLock()
	cb := g.onErr
	g.mu.RUnlock()
	if cb != nil {
		cb(g, err)
	}
}

func (g *GXNet) statef(state gxcommon.MediaState) {
	g.mu.RLock()
	cb := g.onState
	g.mu.RUnlock()
	if cb != nil {
		cb(g, *gxcommon.NewMediaStateEventArgs(state))
	}
}

func (g *GXNet) clientConnected(e *ConnectionEventArgs) {
	g.mu.RLock()
	cb := g.onClientConnected
	g.mu.RUnlock()
	if cb != nil {
		cb(g, e)
	}
}

func (g *GXNet) notifyClientDisconnected(e *ConnectionEventArgs) {
	g.mu.RLock()
	cb := g.onClientDisconnected
	g.mu.RUnlock()
	if cb != nil {
		cb(g, e)
	}
}

func (g *GXNet) propertyChanged(name string) {
	g.mu.RLock()
	cb := g.onPropertyChanged
	g.mu.RUnlock()
	if cb != nil {
		cb(g, name)
	}
}

// traceHandler returns the trace handler if the trace type is enabled by
// the trace level.
func (g *GXNet) traceHandler(traceType gxcommon.TraceTypes) gxcommon.TraceEventHandler {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.onTrace == nil || !traceEnabled(g.traceLevel, traceType) {
		return nil
	}
	return g.onTrace
}

func traceEnabled(level gxcommon.TraceLevel, traceType gxcommon.TraceTypes) bool {
	switch traceType {
	case gxcommon.TraceTypesError:
		return level >= gxcommon.TraceLevelError
	case gxcommon.TraceTypesWarning:
		return level >= gxcommon.TraceLevelWarning
	case gxcommon.TraceTypesInfo:
		return level >= gxcommon.TraceLevelInfo
	default:
		// Sent and received data.
		return level >= gxcommon.TraceLevelVerbose
	}
}

func (g *GXNet) trace(traceType gxcommon.TraceTypes, message string) {
	if cb := g.traceHandler(traceType); cb != nil {
		cb(g, *gxcommon.NewTraceEventArgs(traceType, message, ""))
	}
}

// traceData traces sent or received bytes. The data is copied because the
// caller reuses its buffer.
func (g *GXNet) traceData(traceType gxcommon.TraceTypes, data []byte, receiver string) {
	if cb := g.traceHandler(traceType); cb != nil {
		cb(g, *gxcommon.NewTraceEventArgs(traceType, append([]byte(nil), data...), receiver))
	}
}
