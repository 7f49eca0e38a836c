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

func TestGetSettings(t *testing.T) {
	g := NewGXNet(NetworkTypeTCP, "", 0)
	assert.Equal(t, "", g.GetSettings())

	g = NewGXNet(NetworkTypeUDP, "a<b", 4059)
	g.SetServer(true)
	g.SetUseIPv6(true)
	assert.Equal(t, "<Server>1</Server>\n<IP>a&lt;b</IP>\n<Port>4059</Port>\n<Protocol>0</Protocol>\n<IPv6>1</IPv6>\n", g.GetSettings())
}

func TestSetSettings(t *testing.T) {
	g := NewGXNet(NetworkTypeTCP, "old", 1)
	require.NoError(t, g.SetSettings("<Server>1</Server><IP>meter.local</IP>\n<Port> 4061 </Port><Protocol>0</Protocol><IPv6>1</IPv6><Unknown>x</Unknown>"))
	assert.True(t, g.GetServer())
	assert.Equal(t, "meter.local", g.GetHostName())
	assert.Equal(t, 4061, g.GetPort())
	assert.Equal(t, NetworkTypeUDP, g.GetProtocol())
	assert.True(t, g.GetUseIPv6())
}

func TestSetSettingsResetsDefaults(t *testing.T) {
	g := NewGXNetServer(NetworkTypeUDP, 4061)
	g.SetHostName("meter")
	g.SetUseIPv6(true)
	require.NoError(t, g.SetSettings("<Port>1000</Port>"))
	assert.False(t, g.GetServer())
	assert.Equal(t, "", g.GetHostName())
	assert.Equal(t, 1000, g.GetPort())
	assert.Equal(t, NetworkTypeTCP, g.GetProtocol())
	assert.False(t, g.GetUseIPv6())

	require.NoError(t, g.SetSettings(""))
	assert.Equal(t, 0, g.GetPort())
}

func TestSettingsRoundTrip(t *testing.T) {
	src := NewGXNetServer(NetworkTypeUDP, 4061)
	src.SetHostName("10.0.0.1")
	dst := NewGXNet(NetworkTypeTCP, "x", 1)
	require.NoError(t, dst.SetSettings(src.GetSettings()))
	assert.Equal(t, src.GetSettings(), dst.GetSettings())
}

func TestSetSettingsInvalid(t *testing.T) {
	g := NewGXNet(NetworkTypeTCP, "meter", 4059)
	assert.ErrorIs(t, g.SetSettings("<Port>abc</Port>"), ErrInvalidPort)
	assert.ErrorIs(t, g.SetSettings("<Protocol>5</Protocol>"), gxcommon.ErrUnknownEnum)
	assert.Error(t, g.SetSettings("<Port>1</Prt>"))
	// Nothing is changed when the settings are invalid.
	assert.Equal(t, "meter", g.GetHostName())
	assert.Equal(t, 4059, g.GetPort())
}
