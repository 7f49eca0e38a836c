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

func TestNetworkTypeParse(t *testing.T) {
	for value, want := range map[string]NetworkType{
		"udp": NetworkTypeUDP, "0": NetworkTypeUDP,
		"TCP": NetworkTypeTCP, " tcp/ip ": NetworkTypeTCP, "1": NetworkTypeTCP,
	} {
		got, err := NetworkTypeParse(value)
		require.NoError(t, err, value)
		assert.Equal(t, want, got, value)
	}
	_, err := NetworkTypeParse("SCTP")
	assert.ErrorIs(t, err, gxcommon.ErrUnknownEnum)
}

func TestNetworkTypeNetwork(t *testing.T) {
	assert.Equal(t, "tcp4", NetworkTypeTCP.network(false))
	assert.Equal(t, "tcp6", NetworkTypeTCP.network(true))
	assert.Equal(t, "udp4", NetworkTypeUDP.network(false))
	assert.Equal(t, "udp6", NetworkTypeUDP.network(true))
	assert.Equal(t, "", NetworkType(3).network(false))
	assert.Equal(t, "UDP", NetworkTypeUDP.String())
	assert.Equal(t, "TCP", NetworkTypeTCP.String())
}
