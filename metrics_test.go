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

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gather returns the metric values of the registry by name.
func gather(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	ret := make(map[string]float64)
	for _, f := range families {
		for _, m := range f.GetMetric() {
			ret[f.GetName()] = metricValue(f.GetType(), m)
		}
	}
	return ret
}

func metricValue(t dto.MetricType, m *dto.Metric) float64 {
	if t == dto.MetricType_COUNTER {
		return m.GetCounter().GetValue()
	}
	return m.GetGauge().GetValue()
}

func TestCollector(t *testing.T) {
	server := echoServer(t, NetworkTypeTCP)
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewCollector(server, "gxnet", prometheus.Labels{"media": "server"})))

	values := gather(t, reg)
	assert.Equal(t, 1.0, values["gxnet_media_open"])
	assert.Equal(t, 0.0, values["gxnet_media_clients"])
	assert.Equal(t, 0.0, values["gxnet_media_bytes_sent_total"])

	client := openClient(t, NetworkTypeTCP, server.GetPort())
	reply, ok := request(t, client, "PING\n")
	require.True(t, ok)
	require.Equal(t, "PING\n", reply)
	require.Eventually(t, func() bool {
		return gather(t, reg)["gxnet_media_clients"] == 1
	}, 2*time.Second, 5*time.Millisecond)
	values = gather(t, reg)
	assert.Equal(t, 5.0, values["gxnet_media_bytes_received_total"])
	assert.Equal(t, 5.0, values["gxnet_media_bytes_sent_total"])

	require.NoError(t, server.Close())
	values = gather(t, reg)
	assert.Equal(t, 0.0, values["gxnet_media_open"])
	assert.Equal(t, 0.0, values["gxnet_media_clients"])
}

func TestCollectorDescribe(t *testing.T) {
	c := NewCollector(NewGXNet(NetworkTypeTCP, "localhost", 4059), "", nil)
	ch := make(chan *prometheus.Desc, 8)
	c.Describe(ch)
	close(ch)
	assert.Len(t, ch, 4)
}
