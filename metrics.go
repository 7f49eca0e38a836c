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
	"github.com/prometheus/client_golang/prometheus"
)

var _ prometheus.Collector = (*Collector)(nil)

// Collector exports the counters of the media to Prometheus.
//
// The byte counters start from zero when the media is opened.
type Collector struct {
	media         *GXNet
	bytesSent     *prometheus.Desc
	bytesReceived *prometheus.Desc
	clients       *prometheus.Desc
	open          *prometheus.Desc
}

// NewCollector returns a collector for the media. Constant labels separate
// the media when many are registered to the same registry.
func NewCollector(media *GXNet, namespace string, labels prometheus.Labels) *Collector {
	return &Collector{
		media: media,
		bytesSent: prometheus.NewDesc(prometheus.BuildFQName(namespace, "media", "bytes_sent_total"),
			"Bytes sent since the media was opened.", nil, labels),
		bytesReceived: prometheus.NewDesc(prometheus.BuildFQName(namespace, "media", "bytes_received_total"),
			"Bytes received since the media was opened.", nil, labels),
		clients: prometheus.NewDesc(prometheus.BuildFQName(namespace, "media", "clients"),
			"Clients connected to the TCP server.", nil, labels),
		open: prometheus.NewDesc(prometheus.BuildFQName(namespace, "media", "open"),
			"1 when the media is open.", nil, labels),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bytesSent
	ch <- c.bytesReceived
	ch <- c.clients
	ch <- c.open
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.bytesSent, prometheus.CounterValue, float64(c.media.GetBytesSent()))
	ch <- prometheus.MustNewConstMetric(c.bytesReceived, prometheus.CounterValue, float64(c.media.GetBytesReceived()))
	ch <- prometheus.MustNewConstMetric(c.clients, prometheus.GaugeValue, float64(c.media.clients.len()))
	var open float64
	if c.media.State() == gxcommon.MediaStateOpen {
		open = 1
	}
	ch <- prometheus.MustNewConstMetric(c.open, prometheus.GaugeValue, open)
}
