package main

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
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/Gurux/gxnet-go/v2"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	maxClientsFlag int
	httpFlag       string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run an echo server until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("max-clients") {
			cfg.MaxClients = maxClientsFlag
		}
		if cmd.Flags().Changed("http") {
			cfg.HTTP = httpFlag
		}
		cfg.Server = true
		media, err := cfg.newMedia()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printEvents(media, cmd.ErrOrStderr())
		media.SetOnClientConnected(func(m gxcommon.IGXMedia, e *gxnet.ConnectionEventArgs) {
			fmt.Fprintf(out, "Client connected: %s\n", e.Info())
		})
		media.SetOnClientDisconnected(func(m gxcommon.IGXMedia, e *gxnet.ConnectionEventArgs) {
			fmt.Fprintf(out, "Client disconnected: %s\n", e.Info())
		})
		media.SetOnReceived(func(m gxcommon.IGXMedia, e gxcommon.ReceiveEventArgs) {
			fmt.Fprintf(out, "Received from %s: %q\n", e.SenderInfo(), e.Data())
			eop, _ := cfg.eop()
			if err := m.Send(append(e.Data(), eop...), e.SenderInfo()); err != nil {
				logrus.WithError(err).WithField("remote", e.SenderInfo()).Warn("Echo failed")
			}
		})
		if err := media.Validate(); err != nil {
			return err
		}
		if err := media.Open(); err != nil {
			return fmt.Errorf("failed to open: %w", err)
		}
		defer media.Close()
		fmt.Fprintf(out, "%s server listening port %d\n", media.GetProtocol(), media.GetPort())

		if cfg.HTTP != "" {
			srv := newHTTPServer(cfg.HTTP, media)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logrus.WithError(err).Error("HTTP server failed")
				}
			}()
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(ctx)
			}()
		}
		<-cmd.Context().Done()
		return nil
	},
}

// newHTTPServer serves the metrics and the health checks of the media.
func newHTTPServer(addr string, media *gxnet.GXNet) *http.Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(gxnet.NewCollector(media, "gxnet", nil))
	health := healthcheck.NewMetricsHandler(reg, "gxnet")
	health.AddReadinessCheck("media", func() error {
		if !media.IsOpen() {
			return gxcommon.ErrConnectionClosed
		}
		return nil
	})
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/live", health.LiveEndpoint)
	mux.HandleFunc("/ready", health.ReadyEndpoint)
	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}

func init() {
	serverCmd.Flags().IntVar(&maxClientsFlag, "max-clients", 0, "maximum number of TCP clients, 0 is unlimited")
	serverCmd.Flags().StringVar(&httpFlag, "http", "", "address of the metrics and health check endpoint, e.g. :9100")
	rootCmd.AddCommand(serverCmd)
}
