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
	"fmt"
	"io"

	"github.com/Gurux/gxcommon-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile   string
	traceFlag string
	langFlag  string
	hostFlag  string
	portFlag  int
	udpFlag   bool
	eopFlag   string
	ipv6Flag  bool

	// Set during PersistentPreRun
	cfg *Config
)

var rootCmd = &cobra.Command{
	Use:   "gxnet",
	Short: "Send and receive data over TCP or UDP",
	Long: `gxnet opens a TCP or UDP media. The client sends a message and prints
the reply. The server echoes everything it receives back to the sender.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = loadConfig(cfgFile); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlags(cmd, cfg)
		level, err := gxcommon.TraceLevelParse(cfg.Trace)
		if err != nil {
			return err
		}
		logrus.SetOutput(cmd.ErrOrStderr())
		logrus.SetLevel(logLevel(level))
		return nil
	},
}

// applyFlags overrides the configuration with the flags given on the
// command line.
func applyFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if flags.Changed("trace") {
		cfg.Trace = traceFlag
	}
	if flags.Changed("lang") {
		cfg.Lang = langFlag
	}
	if flags.Changed("host") {
		cfg.Host = hostFlag
	}
	if flags.Changed("port") {
		cfg.Port = portFlag
	}
	if flags.Changed("udp") {
		if udpFlag {
			cfg.Protocol = "UDP"
		} else {
			cfg.Protocol = "TCP"
		}
	}
	if flags.Changed("eop") {
		cfg.Eop = eopFlag
	}
	if flags.Changed("ipv6") {
		cfg.IPv6 = ipv6Flag
	}
}

func logLevel(level gxcommon.TraceLevel) logrus.Level {
	switch level {
	case gxcommon.TraceLevelOff, gxcommon.TraceLevelError:
		return logrus.ErrorLevel
	case gxcommon.TraceLevelWarning:
		return logrus.WarnLevel
	case gxcommon.TraceLevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

// printEvents prints the trace, error and state events of the media.
func printEvents(media gxcommon.IGXMedia, out io.Writer) {
	media.SetOnTrace(func(m gxcommon.IGXMedia, e gxcommon.TraceEventArgs) {
		fmt.Fprintf(out, "Trace: %s\n", e.String())
	})
	media.SetOnError(func(m gxcommon.IGXMedia, err error) {
		fmt.Fprintf(out, "Error: %v\n", err)
	})
	media.SetOnMediaStateChange(func(m gxcommon.IGXMedia, e gxcommon.MediaStateEventArgs) {
		fmt.Fprintf(out, "Media state: %s\n", e.State().String())
	})
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.StringVarP(&traceFlag, "trace", "t", "", "trace level: Off, Error, Warning, Info, Verbose")
	flags.StringVar(&langFlag, "lang", "", "language of the trace messages (default from LANG)")
	flags.StringVarP(&hostFlag, "host", "H", "", "host name or IP address")
	flags.IntVarP(&portFlag, "port", "p", 0, "port number")
	flags.BoolVar(&udpFlag, "udp", false, "use UDP instead of TCP")
	flags.StringVar(&eopFlag, "eop", "", `end of packet, escapes like \n are allowed`)
	flags.BoolVar(&ipv6Flag, "ipv6", false, "use IPv6")
}
