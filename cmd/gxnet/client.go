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
	"errors"
	"fmt"
	"strings"

	"github.com/Gurux/gxcommon-go"
	"github.com/spf13/cobra"
)

var (
	messageFlag string
	waitFlag    int
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Send a message and print the reply",
	RunE: func(cmd *cobra.Command, args []string) error {
		if messageFlag == "" {
			return errors.New("--message flag is required")
		}
		if cmd.Flags().Changed("wait") {
			cfg.Wait = waitFlag
		}
		cfg.Server = false
		media, err := cfg.newMedia()
		if err != nil {
			return err
		}
		printEvents(media, cmd.ErrOrStderr())
		if err := media.Validate(); err != nil {
			return err
		}
		if err := media.Open(); err != nil {
			return fmt.Errorf("failed to open %s: %w", media.String(), err)
		}
		defer media.Close()

		eop, _ := cfg.eop()
		release := media.GetSynchronous()
		defer release()
		if err := media.Send(messageFlag+eop, ""); err != nil {
			return fmt.Errorf("failed to send: %w", err)
		}
		p := gxcommon.NewReceiveParameters[string]()
		p.WaitTime = cfg.Wait
		if eop == "" {
			// Echo reply has the same length.
			p.Count = len(messageFlag)
		}
		ok, err := media.Receive(p)
		if err != nil {
			return fmt.Errorf("failed to receive: %w", err)
		}
		if !ok {
			return fmt.Errorf("no reply in %d ms", cfg.Wait)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSuffix(p.Reply.(string), eop))
		return nil
	},
}

func init() {
	clientCmd.Flags().StringVarP(&messageFlag, "message", "m", "", "message to send")
	clientCmd.Flags().IntVarP(&waitFlag, "wait", "w", 0, "reply wait time in milliseconds")
	rootCmd.AddCommand(clientCmd)
}
