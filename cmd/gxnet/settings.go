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

	"github.com/spf13/cobra"
)

var serverSettingsFlag bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the media settings as an XML fragment",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("server") {
			cfg.Server = serverSettingsFlag
		}
		media, err := cfg.newMedia()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), media.GetSettings())
		return nil
	},
}

func init() {
	settingsCmd.Flags().BoolVar(&serverSettingsFlag, "server", false, "server settings")
	rootCmd.AddCommand(settingsCmd)
}
