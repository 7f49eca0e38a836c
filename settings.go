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
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func xmlEscape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

// GetSettings implements IGXMedia
//
// Only the values that differ from the defaults are written.
func (g *GXNet) GetSettings() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var b strings.Builder
	if g.server {
		b.WriteString("<Server>1</Server>\n")
	}
	if g.hostName != "" {
		fmt.Fprintf(&b, "<IP>%s</IP>\n", xmlEscape(g.hostName))
	}
	if g.port != 0 {
		fmt.Fprintf(&b, "<Port>%d</Port>\n", g.port)
	}
	if g.protocol != NetworkTypeTCP {
		fmt.Fprintf(&b, "<Protocol>%d</Protocol>\n", int(g.protocol))
	}
	if g.useIPv6 {
		b.WriteString("<IPv6>1</IPv6>\n")
	}
	return b.String()
}

// SetSettings implements IGXMedia
//
// The settings are reset to the defaults before the given values are
// applied. Missing elements keep the default value.
func (g *GXNet) SetSettings(value string) error {
	server, host, port, protocol, ipv6 := false, "", 0, NetworkTypeTCP, false
	if strings.TrimSpace(value) != "" {
		dec := xml.NewDecoder(strings.NewReader("<root>" + value + "</root>"))
		for {
			tok, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			se, ok := tok.(xml.StartElement)
			if !ok || se.Name.Local == "root" {
				continue
			}
			var v string
			if err := dec.DecodeElement(&v, &se); err != nil {
				return err
			}
			v = strings.TrimSpace(v)
			switch se.Name.Local {
			case "Server":
				server = v == "1" || strings.EqualFold(v, "true")
			case "IP":
				host = v
			case "Port":
				if port, err = strconv.Atoi(v); err != nil {
					return fmt.Errorf("%w: %q", ErrInvalidPort, v)
				}
			case "Protocol":
				if protocol, err = NetworkTypeParse(v); err != nil {
					return err
				}
			case "IPv6":
				ipv6 = v == "1" || strings.EqualFold(v, "true")
			}
		}
	}
	g.SetServer(server)
	g.SetHostName(host)
	g.SetPort(port)
	g.SetProtocol(protocol)
	g.SetUseIPv6(ipv6)
	return nil
}
