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
	"os"
	"strconv"
	"strings"

	"github.com/Gurux/gxcommon-go"
	"github.com/Gurux/gxnet-go/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config holds the media settings read from the YAML file and the flags.
type Config struct {
	Server     bool   `yaml:"server"`
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Protocol   string `yaml:"protocol"`
	Eop        string `yaml:"eop"`
	Trace      string `yaml:"trace"`
	Wait       int    `yaml:"wait"`
	MaxClients int    `yaml:"maxClients"`
	IPv6       bool   `yaml:"ipv6"`
	Lang       string `yaml:"lang"`
	HTTP       string `yaml:"http"`
}

// defaultConfig returns the settings used when nothing else is given.
func defaultConfig() *Config {
	return &Config{
		Host:     "127.0.0.1",
		Port:     4059,
		Protocol: "TCP",
		Eop:      `\n`,
		Trace:    "Error",
		Wait:     5000,
	}
}

// loadConfig reads the configuration from the given YAML file. An empty
// path returns the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// eop returns the end of packet with escape sequences like \n resolved.
// Empty value means that EOP is not used.
func (c *Config) eop() (string, error) {
	if c.Eop == "" {
		return "", nil
	}
	ret, err := strconv.Unquote(`"` + strings.ReplaceAll(c.Eop, `"`, `\"`) + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid eop %q: %w", c.Eop, err)
	}
	return ret, nil
}

// newMedia creates the media described by the configuration.
func (c *Config) newMedia() (*gxnet.GXNet, error) {
	protocol, err := gxnet.NetworkTypeParse(c.Protocol)
	if err != nil {
		return nil, err
	}
	traceLevel, err := gxcommon.TraceLevelParse(c.Trace)
	if err != nil {
		return nil, err
	}
	eop, err := c.eop()
	if err != nil {
		return nil, err
	}
	var media *gxnet.GXNet
	if c.Server {
		media = gxnet.NewGXNetServer(protocol, c.Port)
	} else {
		media = gxnet.NewGXNet(protocol, c.Host, c.Port)
	}
	media.SetUseIPv6(c.IPv6)
	media.SetMaxClientCount(c.MaxClients)
	if eop != "" {
		media.SetEop(eop)
	}
	if err := media.SetTrace(traceLevel); err != nil {
		return nil, err
	}
	media.Localize(c.language())
	return media, nil
}

// language returns the configured language or the one of the LANG
// environment variable.
func (c *Config) language() language.Tag {
	value := c.Lang
	if value == "" {
		value = strings.Split(os.Getenv("LANG"), ".")[0]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
