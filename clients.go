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
	"sort"
	"sync"
)

// clientRegistry holds the connected clients of a TCP server keyed by the
// remote address.
type clientRegistry struct {
	mu      sync.Mutex
	clients map[string]*receiver
}

func newClientRegistry() *clientRegistry {
	return &clientRegistry{clients: make(map[string]*receiver)}
}

// add registers the client unless the registry is full. Zero or negative
// limit means no limit.
func (c *clientRegistry) add(address string, r *receiver, limit int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if limit > 0 && len(c.clients) >= limit {
		return false
	}
	c.clients[address] = r
	return true
}

// remove unregisters the client if it is still owned by the given receiver.
func (c *clientRegistry) remove(address string, r *receiver) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if it, ok := c.clients[address]; ok && (r == nil || it == r) {
		delete(c.clients, address)
		return true
	}
	return false
}

// take unregisters the client and returns its receiver.
func (c *clientRegistry) take(address string) *receiver {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.clients[address]
	delete(c.clients, address)
	return r
}

func (c *clientRegistry) get(address string) *receiver {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clients[address]
}

// takeAll empties the registry and returns the removed receivers.
func (c *clientRegistry) takeAll() []*receiver {
	c.mu.Lock()
	defer c.mu.Unlock()
	ret := make([]*receiver, 0, len(c.clients))
	for k, r := range c.clients {
		ret = append(ret, r)
		delete(c.clients, k)
	}
	return ret
}

// addresses returns the sorted remote addresses of the connected clients.
func (c *clientRegistry) addresses() []string {
	c.mu.Lock()
	ret := make([]string, 0, len(c.clients))
	for k := range c.clients {
		ret = append(ret, k)
	}
	c.mu.Unlock()
	sort.Strings(ret)
	return ret
}

func (c *clientRegistry) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}
