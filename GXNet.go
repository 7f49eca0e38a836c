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
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gurux/gxcommon-go"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// closeWaitTime is how long Close waits for the peer to close its side of
// the TCP connection after the write side is shut down.
var closeWaitTime = 10 * time.Second

var _ gxcommon.IGXMedia = (*GXNet)(nil)

// GXNet is a TCP or UDP media that works as a client or as a server.
type GXNet struct {
	// Serializes Open and Close.
	lifecycle sync.Mutex
	mu        sync.RWMutex

	server   bool
	protocol NetworkType
	hostName string
	port     int
	// UseIPv6 defines if IPv6 is used. Default is False (IPv4).
	useIPv6 bool
	// Connection timeout.
	timeout time.Duration
	// Receive delay in milliseconds.
	receiveDelay   int
	maxClientCount int
	eop            eop
	eopValue       any

	// The trace level specifies which types of trace messages are emitted.
	traceLevel gxcommon.TraceLevel

	state gxcommon.MediaState
	// TCP client connection.
	conn net.Conn
	// UDP socket of the client or the server.
	packet *net.UDPConn
	// UDP client target.
	remote *net.UDPAddr
	// TCP server socket.
	ln       net.Listener
	receiver *receiver
	listener *listener
	// Runs receivers of the TCP server clients.
	pool    *ants.Pool
	clients *clientRegistry

	synchronous   int
	bytesSent     atomic.Uint64
	bytesReceived atomic.Uint64
	received      *synchronousMediaBase

	onState              gxcommon.MediaStateHandler
	onReceive            gxcommon.ReceivedEventHandler
	onTrace              gxcommon.TraceEventHandler
	onErr                gxcommon.ErrorEventHandler
	onClientConnected    ConnectionEventHandler
	onClientDisconnected ConnectionEventHandler
	onPropertyChanged    PropertyChangedEventHandler

	logger *logrus.Entry
	// Printer for localized messages.
	p *message.Printer
}

// NewGXNet creates a client media for the given protocol, host and port.
func NewGXNet(protocol NetworkType, hostName string, port int) *GXNet {
	g := &GXNet{
		protocol: protocol,
		hostName: hostName,
		port:     port,
		timeout:  time.Duration(10000) * time.Millisecond,
		state:    gxcommon.MediaStateClosed,
		clients:  newClientRegistry(),
		received: newGXSynchronousMediaBase(ReceiveBufferSize),
		logger:   logrus.WithField("component", "GXNet"),
	}
	g.Localize(language.AmericanEnglish)
	return g
}

// NewGXNetServer creates a server media that listens the given port.
// Port zero selects a free port when the media is opened.
func NewGXNetServer(protocol NetworkType, port int) *GXNet {
	g := NewGXNet(protocol, "", port)
	g.server = true
	return g
}

// String implements fmt.Stringer.
func (g *GXNet) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return net.JoinHostPort(g.hostName, strconv.Itoa(g.port))
}

// GetName implements IGXMedia
func (g *GXNet) GetName() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	name := fmt.Sprintf("%s %d", g.hostName, g.port)
	if g.protocol == NetworkTypeUDP {
		return name + " UDP"
	}
	return name + " TCP/IP"
}

// IsOpen implements IGXMedia
func (g *GXNet) IsOpen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state == gxcommon.MediaStateOpen || g.state == gxcommon.MediaStateClosing
}

// State returns the current media state.
func (g *GXNet) State() gxcommon.MediaState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Copy implements IGXMedia
func (g *GXNet) Copy(target gxcommon.IGXMedia) error {
	dst, ok := target.(*GXNet)
	if !ok {
		return fmt.Errorf("copy: target is %T; want *GXNet", target)
	}
	if dst == g {
		return nil
	}
	g.mu.RLock()
	server, protocol, host, port := g.server, g.protocol, g.hostName, g.port
	ipv6, timeout, traceLevel := g.useIPv6, g.timeout, g.traceLevel
	e, eopValue, maxClients, delay := g.eop, g.eopValue, g.maxClientCount, g.receiveDelay
	g.mu.RUnlock()

	dst.SetServer(server)
	dst.SetProtocol(protocol)
	dst.SetHostName(host)
	dst.SetPort(port)
	dst.SetUseIPv6(ipv6)
	dst.SetMaxClientCount(maxClients)
	dst.SetReceiveDelay(delay)
	dst.mu.Lock()
	dst.timeout = timeout
	dst.traceLevel = traceLevel
	dst.eop = e
	dst.eopValue = eopValue
	dst.mu.Unlock()
	return nil
}

// GetMediaType implements IGXMedia
func (g *GXNet) GetMediaType() string {
	return "Net"
}

// GetServer reports whether the media works as a server.
func (g *GXNet) GetServer() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.server
}

// SetServer sets the media to the server or client role.
func (g *GXNet) SetServer(value bool) {
	g.mu.Lock()
	changed := g.server != value
	g.server = value
	g.mu.Unlock()
	if changed {
		g.propertyChanged("Server")
	}
}

// GetProtocol returns the used network protocol.
func (g *GXNet) GetProtocol() NetworkType {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.protocol
}

// SetProtocol sets the used network protocol.
func (g *GXNet) SetProtocol(value NetworkType) {
	g.mu.Lock()
	changed := g.protocol != value
	g.protocol = value
	g.mu.Unlock()
	if changed {
		g.propertyChanged("Protocol")
	}
}

// GetHostName returns the host name or IP address of the server.
func (g *GXNet) GetHostName() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.hostName
}

// SetHostName sets the host name or IP address of the server.
func (g *GXNet) SetHostName(value string) {
	g.mu.Lock()
	changed := g.hostName != value
	g.hostName = value
	g.mu.Unlock()
	if changed {
		g.propertyChanged("HostName")
	}
}

// GetPort returns the port number.
func (g *GXNet) GetPort() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.port
}

// SetPort sets the port number.
func (g *GXNet) SetPort(value int) {
	g.mu.Lock()
	changed := g.port != value
	g.port = value
	g.mu.Unlock()
	if changed {
		g.propertyChanged("Port")
	}
}

// GetUseIPv6 reports whether IPv6 is used.
func (g *GXNet) GetUseIPv6() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.useIPv6
}

// SetUseIPv6 selects between IPv6 and IPv4.
func (g *GXNet) SetUseIPv6(value bool) {
	g.mu.Lock()
	changed := g.useIPv6 != value
	g.useIPv6 = value
	g.mu.Unlock()
	if changed {
		g.propertyChanged("UseIPv6")
	}
}

// GetMaxClientCount returns how many clients the TCP server accepts at the
// same time. Zero means no limit.
func (g *GXNet) GetMaxClientCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.maxClientCount
}

// SetMaxClientCount sets how many clients the TCP server accepts at the same
// time. Zero or negative value means no limit. Used when the media is opened.
func (g *GXNet) SetMaxClientCount(value int) {
	if value < 0 {
		value = 0
	}
	g.mu.Lock()
	changed := g.maxClientCount != value
	g.maxClientCount = value
	g.mu.Unlock()
	if changed {
		g.propertyChanged("MaxClientCount")
	}
}

// GetReceiveDelay returns the receive delay in milliseconds.
func (g *GXNet) GetReceiveDelay() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.receiveDelay
}

// SetReceiveDelay sets how long the receiver waits after the first received
// byte before it reads the rest of the available data.
func (g *GXNet) SetReceiveDelay(value int) {
	g.mu.Lock()
	changed := g.receiveDelay != value
	g.receiveDelay = value
	g.mu.Unlock()
	if changed {
		g.propertyChanged("ReceiveDelay")
	}
}

// GetSynchronous implements IGXMedia
//
// Synchronous mode is reentrant. It ends when every returned function has
// been called.
func (g *GXNet) GetSynchronous() func() {
	g.mu.Lock()
	g.synchronous++
	g.mu.Unlock()
	return sync.OnceFunc(func() {
		g.mu.Lock()
		g.synchronous--
		g.mu.Unlock()
	})
}

// IsSynchronous implements IGXMedia
func (g *GXNet) IsSynchronous() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.synchronous != 0
}

// ResetSynchronousBuffer implements IGXMedia
func (g *GXNet) ResetSynchronousBuffer() {
	g.received.Reset()
}

// GetBytesSent implements IGXMedia
func (g *GXNet) GetBytesSent() uint64 {
	return g.bytesSent.Load()
}

// GetBytesReceived implements IGXMedia
func (g *GXNet) GetBytesReceived() uint64 {
	return g.bytesReceived.Load()
}

// ResetByteCounters implements IGXMedia
func (g *GXNet) ResetByteCounters() {
	g.bytesSent.Store(0)
	g.bytesReceived.Store(0)
}

// Validate implements IGXMedia
func (g *GXNet) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.port < 1 || g.port > 0xFFFF {
		return fmt.Errorf("%w: %s", ErrInvalidPort, g.p.Sprintf("msg.invalid_port", g.port))
	}
	if !g.server && strings.TrimSpace(g.hostName) == "" {
		return fmt.Errorf("%w: %s", ErrInvalidHost, g.p.Sprintf("msg.invalid_host"))
	}
	if g.protocol.network(false) == "" {
		return fmt.Errorf("%w: %d", ErrInvalidProtocol, int(g.protocol))
	}
	return nil
}

// SetEop implements IGXMedia
//
// The end of packet can be a byte, a string, a byte slice or a slice of
// them. With a slice the first marker in the given order that is found ends
// the frame. Invalid values are ignored and reported to the error handler.
func (g *GXNet) SetEop(value any) {
	e, err := newEop(value)
	if err != nil {
		g.log().WithError(err).Warn("Invalid end of packet")
		g.errorf(err)
		return
	}
	g.mu.Lock()
	g.eop = e
	g.eopValue = value
	g.mu.Unlock()
	g.propertyChanged("Eop")
}

// GetEop implements IGXMedia
func (g *GXNet) GetEop() any {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.eopValue
}

func (g *GXNet) getEop() eop {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.eop
}

// GetTimeout returns the connection timeout in milliseconds.
func (g *GXNet) GetTimeout() uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return uint32(g.timeout / time.Millisecond)
}

// SetTimeout sets the connection timeout in milliseconds. Zero uses the
// operating system default.
func (g *GXNet) SetTimeout(value uint32) error {
	g.mu.Lock()
	changed := g.timeout != time.Duration(value)*time.Millisecond
	g.timeout = time.Duration(value) * time.Millisecond
	g.mu.Unlock()
	if changed {
		g.propertyChanged("Timeout")
	}
	return nil
}

// GetTrace implements IGXMedia
func (g *GXNet) GetTrace() gxcommon.TraceLevel {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.traceLevel
}

// SetTrace implements IGXMedia
func (g *GXNet) SetTrace(traceLevel gxcommon.TraceLevel) error {
	if traceLevel < gxcommon.TraceLevelOff || traceLevel > gxcommon.TraceLevelVerbose {
		return fmt.Errorf("%w: %d", gxcommon.ErrUnknownEnum, int(traceLevel))
	}
	g.mu.Lock()
	g.traceLevel = traceLevel
	g.mu.Unlock()
	return nil
}

// SetLogger replaces the logger of the media.
func (g *GXNet) SetLogger(logger *logrus.Entry) {
	if logger == nil {
		logger = logrus.WithField("component", "GXNet")
	}
	g.mu.Lock()
	g.logger = logger
	g.mu.Unlock()
}

func (g *GXNet) log() *logrus.Entry {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.logger.WithFields(logrus.Fields{
		"protocol": g.protocol.String(),
		"port":     g.port,
		"server":   g.server,
	})
}

// LocalAddr returns the local address of the open media, or nil.
func (g *GXNet) LocalAddr() net.Addr {
	g.mu.RLock()
	defer g.mu.RUnlock()
	switch {
	case g.ln != nil:
		return g.ln.Addr()
	case g.packet != nil:
		return g.packet.LocalAddr()
	case g.conn != nil:
		return g.conn.LocalAddr()
	}
	return nil
}

// GetClients returns the addresses of the clients connected to the TCP server.
func (g *GXNet) GetClients() []string {
	return g.clients.addresses()
}

// Open implements IGXMedia
//
// An open media is closed first.
func (g *GXNet) Open() error {
	g.lifecycle.Lock()
	defer g.lifecycle.Unlock()
	g.closeMedia()
	g.received.Reset()
	g.setState(gxcommon.MediaStateOpening)
	if err := g.open(); err != nil {
		g.log().WithError(err).Debug("Open failed")
		g.mu.RLock()
		host, port := g.hostName, g.port
		g.mu.RUnlock()
		g.trace(gxcommon.TraceTypesError, g.msg("msg.connect_failed", host, port, err))
		g.errorf(err)
		g.closeMedia()
		return err
	}
	g.setState(gxcommon.MediaStateOpen)
	return nil
}

func (g *GXNet) open() error {
	g.mu.RLock()
	server, protocol, host, port := g.server, g.protocol, g.hostName, g.port
	network, timeout, maxClients := g.protocol.network(g.useIPv6), g.timeout, g.maxClientCount
	g.mu.RUnlock()
	if network == "" {
		return fmt.Errorf("%w: %d", ErrInvalidProtocol, int(protocol))
	}
	address := net.JoinHostPort(host, strconv.Itoa(port))
	if server {
		g.trace(gxcommon.TraceTypesInfo, g.msg("msg.server_settings", protocol.String(), port))
		if protocol == NetworkTypeTCP {
			var lc net.ListenConfig
			ln, err := lc.Listen(context.Background(), network, net.JoinHostPort("", strconv.Itoa(port)))
			if err != nil {
				return err
			}
			pool, err := ants.NewPool(maxClients, ants.WithLogger(g.log()))
			if err != nil {
				_ = ln.Close()
				return err
			}
			l := newListener(g, ln)
			g.mu.Lock()
			g.ln = ln
			g.pool = pool
			g.listener = l
			g.mu.Unlock()
			g.updatePort(ln.Addr())
			go l.run()
			g.log().Debug("Server listening")
			return nil
		}
		pc, err := net.ListenUDP(network, &net.UDPAddr{Port: port})
		if err != nil {
			return err
		}
		r := newReceiver(g, nil, pc, false)
		g.mu.Lock()
		g.packet = pc
		g.receiver = r
		g.mu.Unlock()
		g.updatePort(pc.LocalAddr())
		go r.run()
		g.log().Debug("Server listening")
		return nil
	}

	g.trace(gxcommon.TraceTypesInfo, g.msg("msg.connecting_to", protocol.String(), host, port, timeout.Milliseconds()))
	if protocol == NetworkTypeTCP {
		d := net.Dialer{Timeout: timeout}
		conn, err := d.Dial(network, address)
		if err != nil {
			return err
		}
		r := newReceiver(g, conn, nil, false)
		g.mu.Lock()
		g.conn = conn
		g.receiver = r
		g.mu.Unlock()
		go r.run()
	} else {
		remote, err := net.ResolveUDPAddr(network, address)
		if err != nil {
			return err
		}
		pc, err := net.ListenUDP(network, nil)
		if err != nil {
			return err
		}
		r := newReceiver(g, nil, pc, false)
		g.mu.Lock()
		g.packet = pc
		g.remote = remote
		g.receiver = r
		g.mu.Unlock()
		go r.run()
	}
	g.trace(gxcommon.TraceTypesInfo, g.msg("msg.connected_to", host, port))
	g.log().Debug("Connected")
	return nil
}

// updatePort saves the port selected by the operating system.
func (g *GXNet) updatePort(addr net.Addr) {
	var port int
	switch a := addr.(type) {
	case *net.TCPAddr:
		port = a.Port
	case *net.UDPAddr:
		port = a.Port
	default:
		return
	}
	g.SetPort(port)
}

// accept handles a new client of the TCP server.
func (g *GXNet) accept(conn net.Conn) {
	address := conn.RemoteAddr().String()
	log := g.log().WithField("remote", address)
	g.mu.RLock()
	maxClients, pool := g.maxClientCount, g.pool
	g.mu.RUnlock()
	if maxClients > 0 && g.clients.len() >= maxClients {
		err := fmt.Errorf("%w: %s", ErrMaxClients, address)
		log.Warn("Client rejected, maximum client count reached")
		g.trace(gxcommon.TraceTypesWarning, g.msg("msg.max_clients", maxClients, address))
		g.errorf(err)
		_ = conn.Close()
		return
	}
	e := NewConnectionEventArgs(address)
	g.clientConnected(e)
	if !e.Accepted() {
		log.Debug("Client rejected")
		g.trace(gxcommon.TraceTypesInfo, g.msg("msg.client_rejected", address))
		_ = conn.Close()
		return
	}
	r := newReceiver(g, conn, nil, true)
	if pool == nil || !g.clients.add(address, r, maxClients) {
		_ = conn.Close()
		return
	}
	if err := pool.Submit(r.run); err != nil {
		g.clients.remove(address, r)
		_ = conn.Close()
		log.WithError(err).Warn("Failed to start client receiver")
		g.errorf(err)
		return
	}
	log.Debug("Client connected")
	g.trace(gxcommon.TraceTypesInfo, g.msg("msg.client_connected", address))
}

// clientDisconnected removes the client of the TCP server.
func (g *GXNet) clientDisconnected(r *receiver) {
	removed := g.clients.remove(r.address, r)
	_ = r.conn.Close()
	if !removed {
		return
	}
	r.log.Debug("Client disconnected")
	g.trace(gxcommon.TraceTypesInfo, g.msg("msg.client_disconnected", r.address))
	g.notifyClientDisconnected(NewConnectionEventArgs(r.address))
}

// Send implements IGXMedia
//
// The TCP server sends data to the client with the given address. The UDP
// server sends to the given address in host:port form. Clients ignore the
// receiver.
func (g *GXNet) Send(data any, receiver string) error {
	tmp, err := gxcommon.ToBytes(data, binary.BigEndian)
	if err != nil {
		return err
	}
	g.mu.RLock()
	state, server, protocol := g.state, g.server, g.protocol
	conn, packet, remote := g.conn, g.packet, g.remote
	network, timeout := g.protocol.network(g.useIPv6), g.timeout
	g.mu.RUnlock()
	if state != gxcommon.MediaStateOpen {
		return gxcommon.ErrConnectionClosed
	}
	g.traceData(gxcommon.TraceTypesSent, tmp, receiver)
	// Next synchronous receive searches the reply from the beginning.
	g.received.ResetLastPosition()

	var n int
	switch {
	case protocol == NetworkTypeUDP:
		addr := remote
		if server {
			if addr, err = resolveTarget(network, receiver); err != nil {
				return err
			}
		}
		n, err = packet.WriteToUDP(tmp, addr)
	case server:
		r := g.clients.get(receiver)
		if r == nil {
			return fmt.Errorf("%w: %q", ErrUnknownTarget, receiver)
		}
		n, err = write(r.conn, tmp, timeout)
	default:
		n, err = write(conn, tmp, timeout)
	}
	g.bytesSent.Add(uint64(n))
	return err
}

func write(conn net.Conn, data []byte, timeout time.Duration) (int, error) {
	if timeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(timeout))
	}
	return conn.Write(data)
}

// resolveTarget resolves the UDP receiver address.
func resolveTarget(network, target string) (*net.UDPAddr, error) {
	host, port, err := net.SplitHostPort(strings.TrimPrefix(target, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPortMissing, target)
	}
	return net.ResolveUDPAddr(network, net.JoinHostPort(host, port))
}

// Receive implements IGXMedia
//
// Receive can be used only in synchronous mode. The frame ends to the EOP
// of args, to Count bytes or to the end of packet of the media, in this
// order. The returned frame includes the end of packet. Timeout returns
// false without an error.
func (g *GXNet) Receive(args *gxcommon.ReceiveParameters) (bool, error) {
	if args == nil {
		return false, gxcommon.ErrInvalidArgument
	}
	if !g.IsOpen() {
		return false, gxcommon.ErrConnectionClosed
	}
	if !g.IsSynchronous() {
		return false, ErrNotSynchronous
	}
	var marker eop
	switch {
	case args.EOP != nil:
		var err error
		if marker, err = newEop(args.EOP); err != nil {
			return false, err
		}
	case args.Count == 0 && !args.AllData:
		marker = g.getEop()
	}
	if marker.isEmpty() && args.Count == 0 && !args.AllData {
		return false, fmt.Errorf("%w: %s", gxcommon.ErrInvalidArgument, g.msg("msg.count_or_eop"))
	}
	waitTime := time.Duration(-1)
	if args.WaitTime >= 0 {
		waitTime = time.Duration(args.WaitTime) * time.Millisecond
	}
	index := g.received.Search(frameCondition{eop: marker, count: args.Count, allData: args.AllData}, waitTime)
	if index == -1 {
		return false, nil
	}
	if args.AllData {
		//Read all data.
		index = -1
	}
	var err error
	args.Reply, err = gxcommon.BytesToAny2(g.received.Get(index, args.Peek), replyType(args), binary.BigEndian)
	if err != nil {
		return false, err
	}
	return true, nil
}

// replyType returns the reply type. Unknown type is inferred from Reply.
func replyType(args *gxcommon.ReceiveParameters) gxcommon.DataType {
	if args.ReplyType != gxcommon.DataTypeUnknown {
		return args.ReplyType
	}
	if _, ok := args.Reply.(string); ok {
		return gxcommon.DataTypeString
	}
	return gxcommon.DataTypeBytes
}

// Attach detaches a connected client from the TCP server and returns a new
// client media that owns the connection.
func (g *GXNet) Attach(address string) (*GXNet, error) {
	g.mu.RLock()
	server, protocol := g.server, g.protocol
	timeout, traceLevel, e, eopValue := g.timeout, g.traceLevel, g.eop, g.eopValue
	g.mu.RUnlock()
	if !server || protocol != NetworkTypeTCP {
		return nil, ErrAttachTCPOnly
	}
	r := g.clients.take(address)
	if r == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, address)
	}
	// Stop the server side receiver without closing the connection.
	r.detached.Store(true)
	_ = r.conn.SetReadDeadline(time.Now())
	r.wait(closeWaitTime)
	_ = r.conn.SetReadDeadline(time.Time{})

	host, p, _ := net.SplitHostPort(address)
	port, _ := strconv.Atoi(p)
	ret := NewGXNet(NetworkTypeTCP, host, port)
	ret.timeout = timeout
	ret.traceLevel = traceLevel
	ret.eop = e
	ret.eopValue = eopValue
	ret.conn = r.conn
	ret.state = gxcommon.MediaStateOpen
	ret.receiver = newReceiver(ret, r.conn, nil, false)
	go ret.receiver.run()
	g.log().WithField("remote", address).Debug("Client attached")
	return ret, nil
}

// Close implements IGXMedia
//
// Close never fails. Don't call Close from an event handler of the same
// media. Close waits until the receiver has stopped.
func (g *GXNet) Close() error {
	g.lifecycle.Lock()
	defer g.lifecycle.Unlock()
	g.closeMedia()
	return nil
}

// closeFromReceiver closes the media after the connection is lost.
func (g *GXNet) closeFromReceiver(r *receiver) {
	g.lifecycle.Lock()
	defer g.lifecycle.Unlock()
	g.mu.RLock()
	same := g.receiver == r
	g.mu.RUnlock()
	if same {
		g.closeMedia()
	}
}

func (g *GXNet) closeMedia() {
	g.mu.Lock()
	if g.state == gxcommon.MediaStateClosed {
		g.mu.Unlock()
		return
	}
	conn, packet, ln := g.conn, g.packet, g.ln
	r, l, pool := g.receiver, g.listener, g.pool
	host, port := g.hostName, g.port
	g.mu.Unlock()

	log := g.log()
	log.Debug("Closing")
	g.trace(gxcommon.TraceTypesInfo, g.msg("msg.closing_connection", host, port))
	g.setState(gxcommon.MediaStateClosing)
	if l != nil {
		l.interrupt()
		if err := ln.Close(); err != nil {
			log.WithError(err).Debug("Closing server socket failed")
		}
		// Release wakes up an accept that waits for a free worker.
		pool.Release()
		l.wait(closeWaitTime)
	}
	// Close all active client connections.
	clients := g.clients.takeAll()
	for _, it := range clients {
		it.interrupt()
		if err := it.conn.Close(); err != nil {
			log.WithError(err).Debug("Closing client connection failed")
		}
	}
	for _, it := range clients {
		it.wait(closeWaitTime)
	}
	if r != nil {
		r.interrupt()
		if tc, ok := conn.(*net.TCPConn); ok {
			// Wait until the peer has seen the end of stream and closed its side.
			if err := tc.CloseWrite(); err == nil {
				r.wait(closeWaitTime)
			}
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			log.WithError(err).Debug("Closing connection failed")
		}
	}
	if packet != nil {
		if err := packet.Close(); err != nil {
			log.WithError(err).Debug("Closing socket failed")
		}
	}
	if r != nil {
		r.wait(closeWaitTime)
	}

	g.mu.Lock()
	g.conn = nil
	g.packet = nil
	g.remote = nil
	g.ln = nil
	g.receiver = nil
	g.listener = nil
	g.pool = nil
	g.state = gxcommon.MediaStateClosed
	g.mu.Unlock()
	g.ResetByteCounters()
	g.received.Reset()
	g.trace(gxcommon.TraceTypesInfo, g.msg("msg.connection_closed", host, port))
	g.statef(gxcommon.MediaStateClosed)
}

// setState changes the state and notifies the state handler.
func (g *GXNet) setState(state gxcommon.MediaState) {
	g.mu.Lock()
	g.state = state
	g.mu.Unlock()
	g.statef(state)
}
