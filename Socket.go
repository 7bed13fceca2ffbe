package gxudp

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
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gurux/gxcommon-go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Maximum UDP payload size.
const maxDatagramSize = 65535

// ReceiveEventArgs describes one received datagram.
type ReceiveEventArgs struct {
	data   []byte
	sender *net.UDPAddr
}

// Data returns the received payload. The handler owns the returned slice.
func (e ReceiveEventArgs) Data() []byte {
	return e.data
}

// Sender returns the address the datagram was received from.
func (e ReceiveEventArgs) Sender() *net.UDPAddr {
	return e.sender
}

// ReceivedHandler is called for each received datagram when a handler is set.
type ReceivedHandler func(s *Socket, e ReceiveEventArgs)

// ErrorHandler is called when the receive loop fails.
type ErrorHandler func(s *Socket, err error)

// TraceHandler is called when the socket emits trace messages.
type TraceHandler func(s *Socket, e gxcommon.TraceEventArgs)

// MediaStateHandler is called when the socket state changes.
type MediaStateHandler func(s *Socket, e gxcommon.MediaStateEventArgs)

// SendResult is the outcome of an asynchronous send.
type SendResult struct {
	// N is the number of bytes written.
	N   int
	Err error
}

// Socket owns one UDP endpoint.
//
// Received datagrams are delivered to the received handler when one is set.
// Otherwise they are stored to the queue and read with Pop.
type Socket struct {
	// RemoteHost is the host name or address of the default send target.
	RemoteHost string
	// RemotePort is the port of the default send target.
	RemotePort int
	// LocalPort is the port to listen. Zero means that Open doesn't receive.
	LocalPort int
	// ListenAddress is the local address to bind. Empty binds all interfaces.
	ListenAddress string
	// AllowedHost restricts which remote host may deliver datagrams.
	// Empty accepts datagrams from any host.
	AllowedHost string
	// UseIPv6 defines if IPv6 is used. Default is False (IPv4).
	UseIPv6 bool
	// Broadcast enables sending to broadcast addresses.
	Broadcast bool

	// Send timeout.
	timeout time.Duration
	// The trace level specifies which types of trace messages are emitted.
	traceLevel gxcommon.TraceLevel

	// Held by open and Close so that a Close does not return before
	// the reader of an earlier Close has exited.
	closeMu sync.Mutex
	mu      sync.RWMutex
	conn    *net.UDPConn
	remote  *net.UDPAddr
	stop    chan struct{}
	wg      sync.WaitGroup

	mode DeliveryMode
	//Called when the new data is received.
	onReceive ReceivedHandler
	//Called when the receive loop fails.
	onErr ErrorHandler
	//Called when the socket is sending or receiving data.
	onTrace TraceHandler
	//Called when the socket state is changed.
	onState MediaStateHandler

	queue *Queue

	bytesSent     atomic.Uint64
	bytesReceived atomic.Uint64

	// Printer for localized messages.
	p *message.Printer
}

// NewSocket returns an unopened socket.
func NewSocket() *Socket {
	s := &Socket{timeout: time.Duration(10000) * time.Millisecond, queue: NewQueue()}
	s.Localize(language.AmericanEnglish)
	return s
}

// String returns the target of the socket, or the local port for receive only sockets.
func (s *Socket) String() string {
	if s.RemoteHost != "" {
		return net.JoinHostPort(s.RemoteHost, strconv.Itoa(s.RemotePort))
	}
	return net.JoinHostPort(s.ListenAddress, strconv.Itoa(s.LocalPort))
}

// GetMediaType returns the media type name.
func (s *Socket) GetMediaType() string {
	return "UDP"
}

// IsOpen returns true if the socket is open.
func (s *Socket) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn != nil
}

// LocalAddr returns the bound local address or nil if the socket is closed.
func (s *Socket) LocalAddr() *net.UDPAddr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.conn == nil {
		return nil
	}
	addr, _ := s.conn.LocalAddr().(*net.UDPAddr)
	return addr
}

// RemoteAddr returns the resolved default send target or nil if there is none.
func (s *Socket) RemoteAddr() *net.UDPAddr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remote
}

// GetBytesSent returns the amount of sent bytes.
func (s *Socket) GetBytesSent() uint64 {
	return s.bytesSent.Load()
}

// GetBytesReceived returns the amount of received bytes.
func (s *Socket) GetBytesReceived() uint64 {
	return s.bytesReceived.Load()
}

// ResetByteCounters resets sent and received byte counters.
func (s *Socket) ResetByteCounters() {
	s.bytesSent.Store(0)
	s.bytesReceived.Store(0)
}

// GetTimeout returns the send timeout in milliseconds.
func (s *Socket) GetTimeout() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint32(s.timeout / time.Millisecond)
}

// SetTimeout sets the send timeout in milliseconds. Zero disables the timeout.
func (s *Socket) SetTimeout(value uint32) {
	s.mu.Lock()
	s.timeout = time.Duration(value) * time.Millisecond
	s.mu.Unlock()
}

// GetTrace returns the trace level.
func (s *Socket) GetTrace() gxcommon.TraceLevel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.traceLevel
}

// SetTrace sets the trace level.
func (s *Socket) SetTrace(traceLevel gxcommon.TraceLevel) {
	s.mu.Lock()
	s.traceLevel = traceLevel
	s.mu.Unlock()
}

// Mode returns where received datagrams are delivered.
func (s *Socket) Mode() DeliveryMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetOnReceived sets the received handler.
//
// While a handler is set every datagram is given to it and nothing is queued.
// Setting nil switches the socket back to queueing.
func (s *Socket) SetOnReceived(value ReceivedHandler) {
	s.mu.Lock()
	s.onReceive = value
	if value == nil {
		s.mode = DeliveryUnconsumed
	} else {
		s.mode = DeliverySubscribed
	}
	s.mu.Unlock()
}

// SetOnError sets the error handler.
func (s *Socket) SetOnError(value ErrorHandler) {
	s.mu.Lock()
	s.onErr = value
	s.mu.Unlock()
}

// SetOnMediaStateChange sets the media state handler.
func (s *Socket) SetOnMediaStateChange(value MediaStateHandler) {
	s.mu.Lock()
	s.onState = value
	s.mu.Unlock()
}

// SetOnTrace sets the trace handler.
func (s *Socket) SetOnTrace(value TraceHandler) {
	s.mu.Lock()
	s.onTrace = value
	s.mu.Unlock()
}

// OpenLocal binds all local interfaces on the given port and starts receiving.
func (s *Socket) OpenLocal(localPort int) error {
	if s.IsOpen() {
		return nil
	}
	s.RemoteHost = ""
	s.RemotePort = 0
	s.ListenAddress = ""
	s.LocalPort = localPort
	return s.open(true)
}

// OpenRemote sets the default send target. No local port is bound
// and nothing is received.
func (s *Socket) OpenRemote(remoteHost string, remotePort int) error {
	if s.IsOpen() {
		return nil
	}
	s.RemoteHost = remoteHost
	s.RemotePort = remotePort
	s.ListenAddress = ""
	s.LocalPort = 0
	return s.open(false)
}

// OpenBound binds the given local address and port and starts receiving.
func (s *Socket) OpenBound(listenAddress string, localPort int) error {
	if s.IsOpen() {
		return nil
	}
	s.RemoteHost = ""
	s.RemotePort = 0
	s.ListenAddress = listenAddress
	s.LocalPort = localPort
	return s.open(true)
}

// OpenEndpoint binds listenAddress:localPort, sets remote as the default
// send target and starts receiving.
func (s *Socket) OpenEndpoint(remote Endpoint, localPort int, listenAddress string) error {
	if s.IsOpen() {
		return nil
	}
	s.RemoteHost = remote.Host
	s.RemotePort = remote.Port
	s.ListenAddress = listenAddress
	s.LocalPort = localPort
	return s.open(true)
}

// openSender binds localPort and sets remote as the default send target.
// Nothing is received.
func (s *Socket) openSender(remote Endpoint, localPort int) error {
	if s.IsOpen() {
		return nil
	}
	s.RemoteHost = remote.Host
	s.RemotePort = remote.Port
	s.ListenAddress = ""
	s.LocalPort = localPort
	return s.open(false)
}

// Open opens the socket using the exported settings.
// Datagrams are received if LocalPort is set.
func (s *Socket) Open() error {
	return s.open(s.LocalPort != 0)
}

func (s *Socket) network() string {
	if s.UseIPv6 {
		return "udp6"
	}
	return "udp4"
}

func (s *Socket) open(receive bool) error {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return nil
	}
	s.statef(false, gxcommon.MediaStateOpening)
	s.trace(false, gxcommon.TraceTypesInfo, s.p.Sprintf("msg.opening", s.network(), s.ListenAddress, s.LocalPort, s.RemoteHost, s.RemotePort))
	conn, remote, filter, err := s.listen(receive)
	if err != nil {
		s.trace(false, gxcommon.TraceTypesError, s.p.Sprintf("msg.open_failed", err))
		s.errorf(false, err)
		s.statef(false, gxcommon.MediaStateClosed)
		return err
	}
	s.conn = conn
	s.remote = remote
	s.stop = make(chan struct{})
	if receive {
		s.wg.Add(1)
		go s.reader(conn, s.stop, filter)
	}
	s.trace(false, gxcommon.TraceTypesInfo, s.p.Sprintf("msg.opened", conn.LocalAddr().String()))
	s.statef(false, gxcommon.MediaStateOpen)
	return nil
}

// listen resolves all addresses before the socket is created so that
// malformed addresses fail here and not on send.
func (s *Socket) listen(receive bool) (*net.UDPConn, *net.UDPAddr, net.IP, error) {
	network := s.network()
	var remote *net.UDPAddr
	var err error
	if s.RemoteHost != "" {
		remote, err = NewEndpoint(s.RemoteHost, s.RemotePort).Resolve(network)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	var filter net.IP
	if s.AllowedHost != "" {
		addr, err := NewEndpoint(s.AllowedHost, 0).Resolve(network)
		if err != nil {
			return nil, nil, nil, err
		}
		if !addr.IP.IsUnspecified() {
			filter = addr.IP
		}
	}
	local := ":0"
	if receive || s.LocalPort != 0 || s.ListenAddress != "" {
		laddr, err := NewEndpoint(s.ListenAddress, s.LocalPort).Resolve(network)
		if err != nil {
			return nil, nil, nil, err
		}
		local = laddr.String()
	}
	lc := net.ListenConfig{Control: control(s.Broadcast)}
	pc, err := lc.ListenPacket(context.Background(), network, local)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return pc.(*net.UDPConn), remote, filter, nil
}

// Send writes data to the default remote endpoint and returns the number
// of bytes written.
func (s *Socket) Send(data []byte) (int, error) {
	s.mu.RLock()
	c := s.conn
	remote := s.remote
	s.mu.RUnlock()
	if c == nil {
		return 0, ErrNotOpen
	}
	if remote == nil {
		return 0, ErrNotConfigured
	}
	return s.SendTo(data, remote)
}

// SendTo writes data to the given address and returns the number of bytes written.
// Nil data is not sent.
func (s *Socket) SendTo(data []byte, to *net.UDPAddr) (int, error) {
	s.mu.RLock()
	c := s.conn
	timeout := s.timeout
	s.mu.RUnlock()
	if c == nil {
		return 0, ErrNotOpen
	}
	if to == nil {
		return 0, ErrNotConfigured
	}
	if data == nil {
		return 0, nil
	}
	s.tracef(true, gxcommon.TraceTypesSent, "TX %s: %s", to.String(), traceString(data))
	if timeout > 0 {
		_ = c.SetWriteDeadline(time.Now().Add(timeout))
	}
	n, err := c.WriteToUDP(data, to)
	if err != nil {
		if errors.Is(err, net.ErrClosed) {
			return n, fmt.Errorf("%w: %w", ErrNotOpen, err)
		}
		return n, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	s.bytesSent.Add(uint64(n))
	return n, nil
}

// SendAsync sends data to the default remote endpoint without blocking the caller.
// Data is copied before SendAsync returns. The result is delivered on the
// returned channel. Sends in flight are not ordered.
func (s *Socket) SendAsync(data []byte) <-chan SendResult {
	return s.async(bytes.Clone(data), func(b []byte) (int, error) {
		return s.Send(b)
	})
}

// SendToAsync is the asynchronous version of SendTo.
func (s *Socket) SendToAsync(data []byte, to *net.UDPAddr) <-chan SendResult {
	return s.async(bytes.Clone(data), func(b []byte) (int, error) {
		return s.SendTo(b, to)
	})
}

func (s *Socket) async(data []byte, send func([]byte) (int, error)) <-chan SendResult {
	ret := make(chan SendResult, 1)
	go func() {
		n, err := send(data)
		ret <- SendResult{N: n, Err: err}
	}()
	return ret
}

// Pop removes and returns the latest queued datagram.
func (s *Socket) Pop() ([]byte, bool) {
	return s.queue.Pop()
}

// CopyAt returns a copy of the queued datagram at index. Index zero is the oldest one.
func (s *Socket) CopyAt(index int) ([]byte, bool) {
	return s.queue.CopyAt(index)
}

// AllData returns all queued datagrams concatenated.
func (s *Socket) AllData() []byte {
	return s.queue.All()
}

// Count returns the amount of queued datagrams.
func (s *Socket) Count() int {
	return s.queue.Count()
}

// ClearBuffer drops all queued datagrams.
func (s *Socket) ClearBuffer() {
	s.queue.Clear()
}

func (s *Socket) reader(conn *net.UDPConn, stop chan struct{}, filter net.IP) {
	defer s.wg.Done()
	buf := make([]byte, maxDatagramSize)
	for {
		n, from, err := conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			select {
			case <-stop:
				return
			default:
			}
			s.trace(true, gxcommon.TraceTypesError, s.p.Sprintf("msg.receive_failed", err))
			s.errorf(true, fmt.Errorf("%w: %w", ErrTransport, err))
			continue
		}
		select {
		case <-stop:
			return
		default:
		}
		if filter != nil && !filter.Equal(from.IP) {
			s.trace(true, gxcommon.TraceTypesInfo, s.p.Sprintf("msg.discarded", from.String()))
			continue
		}
		s.bytesReceived.Add(uint64(n))
		s.handleData(bytes.Clone(buf[:n]), from)
	}
}

func (s *Socket) handleData(data []byte, from *net.UDPAddr) {
	s.tracef(true, gxcommon.TraceTypesReceived, "RX %s: %s", from.String(), traceString(data))
	s.mu.RLock()
	mode := s.mode
	cb := s.onReceive
	s.mu.RUnlock()
	if mode == DeliverySubscribed && cb != nil {
		s.receivef(cb, ReceiveEventArgs{data: data, sender: from})
		return
	}
	s.queue.push(data)
}

// receivef invokes the handler. A panicking handler must not stop the receive loop.
func (s *Socket) receivef(cb ReceivedHandler, e ReceiveEventArgs) {
	defer func() {
		if r := recover(); r != nil {
			s.trace(true, gxcommon.TraceTypesError, s.p.Sprintf("msg.handler_failed", r))
			s.errorf(true, fmt.Errorf("received handler panicked: %v", r))
		}
	}()
	cb(s, e)
}

func traceString(data []byte) string {
	str, err := gxcommon.ToString(data)
	if err != nil {
		return hex.EncodeToString(data)
	}
	return str
}

func (s *Socket) errorf(lock bool, err error) {
	var cb ErrorHandler
	if lock {
		s.mu.RLock()
		cb = s.onErr
		s.mu.RUnlock()
	} else {
		cb = s.onErr
	}
	if cb != nil {
		cb(s, err)
	}
}

func (s *Socket) tracef(lock bool, traceType gxcommon.TraceTypes, fmtStr string, a ...any) {
	var cb TraceHandler
	trace := false
	if lock {
		s.mu.RLock()
		trace = !(int(s.traceLevel) < int(traceType))
		cb = s.onTrace
		s.mu.RUnlock()
	} else {
		trace = !(int(s.traceLevel) < int(traceType))
		cb = s.onTrace
	}
	if cb != nil && trace {
		p := gxcommon.NewTraceEventArgs(traceType, fmt.Sprintf(fmtStr, a...), "")
		cb(s, *p)
	}
}

func (s *Socket) trace(lock bool, traceType gxcommon.TraceTypes, message string) {
	s.tracef(lock, traceType, "%s", message)
}

func (s *Socket) statef(lock bool, state gxcommon.MediaState) {
	var cb MediaStateHandler
	if lock {
		s.mu.RLock()
		cb = s.onState
		s.mu.RUnlock()
	} else {
		cb = s.onState
	}
	if cb != nil {
		cb(s, *gxcommon.NewMediaStateEventArgs(state))
	}
}

// Close stops receiving, closes the socket and drops queued datagrams.
// When Close returns no handler is running or will be called.
// Close must not be called from the received handler of the same socket.
func (s *Socket) Close() error {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	s.mu.Lock()
	c := s.conn
	if c == nil {
		s.mu.Unlock()
		s.queue.Clear()
		return nil
	}
	s.trace(false, gxcommon.TraceTypesInfo, s.p.Sprintf("msg.closing", c.LocalAddr().String()))
	s.statef(false, gxcommon.MediaStateClosing)
	s.conn = nil
	s.remote = nil
	close(s.stop)
	s.mu.Unlock()

	err := c.Close()
	s.wg.Wait()
	s.queue.Clear()
	s.trace(true, gxcommon.TraceTypesInfo, s.p.Sprintf("msg.closed", c.LocalAddr().String()))
	s.statef(true, gxcommon.MediaStateClosed)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return nil
}

// Localize messages for the specified language.
// No errors is returned if language is not supported.
func (s *Socket) Localize(language language.Tag) {
	s.p = message.NewPrinter(language)
}
