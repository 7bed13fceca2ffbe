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
	"errors"
	"sync"

	"github.com/Gurux/gxcommon-go"
)

// Sender sends records of type T to one remote endpoint.
// Records are sent as is. There is no acknowledgement.
type Sender[T any] struct {
	codec  *Codec[T]
	socket *Socket
}

// NewSender returns a closed sender.
// An error is returned if T has no fixed size.
func NewSender[T any]() (*Sender[T], error) {
	codec, err := NewCodec[T]()
	if err != nil {
		return nil, err
	}
	return &Sender[T]{codec: codec, socket: NewSocket()}, nil
}

// Socket returns the underlying socket.
func (s *Sender[T]) Socket() *Socket {
	return s.socket
}

// Codec returns the record codec.
func (s *Sender[T]) Codec() *Codec[T] {
	return s.codec
}

// Open sets the remote endpoint where records are sent.
func (s *Sender[T]) Open(remoteHost string, remotePort int) error {
	return s.socket.OpenRemote(remoteHost, remotePort)
}

// IsOpen returns true if the sender is open.
func (s *Sender[T]) IsOpen() bool {
	return s.socket.IsOpen()
}

// Send encodes the record and sends it to the remote endpoint.
func (s *Sender[T]) Send(record T) (int, error) {
	if !s.socket.IsOpen() {
		return 0, ErrNotOpen
	}
	data, err := s.codec.Encode(record)
	if err != nil {
		return 0, err
	}
	return s.socket.Send(data)
}

// SendAsync encodes the record and sends it without blocking the caller.
func (s *Sender[T]) SendAsync(record T) <-chan SendResult {
	data, err := s.codec.Encode(record)
	if err != nil {
		ret := make(chan SendResult, 1)
		ret <- SendResult{Err: err}
		return ret
	}
	return s.socket.SendAsync(data)
}

// Close closes the sender. Calling Close again has no effect.
func (s *Sender[T]) Close() error {
	return s.socket.Close()
}

// Receiver receives records of type T.
//
// When a data received handler is set, each datagram that has the record size
// is decoded and given to it. Datagrams of any other size are dropped.
// Without a handler datagrams are queued and read with Get.
type Receiver[T any] struct {
	codec  *Codec[T]
	socket *Socket

	mu     sync.Mutex
	last   T
	valid  bool
	onData func(T)
}

// NewReceiver returns a closed receiver.
// An error is returned if T has no fixed size.
func NewReceiver[T any]() (*Receiver[T], error) {
	codec, err := NewCodec[T]()
	if err != nil {
		return nil, err
	}
	return &Receiver[T]{codec: codec, socket: NewSocket()}, nil
}

// Socket returns the underlying socket.
func (r *Receiver[T]) Socket() *Socket {
	return r.socket
}

// Codec returns the record codec.
func (r *Receiver[T]) Codec() *Codec[T] {
	return r.codec
}

// Open starts receiving records on the given port from all interfaces.
func (r *Receiver[T]) Open(localPort int) error {
	return r.socket.OpenLocal(localPort)
}

// OpenBound starts receiving records on the given local address and port.
func (r *Receiver[T]) OpenBound(listenAddress string, localPort int) error {
	return r.socket.OpenBound(listenAddress, localPort)
}

// IsOpen returns true if the receiver is open.
func (r *Receiver[T]) IsOpen() bool {
	return r.socket.IsOpen()
}

// SetOnDataReceived sets the handler that is called for each received record.
// Setting nil switches the receiver to queueing.
func (r *Receiver[T]) SetOnDataReceived(value func(T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onData = value
	if value == nil {
		r.socket.SetOnReceived(nil)
	} else {
		r.socket.SetOnReceived(r.handleData)
	}
}

func (r *Receiver[T]) handleData(s *Socket, e ReceiveEventArgs) {
	data := e.Data()
	if len(data) != r.codec.Size() {
		s.trace(true, gxcommon.TraceTypesInfo, s.p.Sprintf("msg.size_mismatch", len(data), r.codec.Size()))
		return
	}
	record, err := r.codec.Decode(data)
	if err != nil {
		return
	}
	r.mu.Lock()
	r.last = record
	r.valid = true
	cb := r.onData
	r.mu.Unlock()
	if cb != nil {
		cb(record)
	}
}

// Get pops the latest queued datagram and decodes it.
//
// False is returned if nothing is queued. LastReceived is not changed then.
// Older queued datagrams are kept.
func (r *Receiver[T]) Get() (T, bool, error) {
	var ret T
	if !r.socket.IsOpen() {
		return ret, false, ErrNotOpen
	}
	data, ok := r.socket.Pop()
	if !ok {
		return ret, false, nil
	}
	record, err := r.codec.Decode(data)
	if err != nil {
		return ret, false, err
	}
	r.mu.Lock()
	r.last = record
	r.valid = true
	r.mu.Unlock()
	return record, true, nil
}

// LastReceived returns the last decoded record.
// False is returned if nothing is received yet.
func (r *Receiver[T]) LastReceived() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.valid
}

// Count returns the amount of queued datagrams.
func (r *Receiver[T]) Count() int {
	return r.socket.Count()
}

// Close stops receiving. Calling Close again has no effect.
// The last received record is kept.
func (r *Receiver[T]) Close() error {
	return r.socket.Close()
}

// Transceiver sends and receives records of type T.
// It uses separate sockets for sending and receiving.
type Transceiver[T any] struct {
	sender   *Sender[T]
	receiver *Receiver[T]
}

// NewTransceiver returns a closed transceiver.
// An error is returned if T has no fixed size.
func NewTransceiver[T any]() (*Transceiver[T], error) {
	sender, err := NewSender[T]()
	if err != nil {
		return nil, err
	}
	receiver, err := NewReceiver[T]()
	if err != nil {
		return nil, err
	}
	return &Transceiver[T]{sender: sender, receiver: receiver}, nil
}

// Open sends records to remoteHost:remotePort and receives them on localPort.
// If listenHost is set, only datagrams from that host are accepted.
func (t *Transceiver[T]) Open(remoteHost string, remotePort int, localPort int, listenHost string) error {
	return t.OpenEndpoint(NewEndpoint(remoteHost, remotePort), localPort, listenHost)
}

// OpenEndpoint sends records to remote and receives them on localPort.
// If listenHost is set, only datagrams from that host are accepted.
func (t *Transceiver[T]) OpenEndpoint(remote Endpoint, localPort int, listenHost string) error {
	if err := t.sender.Open(remote.Host, remote.Port); err != nil {
		return err
	}
	t.receiver.socket.AllowedHost = listenHost
	if err := t.receiver.Open(localPort); err != nil {
		_ = t.sender.Close()
		return err
	}
	return nil
}

// SenderSocket returns the socket used for sending.
func (t *Transceiver[T]) SenderSocket() *Socket {
	return t.sender.socket
}

// ReceiverSocket returns the socket used for receiving.
func (t *Transceiver[T]) ReceiverSocket() *Socket {
	return t.receiver.socket
}

// IsOpen returns true if the transceiver is open.
func (t *Transceiver[T]) IsOpen() bool {
	return t.sender.IsOpen() && t.receiver.IsOpen()
}

// Send encodes the record and sends it to the remote endpoint.
func (t *Transceiver[T]) Send(record T) (int, error) {
	return t.sender.Send(record)
}

// SendAsync encodes the record and sends it without blocking the caller.
func (t *Transceiver[T]) SendAsync(record T) <-chan SendResult {
	return t.sender.SendAsync(record)
}

// Get pops the latest queued record. See Receiver.Get.
func (t *Transceiver[T]) Get() (T, bool, error) {
	return t.receiver.Get()
}

// LastReceived returns the last decoded record.
func (t *Transceiver[T]) LastReceived() (T, bool) {
	return t.receiver.LastReceived()
}

// SetOnDataReceived sets the handler that is called for each received record.
func (t *Transceiver[T]) SetOnDataReceived(value func(T)) {
	t.receiver.SetOnDataReceived(value)
}

// Close closes both sockets. Calling Close again has no effect.
func (t *Transceiver[T]) Close() error {
	return errors.Join(t.sender.Close(), t.receiver.Close())
}
