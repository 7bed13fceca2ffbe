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
	"maps"
	"slices"
	"strings"
	"sync"
)

// ParseParameters parses key:value records separated by new lines.
// Records that don't have exactly one ':' or have an empty key or value are ignored.
// If the same key is given many times the last value is used.
func ParseParameters(payload string) map[string]string {
	ret := make(map[string]string)
	for _, line := range strings.Split(payload, "\n") {
		if strings.Count(line, ":") != 1 {
			continue
		}
		key, value, _ := strings.Cut(line, ":")
		if key == "" || value == "" {
			continue
		}
		ret[key] = value
	}
	return ret
}

// FormatParameter returns the wire form of one parameter.
func FormatParameter(key, value string) string {
	return key + ":" + value + "\n"
}

// ParameterSender sends key:value parameters as ASCII text.
// Values are not converted. Keys and values must not contain ':' or new lines.
type ParameterSender struct {
	socket *Socket
}

// NewParameterSender returns a closed parameter sender.
func NewParameterSender() *ParameterSender {
	s := NewSocket()
	s.Broadcast = true
	return &ParameterSender{socket: s}
}

// Socket returns the underlying socket.
func (p *ParameterSender) Socket() *Socket {
	return p.socket
}

// Open binds localPort and sends parameters to remoteHost:remotePort.
// Zero localPort lets the system select the port. Broadcast addresses are allowed.
// The sender doesn't receive.
func (p *ParameterSender) Open(remoteHost string, remotePort int, localPort int) error {
	return p.socket.openSender(NewEndpoint(remoteHost, remotePort), localPort)
}

// Send sends one parameter.
func (p *ParameterSender) Send(key, value string) (int, error) {
	return p.socket.Send([]byte(FormatParameter(key, value)))
}

// SendAll sends all parameters in one datagram sorted by key.
func (p *ParameterSender) SendAll(params map[string]string) (int, error) {
	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(params)) {
		b.WriteString(FormatParameter(k, params[k]))
	}
	return p.socket.Send([]byte(b.String()))
}

// Close closes the sender. Calling Close again has no effect.
func (p *ParameterSender) Close() error {
	return p.socket.Close()
}

// ParameterReceiver receives key:value parameters and keeps the latest value of each key.
type ParameterReceiver struct {
	socket *Socket

	mu      sync.Mutex
	params  map[string]string
	onParam func(key, value string)
}

// NewParameterReceiver returns a closed parameter receiver.
func NewParameterReceiver() *ParameterReceiver {
	s := NewSocket()
	s.Broadcast = true
	p := &ParameterReceiver{socket: s, params: make(map[string]string)}
	s.SetOnReceived(p.handleData)
	return p
}

// Socket returns the underlying socket.
func (p *ParameterReceiver) Socket() *Socket {
	return p.socket
}

// Open starts receiving parameters on localPort.
// Parameters received before an earlier Close are forgotten.
func (p *ParameterReceiver) Open(localPort int) error {
	if p.socket.IsOpen() {
		return nil
	}
	p.Reset()
	return p.socket.OpenLocal(localPort)
}

// SetOnParameter sets the handler that is called for each received parameter.
func (p *ParameterReceiver) SetOnParameter(value func(key, value string)) {
	p.mu.Lock()
	p.onParam = value
	p.mu.Unlock()
}

func (p *ParameterReceiver) handleData(_ *Socket, e ReceiveEventArgs) {
	received := ParseParameters(string(e.Data()))
	if len(received) == 0 {
		return
	}
	p.mu.Lock()
	maps.Copy(p.params, received)
	cb := p.onParam
	p.mu.Unlock()
	if cb != nil {
		for _, k := range slices.Sorted(maps.Keys(received)) {
			cb(k, received[k])
		}
	}
}

// Value returns the latest value of the key.
func (p *ParameterReceiver) Value(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.params[key]
	return v, ok
}

// Params returns a copy of all received parameters.
func (p *ParameterReceiver) Params() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return maps.Clone(p.params)
}

// Reset forgets all received parameters.
func (p *ParameterReceiver) Reset() {
	p.mu.Lock()
	clear(p.params)
	p.mu.Unlock()
}

// Close stops receiving. Calling Close again has no effect.
// Received parameters are kept.
func (p *ParameterReceiver) Close() error {
	return p.socket.Close()
}
