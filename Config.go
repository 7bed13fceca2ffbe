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
	"fmt"
	"io"

	"github.com/Gurux/gxcommon-go"
	"gopkg.in/yaml.v3"
)

// Config describes one channel endpoint pair.
//
// Example:
//
//	remote_host: 127.0.0.1
//	remote_port: 30001
//	local_port: 30002
//	listen_host: 127.0.0.1
//	timeout_ms: 500
//	trace: Verbose
type Config struct {
	// LocalPort is the port where records are received.
	LocalPort int `yaml:"local_port"`
	// RemoteHost is the host where records are sent.
	RemoteHost string `yaml:"remote_host"`
	// RemotePort is the port where records are sent.
	RemotePort int `yaml:"remote_port"`
	// ListenHost restricts which remote host may deliver records.
	ListenHost string `yaml:"listen_host"`
	IPv6       bool   `yaml:"ipv6"`
	Broadcast  bool   `yaml:"broadcast"`
	// TimeoutMs is the send timeout in milliseconds.
	TimeoutMs uint32 `yaml:"timeout_ms"`
	// Trace is the trace level name.
	Trace string `yaml:"trace"`

	traceLevel gxcommon.TraceLevel
}

// LoadConfig reads YAML configuration from r and validates it.
// Unknown fields are errors.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := &Config{TimeoutMs: 10000}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the ports and the trace level.
func (c *Config) Validate() error {
	for _, port := range []int{c.LocalPort, c.RemotePort} {
		if err := validatePort(port); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.Trace != "" {
		tl, err := gxcommon.TraceLevelParse(c.Trace)
		if err != nil {
			return fmt.Errorf("config: trace: %w", err)
		}
		c.traceLevel = tl
	}
	return nil
}

// Apply copies the socket options to s.
func (c *Config) Apply(s *Socket) {
	s.UseIPv6 = c.IPv6
	s.Broadcast = c.Broadcast
	s.SetTimeout(c.TimeoutMs)
	if c.Trace != "" {
		s.SetTrace(c.traceLevel)
	}
}

// OpenTransceiver creates transceiver from the configuration and opens it.
func OpenTransceiver[T any](cfg *Config) (*Transceiver[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.RemoteHost == "" {
		return nil, ErrNotConfigured
	}
	t, err := NewTransceiver[T]()
	if err != nil {
		return nil, err
	}
	cfg.Apply(t.SenderSocket())
	cfg.Apply(t.ReceiverSocket())
	if err := t.Open(cfg.RemoteHost, cfg.RemotePort, cfg.LocalPort, cfg.ListenHost); err != nil {
		return nil, err
	}
	return t, nil
}
