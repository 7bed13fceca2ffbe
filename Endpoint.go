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
	"fmt"
	"net"
	"strconv"
)

// Endpoint is an UDP host and port pair.
type Endpoint struct {
	Host string
	Port int
}

// NewEndpoint returns endpoint for the given host and port.
func NewEndpoint(host string, port int) Endpoint {
	return Endpoint{Host: host, Port: port}
}

// String returns the endpoint in host:port form.
func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// Resolve returns the UDP address of the endpoint.
// Network is "udp", "udp4" or "udp6".
func (e Endpoint) Resolve(network string) (*net.UDPAddr, error) {
	if err := validatePort(e.Port); err != nil {
		return nil, err
	}
	addr, err := net.ResolveUDPAddr(network, e.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrResolution, e.String(), err)
	}
	return addr, nil
}

func validatePort(port int) error {
	if port < 0 || port > 65535 {
		return fmt.Errorf("%w: invalid port %d", ErrResolution, port)
	}
	return nil
}
