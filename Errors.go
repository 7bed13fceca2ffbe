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

	"github.com/Gurux/gxcommon-go"
)

var (
	// ErrResolution is returned when a host or port can't be turned into an UDP address.
	ErrResolution = errors.New("address resolution failed")
	// ErrTransport is returned when the operating system rejects a send, receive or bind.
	ErrTransport = errors.New("transport failed")
	// ErrNotConfigured is returned by Send when no default remote endpoint is set.
	ErrNotConfigured = errors.New("remote endpoint is not configured")
	// ErrNotOpen is returned when the socket or channel is not open.
	// It also matches gxcommon.ErrConnectionClosed.
	ErrNotOpen = fmt.Errorf("not open: %w", gxcommon.ErrConnectionClosed)
	// ErrSizeMismatch is returned when a payload length differs from the record size.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrNullInput is returned when a decoded payload is nil.
	ErrNullInput = errors.New("nil input")
)
