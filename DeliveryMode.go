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

// DeliveryMode tells where the receive loop delivers datagrams.
type DeliveryMode int

const (
	// DeliveryUnconsumed defines that received datagrams are stored to the queue.
	DeliveryUnconsumed DeliveryMode = iota
	// DeliverySubscribed defines that received datagrams are given to the received handler.
	DeliverySubscribed
)

// String returns the canonical name of the delivery mode.
// It satisfies fmt.Stringer.
func (g DeliveryMode) String() string {
	var ret string
	switch g {
	case DeliveryUnconsumed:
		ret = "Unconsumed"
	case DeliverySubscribed:
		ret = "Subscribed"
	}
	return ret
}
