// Package gxudp provides UDP datagram media and typed record channels for Gurux components.
//
// A Socket owns one UDP endpoint. It sends datagrams synchronously or
// asynchronously and receives them in a background goroutine. Received
// datagrams are given to the received handler when one is set. Otherwise they
// are queued and read with Pop, latest first.
//
// Features
//
//   - Delivery: push to a handler or pull from the queue (see DeliveryMode).
//   - Records: fixed size binary records are encoded with Codec.
//   - Channels: Sender, Receiver and Transceiver send and receive records.
//   - Parameters: key:value text parameters with ParameterSender and ParameterReceiver.
//   - Tracing: Trace, Error and MediaState handlers as in other Gurux media.
//   - Logging: Logger writes messages to Sink implementations, for example zap.
//
// # Records
//
// The record type must have a fixed size. Text is stored in [N]byte fields.
//
//	type Telemetry struct {
//	    ID    int32
//	    Value float32
//	    Name  [16]byte
//	}
//
//	r, _ := gxudp.NewReceiver[Telemetry]()
//	r.SetOnDataReceived(func(t Telemetry) {
//	    fmt.Println(t.ID, gxudp.Text(t.Name[:]))
//	})
//	if err := r.Open(30001); err != nil {
//	    // handle bind error
//	}
//	defer r.Close()
//
//	s, _ := gxudp.NewSender[Telemetry]()
//	if err := s.Open("127.0.0.1", 30001); err != nil {
//	    // handle resolution error
//	}
//	defer s.Close()
//	var t Telemetry
//	gxudp.SetText(t.Name[:], "sensor")
//	_, _ = s.Send(t)
//
// # Delivery
//
// Datagrams are not acknowledged, ordered or retransmitted. The payload is the
// encoded record without any header. Datagrams that don't have the record size
// are dropped by the receiver.
//
// # Notes
//
// The zero value of Socket is not ready for use; always construct via NewSocket.
// Handlers run in the receive goroutine. Long-running work should be
// offloaded to a separate goroutine and Close must not be called from a
// received handler of the same socket.
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
