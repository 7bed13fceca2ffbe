package gxudp_test

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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gurux/gxudp-go"
)

func receiveRecord(t *testing.T, ch <-chan testRecord) testRecord {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(waitTime):
		require.FailNow(t, "record not received")
		return testRecord{}
	}
}

func TestSenderReceiver(t *testing.T) {
	sender, err := gxudp.NewSender[testRecord]()
	require.NoError(t, err)
	require.NoError(t, sender.Open("127.0.0.1", 30001))
	defer sender.Close()

	receiver, err := gxudp.NewReceiver[testRecord]()
	require.NoError(t, err)
	received := make(chan testRecord, 1)
	receiver.SetOnDataReceived(func(r testRecord) { received <- r })
	require.NoError(t, receiver.Open(30001))
	defer receiver.Close()

	want := newTestRecord("mogemoge!")
	n, err := sender.Send(want)
	require.NoError(t, err)
	assert.Equal(t, sender.Codec().Size(), n)
	assert.Equal(t, want, receiveRecord(t, received))

	last, ok := receiver.LastReceived()
	assert.True(t, ok)
	assert.Equal(t, want, last)
}

func TestReceiverGetEmpty(t *testing.T) {
	receiver, err := gxudp.NewReceiver[testRecord]()
	require.NoError(t, err)
	require.NoError(t, receiver.Open(30031))
	defer receiver.Close()

	got, ok, err := receiver.Get()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, testRecord{}, got)
	_, valid := receiver.LastReceived()
	assert.False(t, valid)
}

func TestReceiverGet(t *testing.T) {
	receiver, err := gxudp.NewReceiver[testRecord]()
	require.NoError(t, err)
	require.NoError(t, receiver.OpenBound("127.0.0.1", 30032))
	defer receiver.Close()
	sender, err := gxudp.NewSender[testRecord]()
	require.NoError(t, err)
	require.NoError(t, sender.Open("127.0.0.1", 30032))
	defer sender.Close()

	first, second := newTestRecord("first"), newTestRecord("second")
	second.IntVal = 100
	_, err = sender.Send(first)
	require.NoError(t, err)
	_, err = sender.Send(second)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return receiver.Count() == 2 }, waitTime, tick)

	got, ok, err := receiver.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, got)
	last, valid := receiver.LastReceived()
	assert.True(t, valid)
	assert.Equal(t, second, last)
	assert.Equal(t, 1, receiver.Count())

	got, ok, err = receiver.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, got)

	_, ok, err = receiver.Get()
	require.NoError(t, err)
	assert.False(t, ok)
	last, _ = receiver.LastReceived()
	assert.Equal(t, first, last, "empty Get must not change the last received record")
}

func TestReceiverDropsWrongSize(t *testing.T) {
	receiver, err := gxudp.NewReceiver[testRecord]()
	require.NoError(t, err)
	var mu sync.Mutex
	var records []testRecord
	receiver.SetOnDataReceived(func(r testRecord) {
		mu.Lock()
		records = append(records, r)
		mu.Unlock()
	})
	require.NoError(t, receiver.Open(30033))
	defer receiver.Close()

	raw := gxudp.NewSocket()
	require.NoError(t, raw.OpenRemote("127.0.0.1", 30033))
	defer raw.Close()
	_, err = raw.Send([]byte{1, 2, 3})
	require.NoError(t, err)
	_, err = raw.Send(make([]byte, receiver.Codec().Size()+1))
	require.NoError(t, err)
	enc, err := receiver.Codec().Encode(newTestRecord("ok"))
	require.NoError(t, err)
	_, err = raw.Send(enc)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(records) == 1
	}, waitTime, tick)
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, records, 1)
	assert.Equal(t, "ok", gxudp.Text(records[0].Text[:]))
}

func TestReceiverGetWrongSize(t *testing.T) {
	receiver, err := gxudp.NewReceiver[testRecord]()
	require.NoError(t, err)
	require.NoError(t, receiver.Open(30034))
	defer receiver.Close()

	raw := gxudp.NewSocket()
	require.NoError(t, raw.OpenRemote("127.0.0.1", 30034))
	defer raw.Close()
	_, err = raw.Send([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return receiver.Count() == 1 }, waitTime, tick)

	got, ok, err := receiver.Get()
	assert.ErrorIs(t, err, gxudp.ErrSizeMismatch)
	assert.False(t, ok)
	assert.Equal(t, testRecord{}, got)
	_, valid := receiver.LastReceived()
	assert.False(t, valid)
}

func TestReceiverOrdered(t *testing.T) {
	const count = 50
	receiver, err := gxudp.NewReceiver[testRecord]()
	require.NoError(t, err)
	var mu sync.Mutex
	var got []int32
	receiver.SetOnDataReceived(func(r testRecord) {
		mu.Lock()
		got = append(got, r.IntVal)
		mu.Unlock()
	})
	require.NoError(t, receiver.Open(30035))
	defer receiver.Close()
	sender, err := gxudp.NewSender[testRecord]()
	require.NoError(t, err)
	require.NoError(t, sender.Open("127.0.0.1", 30035))
	defer sender.Close()

	want := make([]int32, count)
	for i := range want {
		want[i] = int32(i)
		r := newTestRecord("seq")
		r.IntVal = int32(i)
		_, err := sender.Send(r)
		require.NoError(t, err)
	}
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == count
	}, waitTime, tick)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, want, got)
}

func TestSenderSendAsync(t *testing.T) {
	receiver, err := gxudp.NewReceiver[testRecord]()
	require.NoError(t, err)
	require.NoError(t, receiver.Open(30036))
	defer receiver.Close()
	sender, err := gxudp.NewSender[testRecord]()
	require.NoError(t, err)
	require.NoError(t, sender.Open("127.0.0.1", 30036))
	defer sender.Close()

	res := <-sender.SendAsync(newTestRecord("async"))
	require.NoError(t, res.Err)
	require.Eventually(t, func() bool { return receiver.Count() == 1 }, waitTime, tick)
	got, ok, err := receiver.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "async", gxudp.Text(got.Text[:]))
}

func TestChannelNotOpen(t *testing.T) {
	sender, err := gxudp.NewSender[testRecord]()
	require.NoError(t, err)
	_, err = sender.Send(testRecord{})
	assert.ErrorIs(t, err, gxudp.ErrNotOpen)
	res := <-sender.SendAsync(testRecord{})
	assert.ErrorIs(t, res.Err, gxudp.ErrNotOpen)

	receiver, err := gxudp.NewReceiver[testRecord]()
	require.NoError(t, err)
	_, _, err = receiver.Get()
	assert.ErrorIs(t, err, gxudp.ErrNotOpen)

	require.NoError(t, receiver.Open(30037))
	require.NoError(t, receiver.Close())
	require.NoError(t, receiver.Close())
	_, _, err = receiver.Get()
	assert.ErrorIs(t, err, gxudp.ErrNotOpen)

	require.NoError(t, sender.Open("127.0.0.1", 30037))
	require.NoError(t, sender.Close())
	require.NoError(t, sender.Close())
	_, err = sender.Send(testRecord{})
	assert.ErrorIs(t, err, gxudp.ErrNotOpen)
}

func TestChannelNotFixedSize(t *testing.T) {
	_, err := gxudp.NewSender[string]()
	assert.Error(t, err)
	_, err = gxudp.NewReceiver[[]byte]()
	assert.Error(t, err)
	_, err = gxudp.NewTransceiver[map[string]int]()
	assert.Error(t, err)
	_, err = gxudp.NewReceiver[[]uint16]()
	assert.Error(t, err)
	_, err = gxudp.NewSender[struct{ Values []int32 }]()
	assert.Error(t, err)
}

func TestTransceiver(t *testing.T) {
	a, err := gxudp.NewTransceiver[testRecord]()
	require.NoError(t, err)
	require.NoError(t, a.Open("127.0.0.1", 30001, 30002, ""))
	defer a.Close()
	b, err := gxudp.NewTransceiver[testRecord]()
	require.NoError(t, err)
	require.NoError(t, b.Open("127.0.0.1", 30002, 30001, ""))
	defer b.Close()
	assert.True(t, a.IsOpen())

	fromA := make(chan testRecord, 1)
	b.SetOnDataReceived(func(r testRecord) { fromA <- r })
	want := newTestRecord("mogemoge!")
	_, err = a.Send(want)
	require.NoError(t, err)
	assert.Equal(t, want, receiveRecord(t, fromA))

	reply := newTestRecord("reply")
	res := <-b.SendAsync(reply)
	require.NoError(t, res.Err)
	require.Eventually(t, func() bool {
		_, ok := a.LastReceived()
		if ok {
			return true
		}
		_, ok, _ = a.Get()
		return ok
	}, waitTime, tick)
	got, _ := a.LastReceived()
	assert.Equal(t, reply, got)
	last, ok := b.LastReceived()
	assert.True(t, ok)
	assert.Equal(t, want, last)
}

func TestTransceiverListenHost(t *testing.T) {
	a, err := gxudp.NewTransceiver[testRecord]()
	require.NoError(t, err)
	require.NoError(t, a.Open("127.0.0.1", 30039, 30038, ""))
	defer a.Close()
	b, err := gxudp.NewTransceiver[testRecord]()
	require.NoError(t, err)
	require.NoError(t, b.Open("127.0.0.1", 30038, 30039, "127.0.0.2"))
	defer b.Close()

	_, err = a.Send(newTestRecord("dropped"))
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	_, ok, err := b.Get()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, b.ReceiverSocket().Count())
}

func TestTransceiverOpenFails(t *testing.T) {
	busy := gxudp.NewSocket()
	require.NoError(t, busy.OpenLocal(30040))
	defer busy.Close()

	tr, err := gxudp.NewTransceiver[testRecord]()
	require.NoError(t, err)
	err = tr.Open("127.0.0.1", 30041, 30040, "")
	assert.ErrorIs(t, err, gxudp.ErrTransport)
	assert.False(t, tr.SenderSocket().IsOpen())
	assert.False(t, tr.IsOpen())

	err = tr.Open("127.0.0.1", -5, 30042, "")
	assert.ErrorIs(t, err, gxudp.ErrResolution)
	assert.False(t, tr.ReceiverSocket().IsOpen())
	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())
}
