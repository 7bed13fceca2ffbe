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
	"sync"
)

// Queue buffers received datagrams until they are consumed.
// It is safe for concurrent use.
type Queue struct {
	mu    sync.Mutex
	items [][]byte
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends the data to the tail of the queue.
// The queue keeps its own copy of data.
func (q *Queue) Push(data []byte) {
	tmp := bytes.Clone(data)
	if tmp == nil {
		tmp = []byte{}
	}
	q.push(tmp)
}

// push stores data without copying. The caller must not use data afterwards.
func (q *Queue) push(data []byte) {
	q.mu.Lock()
	q.items = append(q.items, data)
	q.mu.Unlock()
}

// Pop removes and returns the most recently pushed datagram.
// False is returned if the queue is empty.
func (q *Queue) Pop() ([]byte, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.items)
	if n == 0 {
		return nil, false
	}
	ret := q.items[n-1]
	q.items[n-1] = nil
	q.items = q.items[:n-1]
	return ret, true
}

// CopyAt returns a copy of the datagram at the given position without removing it.
// Position zero is the oldest datagram. False is returned if index is out of range.
func (q *Queue) CopyAt(index int) ([]byte, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if index < 0 || index >= len(q.items) {
		return nil, false
	}
	return bytes.Clone(q.items[index]), true
}

// All returns all queued datagrams concatenated in arrival order.
// The queue is not modified.
func (q *Queue) All() []byte {
	q.mu.Lock()
	defer q.mu.Unlock()
	size := 0
	for _, it := range q.items {
		size += len(it)
	}
	ret := make([]byte, 0, size)
	for _, it := range q.items {
		ret = append(ret, it...)
	}
	return ret
}

// Clear drops all queued datagrams.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.items = nil
	q.mu.Unlock()
}

// Count returns the number of queued datagrams.
func (q *Queue) Count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
