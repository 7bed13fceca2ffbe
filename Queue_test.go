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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gurux/gxudp-go"
)

func TestQueuePopEmpty(t *testing.T) {
	q := gxudp.NewQueue()
	data, ok := q.Pop()
	assert.False(t, ok)
	assert.Nil(t, data)
	assert.Equal(t, 0, q.Count())
}

func TestQueuePopLatestFirst(t *testing.T) {
	q := gxudp.NewQueue()
	q.Push([]byte{1})
	q.Push([]byte{2})
	q.Push([]byte{3})

	data, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, []byte{3}, data)
	data, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, []byte{2}, data)
	assert.Equal(t, 1, q.Count())
}

func TestQueueCount(t *testing.T) {
	tests := map[string]struct {
		Pushes int
		Pops   int
	}{
		"empty":      {},
		"only push":  {Pushes: 5},
		"push & pop": {Pushes: 5, Pops: 3},
		"all popped": {Pushes: 4, Pops: 4},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			q := gxudp.NewQueue()
			for i := 0; i < test.Pushes; i++ {
				q.Push([]byte{byte(i)})
			}
			for i := 0; i < test.Pops; i++ {
				_, ok := q.Pop()
				require.True(t, ok)
			}
			assert.Equal(t, test.Pushes-test.Pops, q.Count())
		})
	}
}

func TestQueuePushCopies(t *testing.T) {
	q := gxudp.NewQueue()
	data := []byte{1, 2, 3}
	q.Push(data)
	data[0] = 9

	got, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestQueuePushEmpty(t *testing.T) {
	q := gxudp.NewQueue()
	q.Push(nil)
	got, ok := q.Pop()
	require.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQueueCopyAt(t *testing.T) {
	q := gxudp.NewQueue()
	q.Push([]byte{1})
	q.Push([]byte{2})

	got, ok := q.CopyAt(0)
	require.True(t, ok)
	assert.Equal(t, []byte{1}, got)
	got[0] = 7
	again, ok := q.CopyAt(0)
	require.True(t, ok)
	assert.Equal(t, []byte{1}, again, "copy must not alias the queued datagram")
	assert.Equal(t, 2, q.Count(), "CopyAt must not remove")

	_, ok = q.CopyAt(2)
	assert.False(t, ok)
	_, ok = q.CopyAt(-1)
	assert.False(t, ok)
}

func TestQueueAllAndClear(t *testing.T) {
	q := gxudp.NewQueue()
	assert.Empty(t, q.All())
	q.Push([]byte{1, 2})
	q.Push([]byte{3})
	assert.Equal(t, []byte{1, 2, 3}, q.All())
	assert.Equal(t, 2, q.Count())

	q.Clear()
	assert.Equal(t, 0, q.Count())
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestQueueConcurrent(t *testing.T) {
	const producers, perProducer = 4, 250
	q := gxudp.NewQueue()
	var wg sync.WaitGroup
	var mu sync.Mutex
	popped := 0
	for i := 0; i < producers; i++ {
		wg.Add(2)
		go func(id byte) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Push([]byte{id, byte(j)})
			}
		}(byte(i))
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				if data, ok := q.Pop(); ok {
					assert.Len(t, data, 2)
					mu.Lock()
					popped++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, producers*perProducer, popped+q.Count())
}
