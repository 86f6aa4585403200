// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package memory

import (
	"sync/atomic"
)

// CheckedAllocator wraps another allocator and tracks how many bytes are
// currently handed out, so tests can assert that growth releases the
// regions it replaced.
type CheckedAllocator struct {
	mem Allocator
	sz  int64
}

func NewCheckedAllocator(mem Allocator) *CheckedAllocator {
	return &CheckedAllocator{mem: mem}
}

func (a *CheckedAllocator) CurrentAlloc() int { return int(atomic.LoadInt64(&a.sz)) }

func (a *CheckedAllocator) Allocate(size int) []byte {
	atomic.AddInt64(&a.sz, int64(size))
	return a.mem.Allocate(size)
}

func (a *CheckedAllocator) Reallocate(size int, b []byte) []byte {
	atomic.AddInt64(&a.sz, int64(size-len(b)))
	return a.mem.Reallocate(size, b)
}

func (a *CheckedAllocator) Free(b []byte) {
	atomic.AddInt64(&a.sz, int64(len(b)*-1))
	a.mem.Free(b)
}

// AssertSize reports a test error when the outstanding byte count differs from sz.
func (a *CheckedAllocator) AssertSize(t TestingT, sz int) {
	if a.CurrentAlloc() != sz {
		t.Helper()
		t.Errorf("invalid memory size exp=%d, got=%d", sz, a.CurrentAlloc())
	}
}

// TestingT is the subset of testing.TB used by AssertSize.
type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

var (
	_ Allocator = (*CheckedAllocator)(nil)
)
