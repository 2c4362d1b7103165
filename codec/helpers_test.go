// SPDX-License-Identifier: MIT

package codec_test

import "errors"

var errInjected = errors.New("injected allocation failure")

// countingAlloc tracks live buffers and fails the failOn-th Alloc (1-based).
type countingAlloc struct {
	failOn int
	calls  int
	live   int
}

func (a *countingAlloc) Alloc(n int) ([]int, error) {
	a.calls++
	if a.failOn > 0 && a.calls == a.failOn {
		return nil, errInjected
	}
	a.live++

	return make([]int, n), nil
}

func (a *countingAlloc) Free([]int) { a.live-- }
