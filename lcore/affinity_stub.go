//go:build !linux
// +build !linux

// File: lcore/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub pinning for platforms without sched_setaffinity.

package lcore

import "github.com/momentics/hioload-pkt/api"

// Pin is unavailable on this platform.
func Pin(int) error {
	return api.ErrNotSupported
}

// Unpin is unavailable on this platform.
func Unpin() error {
	return api.ErrNotSupported
}
