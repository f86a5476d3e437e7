//go:build !linux
// +build !linux

// File: lcore/lcore_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback thread identity for platforms without a cheap tid syscall.
// All registrations collapse onto one slot, which limits the registry to
// a single worker; good enough for development hosts.

package lcore

func threadID() int {
	return 0
}
