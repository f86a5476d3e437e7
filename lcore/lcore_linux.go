//go:build linux
// +build linux

// File: lcore/lcore_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux thread identity via gettid. Valid only while the goroutine holds
// runtime.LockOSThread, which Register guarantees.

package lcore

import "golang.org/x/sys/unix"

func threadID() int {
	return unix.Gettid()
}
