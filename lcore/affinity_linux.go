//go:build linux
// +build linux

// File: lcore/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux thread pinning via sched_setaffinity.

package lcore

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Pin binds the calling OS thread to one CPU. Call after Register, from
// the worker goroutine itself.
func Pin(cpuID int) error {
	if cpuID < 0 {
		return fmt.Errorf("pin cpu %d: negative id", cpuID)
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("pin cpu %d: sched_setaffinity: %w", cpuID, err)
	}
	return nil
}

// Unpin restores the thread's affinity to every online CPU.
func Unpin() error {
	var set unix.CPUSet
	set.Zero()
	for cpu := 0; cpu < len(set)*64; cpu++ {
		set.Set(cpu)
	}
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("unpin: sched_setaffinity: %w", err)
	}
	return nil
}
