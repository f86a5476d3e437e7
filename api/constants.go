// File: api/constants.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Build-time limits and defaults for the packet-buffer layer.
// All values are fixed at init time and never renegotiated at runtime.

package api

const (
	// MaxLcore is the maximum number of logical cores the registry tracks.
	MaxLcore = 128

	// MaxNUMANodes is the maximum number of NUMA nodes supported.
	MaxNUMANodes = 32

	// DefaultDataRoom is the per-buffer capacity (bytes) a pool uses
	// when its config leaves DataRoom zero.
	DefaultDataRoom = 2048

	// DefaultHeadroom is the reserved space before valid data in a
	// freshly allocated or reset buffer.
	DefaultHeadroom = 128

	// MaxChainSegments bounds the number of segments in one packet chain.
	MaxChainSegments = 65535

	// MaxEthPorts is the size of the global port table.
	MaxEthPorts = 32

	// MaxBurstSize is the largest burst a single rx/tx call processes.
	MaxBurstSize = 64
)

// LcoreIDAny is the sentinel returned for threads not registered as lcores.
const LcoreIDAny = ^uint(0)

// RSS hash-type flags. Opaque bit values carried through buffer metadata;
// this layer never interprets them.
const (
	RSSIPv4            uint64 = 1 << 2
	RSSFragIPv4        uint64 = 1 << 3
	RSSNonFragIPv4TCP  uint64 = 1 << 4
	RSSNonFragIPv4UDP  uint64 = 1 << 5
	RSSNonFragIPv4SCTP uint64 = 1 << 6
	RSSNonFragIPv4Oth  uint64 = 1 << 7
	RSSIPv6            uint64 = 1 << 8
	RSSFragIPv6        uint64 = 1 << 9
	RSSNonFragIPv6TCP  uint64 = 1 << 10
	RSSNonFragIPv6UDP  uint64 = 1 << 11
	RSSNonFragIPv6SCTP uint64 = 1 << 12
	RSSNonFragIPv6Oth  uint64 = 1 << 13
	RSSIPv6Ex          uint64 = 1 << 15
	RSSIPv6TCPEx       uint64 = 1 << 16
	RSSIPv6UDPEx       uint64 = 1 << 17
)

// Aggregate RSS groups.
const (
	RSSIP = RSSIPv4 | RSSFragIPv4 | RSSNonFragIPv4Oth |
		RSSIPv6 | RSSFragIPv6 | RSSNonFragIPv6Oth | RSSIPv6Ex

	RSSTCP = RSSNonFragIPv4TCP | RSSNonFragIPv6TCP | RSSIPv6TCPEx

	RSSUDP = RSSNonFragIPv4UDP | RSSNonFragIPv6UDP | RSSIPv6UDPEx
)
