// Package pktmbuf
// Author: momentics <momentics@gmail.com>
//
// Zero-copy packet buffer (mbuf) core for hioload-pkt.
// Implements arena-backed mempools, index+generation buffer handles,
// O(1) headroom/tailroom arithmetic and multi-segment chaining.
// All mutation is constant-time offset movement; payload is never copied
// unless WriteData or Copy is explicitly called.
// See pool.go, mbuf.go, chain.go, batch.go for implementation details.
package pktmbuf
