// Package ethdev
// Author: momentics <momentics@gmail.com>
//
// Burst-oriented receive/transmit over a port/queue pair.
// Ports are attached to a fixed-size table at init time; burst calls are
// stateless with respect to port and queue identity and never block: they
// return immediately with whatever is ready. A port/queue pair is owned
// by exactly one worker by convention; this package provides no locking
// on the burst path.
package ethdev
