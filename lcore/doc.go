// Package lcore
// Author: momentics <momentics@gmail.com>
//
// Logical core registry for run-to-completion workers. Each worker pins
// itself to an OS thread and registers under a stable logical id; pools
// and port queues are then sharded across ids by convention instead of
// mutual exclusion. The main core is the thread that called Init.
package lcore
