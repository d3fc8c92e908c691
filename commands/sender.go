// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

// DefaultQueueSize is the submission queue capacity of a [Sender] made
// with [NewSender].
const DefaultQueueSize = 256

// Sender queues commands for execution. Producers (UI intents) submit
// fire-and-forget; the owner of the editing state drains the queue on
// its own thread, which keeps the graph single-writer and guarantees no
// two commands interleave mid-application. Submission order is
// preserved.
type Sender struct {
	queue chan Command
}

// NewSender returns a sender with the default queue capacity.
func NewSender() *Sender {
	return &Sender{queue: make(chan Command, DefaultQueueSize)}
}

// Submit enqueues the command. It blocks only if the queue is full,
// which keeps ordering intact under bursts instead of dropping.
func (s *Sender) Submit(c Command) {
	s.queue <- c
}

// Pending returns the number of commands waiting to be drained.
func (s *Sender) Pending() int {
	return len(s.queue)
}

// Drain executes all pending commands in submission order against the
// context, recording each on the stack, and returns how many ran.
func (s *Sender) Drain(st *Stack, ctx *Context) int {
	n := 0
	for {
		select {
		case c := <-s.queue:
			st.Do(ctx, c)
			n++
		default:
			return n
		}
	}
}
