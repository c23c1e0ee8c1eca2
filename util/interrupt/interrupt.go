// Copyright (c) 2013 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package interrupt allows to handle interrupts.
//
// The jlib tools have no cancellation in their codecs. Instead they
// register a handler which closes the streams in flight, so that blocked
// reads and writes fail with an I/O error and the tool can exit.
package interrupt

import (
	"os"
	"os/signal"
	"sync"

	"github.com/jlib/jlib/log"
)

var (
	mu       sync.Mutex
	handlers []func()
	once     sync.Once
)

// run invokes all registered handlers in the order they were added.
func run() {
	mu.Lock()
	callbacks := make([]func(), len(handlers))
	copy(callbacks, handlers)
	mu.Unlock()
	for _, callback := range callbacks {
		callback()
	}
}

// listen waits for SIGINT (Ctrl+C) signals. It must be run as a goroutine.
func listen(interruptChannel <-chan os.Signal) {
	for range interruptChannel {
		log.Infof("received SIGINT (Ctrl+C). Shutting down...")
		run()
	}
}

// AddInterruptHandler adds a handler to call when a SIGINT (Ctrl+C) is
// received.
func AddInterruptHandler(handler func()) {
	once.Do(func() {
		interruptChannel := make(chan os.Signal, 1)
		signal.Notify(interruptChannel, os.Interrupt)
		go listen(interruptChannel)
	})
	mu.Lock()
	handlers = append(handlers, handler)
	mu.Unlock()
}
