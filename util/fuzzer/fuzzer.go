// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fuzzer implements a simple sequential bit-flip fuzzer for
// decoders.
package fuzzer

// SequentialFuzzer flips every bit of Data, one at a time, and hands each
// mutation to TestFunc.
type SequentialFuzzer struct {
	Data     []byte              // the valid input to mutate
	TestFunc func([]byte) error // called once per mutation
	Errors   int                 // number of mutations TestFunc rejected
}

// Fuzz runs TestFunc on all len(Data)*8 single-bit mutations of Data.
// Data itself is left unchanged. Fuzz returns true if TestFunc returned an
// error for at least one mutation.
func (f *SequentialFuzzer) Fuzz() bool {
	f.Errors = 0
	mutation := make([]byte, len(f.Data))
	for i := range f.Data {
		for bit := uint(0); bit < 8; bit++ {
			copy(mutation, f.Data)
			mutation[i] ^= 1 << bit
			if err := f.TestFunc(mutation); err != nil {
				f.Errors++
			}
		}
	}
	return f.Errors > 0
}
