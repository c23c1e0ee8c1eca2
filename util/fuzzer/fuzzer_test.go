// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fuzzer

import (
	"bytes"
	"fmt"
	"testing"
)

func TestFuzzer(t *testing.T) {
	fuzzer := &SequentialFuzzer{
		Data:     []byte{0x01, 0x01, 0x01, 0x01},
		TestFunc: func([]byte) error { return nil },
	}
	ok := fuzzer.Fuzz()
	if ok {
		t.Error("Fuzz must return false if no errors were generated")
	}
	fuzzer.TestFunc = func([]byte) error { return fmt.Errorf("error") }
	ok = fuzzer.Fuzz()
	if !ok {
		t.Error("Fuzz must not fail, errors found")
	}
	if fuzzer.Errors != 32 {
		t.Errorf("fuzzer.Errors == %d != 32", fuzzer.Errors)
	}
}

func TestFuzzerMutations(t *testing.T) {
	data := []byte{0x00, 0xff}
	seen := make(map[string]bool)
	fuzzer := &SequentialFuzzer{
		Data: data,
		TestFunc: func(m []byte) error {
			if bytes.Equal(m, data) {
				return fmt.Errorf("unmutated data")
			}
			seen[string(m)] = true
			return nil
		},
	}
	if fuzzer.Fuzz() {
		t.Error("TestFunc saw unmutated data")
	}
	if len(seen) != 16 {
		t.Errorf("len(seen) == %d != 16", len(seen))
	}
	if !bytes.Equal(data, []byte{0x00, 0xff}) {
		t.Error("Data was modified")
	}
}
