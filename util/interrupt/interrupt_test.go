// Copyright (c) 2013 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package interrupt

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerClosesStream(t *testing.T) {
	fp, err := ioutil.TempFile("", "interrupt_test")
	require.NoError(t, err)
	defer os.Remove(fp.Name())

	var order []int
	AddInterruptHandler(func() { order = append(order, 1) })
	AddInterruptHandler(func() {
		order = append(order, 2)
		fp.Close()
	})
	run()
	assert.Equal(t, []int{1, 2}, order)

	// reads on the closed stream fail
	_, err = fp.Read(make([]byte, 1))
	assert.Error(t, err)
}
