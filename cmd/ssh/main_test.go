package main

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeTrackerUpdates(t *testing.T) {
	st := newSizeTracker(80, 24)

	w, h, err := st.getSize()
	require.NoError(t, err)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.update(100, 40)
			_, _, _ = st.getSize()
		}()
	}
	wg.Wait()

	w, h, _ = st.getSize()
	assert.Equal(t, 100, w)
	assert.Equal(t, 40, h)
}
