package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableProgressCounters(t *testing.T) {
	p := NewTableProgress(4, "writing")

	p.AddBytes(1024)
	p.AddBytes(0)
	p.AddBytes(512)
	p.PartDone()
	p.PartDone()

	parts, bytes := p.Snapshot()
	require.Equal(t, int64(2), parts)
	require.Equal(t, int64(1536), bytes)
}

func TestTableProgressConcurrentUpdates(t *testing.T) {
	p := NewTableProgress(64, "writing")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p.AddBytes(10)
			}
		}()
	}
	wg.Wait()

	_, bytes := p.Snapshot()
	require.Equal(t, int64(8000), bytes)
}
