package bookingref

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Format(t *testing.T) {
	ref, err := New()

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "MMT"))
	assert.Len(t, ref, 3+codeLen)
	for _, ch := range ref[3:] {
		assert.Contains(t, alphabet, string(ch))
	}
}

func TestNew_UniqueUnderConcurrency(t *testing.T) {
	const n = 1000

	var mu sync.Mutex
	seen := make(map[string]struct{}, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			ref, err := New()
			assert.NoError(t, err)

			mu.Lock()
			seen[ref] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n, "all concurrently generated references must be distinct")
}
