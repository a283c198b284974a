package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_Generate(t *testing.T) {
	gen := NewCodeGenerator()

	for i := 0; i < 1000; i++ {
		code := gen.Generate()
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestCodeGenerator_Varies(t *testing.T) {
	gen := NewCodeGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[gen.Generate()] = struct{}{}
	}

	// 100 draws from 900k values colliding down to a handful would mean a
	// broken generator.
	assert.Greater(t, len(seen), 50)
}
