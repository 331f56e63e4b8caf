package source

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	s := Chain(NewBytesSource([]byte("abc")), NewReaderSource(strings.NewReader("def"), 2))

	var got bytes.Buffer
	for {
		chunk, err := s.Next()
		require.NoError(t, err)
		if len(chunk) == 0 {
			break
		}
		got.Write(chunk)
	}
	assert.Equal(t, "abcdef", got.String())
}

func TestChainBackUp(t *testing.T) {
	s := Chain(NewBytesSource([]byte("abc")), NewBytesSource([]byte("def")))

	chunk, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, "abc", string(chunk))

	s.BackUp(1)
	chunk, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, "c", string(chunk))

	chunk, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, "def", string(chunk))
}
