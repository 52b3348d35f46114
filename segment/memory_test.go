package segment_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/brkalloc/memutils"
	"github.com/vkngwrapper/brkalloc/segment"
)

func TestMemorySbrkGrowAndShrink(t *testing.T) {
	seg := segment.NewMemory(1024)
	require.Equal(t, 0, seg.Break())
	require.Len(t, seg.Bytes(), 0)

	prev, err := seg.Sbrk(100)
	require.NoError(t, err)
	require.Equal(t, 0, prev)
	require.Equal(t, 100, seg.Break())
	require.Len(t, seg.Bytes(), 100)

	prev, err = seg.Sbrk(28)
	require.NoError(t, err)
	require.Equal(t, 100, prev)
	require.Equal(t, 128, seg.Break())

	prev, err = seg.Sbrk(-28)
	require.NoError(t, err)
	require.Equal(t, 128, prev)
	require.Equal(t, 100, seg.Break())
}

func TestMemoryBreakLimit(t *testing.T) {
	seg := segment.NewMemory(64)

	_, err := seg.Sbrk(32)
	require.NoError(t, err)

	prev, err := seg.Sbrk(33)
	require.Error(t, err)
	require.True(t, errors.Is(err, memutils.ErrOutOfMemory))
	require.Equal(t, 32, prev)
	require.Equal(t, 32, seg.Break())

	err = seg.Brk(-1)
	require.True(t, errors.Is(err, memutils.ErrInvalidBreak))
	require.Equal(t, 32, seg.Break())

	require.NoError(t, seg.Brk(64))
	require.Equal(t, seg.Limit(), seg.Break())
}

func TestMemoryRetractClears(t *testing.T) {
	seg := segment.NewMemory(64)

	_, err := seg.Sbrk(16)
	require.NoError(t, err)

	mem := seg.Bytes()
	for i := range mem {
		mem[i] = 0xAB
	}

	require.NoError(t, seg.Brk(4))
	_, err = seg.Sbrk(12)
	require.NoError(t, err)

	mem = seg.Bytes()
	require.Equal(t, []byte{0xAB, 0xAB, 0xAB, 0xAB}, mem[:4])
	require.Equal(t, make([]byte, 12), mem[4:])
}

func TestMemoryBytesStable(t *testing.T) {
	seg := segment.NewMemory(4096)

	_, err := seg.Sbrk(8)
	require.NoError(t, err)
	first := seg.Bytes()
	first[0] = 7

	_, err = seg.Sbrk(2048)
	require.NoError(t, err)
	require.Equal(t, byte(7), seg.Bytes()[0])

	first[1] = 9
	require.Equal(t, byte(9), seg.Bytes()[1])
}

func TestMemoryDefaultLimit(t *testing.T) {
	seg := segment.NewMemory(0)
	require.Equal(t, segment.DefaultMemoryLimit, seg.Limit())
}
