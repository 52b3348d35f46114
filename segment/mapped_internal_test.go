//go:build linux || darwin || freebsd

package segment

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestMappedRetractKeepsPagesWhenProtectFails(t *testing.T) {
	pageSize := os.Getpagesize()

	seg, err := NewMapped(4 * pageSize)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, seg.Close())
	}()

	_, err = seg.Sbrk(3 * pageSize)
	require.NoError(t, err)
	mem := seg.Bytes()
	for i := range mem {
		mem[i] = 0xab
	}

	mprotect = func(b []byte, prot int) error {
		if prot == unix.PROT_NONE {
			return unix.EPERM
		}
		return unix.Mprotect(b, prot)
	}
	defer func() { mprotect = unix.Mprotect }()

	require.NoError(t, seg.Brk(10))
	require.Equal(t, 10, seg.Break())
	require.Equal(t, 3*pageSize, seg.Committed())

	_, err = seg.Sbrk(2 * pageSize)
	require.NoError(t, err)
	require.Equal(t, 3*pageSize, seg.Committed())

	mem = seg.Bytes()
	for i := 0; i < 10; i++ {
		require.Equal(t, byte(0xab), mem[i])
	}
	require.Equal(t, make([]byte, len(mem)-10), mem[10:])
}
