package collections

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/brkalloc/heap"
)

// Matrix is a rows x cols grid of integers. A zero-filled row table holds one link per row,
// and every row is its own zero-filled block of cols integers.
type Matrix struct {
	allocator Allocator
	table     heap.Ptr
	rows      int
	cols      int
}

// NewMatrix allocates the row table and every row. If any allocation fails, everything
// allocated so far is released before the error is returned.
func NewMatrix(allocator Allocator, rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "matrix of %d x %d", rows, cols)
	}

	table, err := allocator.AllocateZeroed(rows, linkSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to allocate table for %d rows", rows)
	}

	m := &Matrix{
		allocator: allocator,
		table:     table,
		rows:      rows,
		cols:      cols,
	}

	for i := 0; i < rows; i++ {
		row, err := allocator.AllocateZeroed(cols, intSize)
		if err != nil {
			m.Free()
			return nil, errors.Wrapf(err, "failed to allocate row %d", i)
		}

		writeLink(allocator.Bytes(table), i*linkSize, row)
	}

	return m, nil
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) row(i int) heap.Ptr {
	return readLink(m.allocator.Bytes(m.table), i*linkSize)
}

// At returns the value at row i, column j
func (m *Matrix) At(i, j int) int32 {
	return readInt(m.allocator.Bytes(m.row(i)), j)
}

// Set stores value at row i, column j
func (m *Matrix) Set(i, j int, value int32) {
	writeInt(m.allocator.Bytes(m.row(i)), j, value)
}

// Fill sets every cell to the sum of its row and column index
func (m *Matrix) Fill() {
	for i := 0; i < m.rows; i++ {
		row := m.allocator.Bytes(m.row(i))
		for j := 0; j < m.cols; j++ {
			writeInt(row, j, int32(i+j))
		}
	}
}

// Print writes one line per row with every value followed by a space
func (m *Matrix) Print(w io.Writer) error {
	for i := 0; i < m.rows; i++ {
		row := m.allocator.Bytes(m.row(i))
		for j := 0; j < m.cols; j++ {
			if _, err := fmt.Fprintf(w, "%d ", readInt(row, j)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// Free releases every row and then the row table. The matrix must not be used afterward.
func (m *Matrix) Free() {
	if m.table == heap.Nil {
		return
	}

	for i := 0; i < m.rows; i++ {
		m.allocator.Release(m.row(i))
	}
	m.allocator.Release(m.table)

	m.table = heap.Nil
	m.rows = 0
	m.cols = 0
}
