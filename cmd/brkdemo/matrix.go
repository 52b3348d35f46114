package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/brkalloc/collections"
)

// matrixCommand builds a rows x cols matrix, fills it and tears it down
type matrixCommand struct {
	opts *heapOptions
	rows *int
	cols *int
}

func (cmd *matrixCommand) run(c *kingpin.ParseContext) error {
	h, err := cmd.opts.newHeap()
	if err != nil {
		return err
	}
	defer func() { _ = h.Close() }()

	m, err := collections.NewMatrix(h, *cmd.rows, *cmd.cols)
	if err != nil {
		return errors.Wrap(err, "failed to create matrix")
	}

	out := os.Stdout
	if err := m.Print(out); err != nil {
		return err
	}
	m.Fill()
	fmt.Fprintln(out)
	if err := m.Print(out); err != nil {
		return err
	}

	if err := h.report(out, "with matrix"); err != nil {
		return err
	}
	m.Free()

	return h.report(out, "after free")
}

func addMatrixCommand(app *kingpin.Application, opts *heapOptions) {
	cmd := &matrixCommand{opts: opts}
	matrix := app.Command("matrix", "Build, fill and free an integer matrix.").Action(cmd.run)
	cmd.rows = matrix.Arg("rows", "Number of rows.").Required().Int()
	cmd.cols = matrix.Arg("cols", "Number of columns.").Required().Int()
}
