package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/vkngwrapper/brkalloc/collections"
)

// arrayCommand runs a fixed sequence of dynamic array operations
type arrayCommand struct {
	opts     *heapOptions
	capacity *int
}

func (cmd *arrayCommand) run(c *kingpin.ParseContext) error {
	h, err := cmd.opts.newHeap()
	if err != nil {
		return err
	}
	defer func() { _ = h.Close() }()

	array, err := collections.NewIntArray(h, *cmd.capacity)
	if err != nil {
		return err
	}

	out := os.Stdout
	for _, value := range []int32{10, 20, 30} {
		if err := array.Insert(value); err != nil {
			return err
		}
	}
	if err := array.Print(out); err != nil {
		return err
	}

	if err := array.Remove(1); err != nil {
		return err
	}
	if err := array.Print(out); err != nil {
		return err
	}

	if err := array.SetCapacity(2 * *cmd.capacity); err != nil {
		return err
	}
	if err := array.Print(out); err != nil {
		return err
	}

	if err := h.report(out, "with array"); err != nil {
		return err
	}
	array.Free()

	return h.report(out, "after free")
}

func addArrayCommand(app *kingpin.Application, opts *heapOptions) {
	cmd := &arrayCommand{opts: opts}
	array := app.Command("array", "Insert into, remove from and resize a dynamic integer array.").Action(cmd.run)
	cmd.capacity = array.Flag("capacity", "Initial capacity of the array.").Default("5").Int()
}
