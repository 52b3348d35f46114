package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/vkngwrapper/brkalloc/collections"
)

// listCommand runs a fixed sequence of linked list operations
type listCommand struct {
	opts *heapOptions
}

func (cmd *listCommand) run(c *kingpin.ParseContext) error {
	h, err := cmd.opts.newHeap()
	if err != nil {
		return err
	}
	defer func() { _ = h.Close() }()

	list := collections.NewIntList(h)
	for _, step := range []func() error{
		func() error { return list.Append(10) },
		func() error { return list.Push(20) },
		func() error { return list.Push(30) },
		func() error { return list.Append(40) },
	} {
		if err := step(); err != nil {
			return err
		}
	}

	out := os.Stdout
	fmt.Fprint(out, "Linked list: ")
	if err := list.Print(out); err != nil {
		return err
	}

	if err := list.Delete(20); err != nil {
		return err
	}
	fmt.Fprint(out, "After deleting 20: ")
	if err := list.Print(out); err != nil {
		return err
	}

	if err := h.report(out, "with list"); err != nil {
		return err
	}
	list.Free()

	return h.report(out, "after free")
}

func addListCommand(app *kingpin.Application, opts *heapOptions) {
	cmd := &listCommand{opts: opts}
	app.Command("list", "Push, append and delete nodes of an integer linked list.").Action(cmd.run)
}
