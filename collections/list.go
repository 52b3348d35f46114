package collections

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/brkalloc/heap"
)

const (
	nodeValueOffset = 0
	nodeNextOffset  = 8
	nodeSize        = 16
)

// IntList is a singly linked list of integers. Each node is a single 16 byte heap block
// holding the value followed by the link to the next node.
type IntList struct {
	allocator Allocator
	head      heap.Ptr
}

func NewIntList(allocator Allocator) *IntList {
	return &IntList{allocator: allocator}
}

func (l *IntList) newNode(value int32, next heap.Ptr) (heap.Ptr, error) {
	node, err := l.allocator.Allocate(nodeSize)
	if err != nil {
		return heap.Nil, errors.Wrapf(err, "failed to allocate node for %d", value)
	}

	b := l.allocator.Bytes(node)
	writeInt(b, nodeValueOffset/intSize, value)
	writeLink(b, nodeNextOffset, next)
	return node, nil
}

func (l *IntList) value(node heap.Ptr) int32 {
	return readInt(l.allocator.Bytes(node), nodeValueOffset/intSize)
}

func (l *IntList) next(node heap.Ptr) heap.Ptr {
	return readLink(l.allocator.Bytes(node), nodeNextOffset)
}

func (l *IntList) setNext(node heap.Ptr, next heap.Ptr) {
	writeLink(l.allocator.Bytes(node), nodeNextOffset, next)
}

// Push adds value at the front of the list
func (l *IntList) Push(value int32) error {
	node, err := l.newNode(value, l.head)
	if err != nil {
		return err
	}

	l.head = node
	return nil
}

// Append adds value at the end of the list
func (l *IntList) Append(value int32) error {
	node, err := l.newNode(value, heap.Nil)
	if err != nil {
		return err
	}

	if l.head == heap.Nil {
		l.head = node
		return nil
	}

	last := l.head
	for l.next(last) != heap.Nil {
		last = l.next(last)
	}
	l.setNext(last, node)

	return nil
}

// Delete unlinks and releases the first node holding key
func (l *IntList) Delete(key int32) error {
	prev := heap.Nil
	node := l.head

	for node != heap.Nil && l.value(node) != key {
		prev = node
		node = l.next(node)
	}

	if node == heap.Nil {
		return errors.Wrapf(ErrKeyNotFound, "key %d", key)
	}

	if prev == heap.Nil {
		l.head = l.next(node)
	} else {
		l.setNext(prev, l.next(node))
	}
	l.allocator.Release(node)

	return nil
}

// Values returns the list contents from front to back
func (l *IntList) Values() []int32 {
	var values []int32
	for node := l.head; node != heap.Nil; node = l.next(node) {
		values = append(values, l.value(node))
	}

	return values
}

func (l *IntList) Len() int {
	count := 0
	for node := l.head; node != heap.Nil; node = l.next(node) {
		count++
	}

	return count
}

// Print writes the list as "a -> b -> NULL"
func (l *IntList) Print(w io.Writer) error {
	for node := l.head; node != heap.Nil; node = l.next(node) {
		if _, err := fmt.Fprintf(w, "%d -> ", l.value(node)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "NULL")
	return err
}

// Free releases every node, leaving an empty list
func (l *IntList) Free() {
	for l.head != heap.Nil {
		node := l.head
		l.head = l.next(node)
		l.allocator.Release(node)
	}
}
