package heap

import (
	"fmt"
	"strings"
)

// CreateFlags indicate specific allocator behaviors to activate or deactivate
type CreateFlags int32

const (
	// CreateNoTrim keeps the program break where it is when the last block of the heap is
	// released. The trailing block stays in the chain as a free block and is reused by later
	// allocations, which saves a break move per release when the same sizes are allocated and
	// released repeatedly. The segment still belongs to the heap alone.
	CreateNoTrim CreateFlags = 1 << iota
	// CreateValidate runs Validate after every call that changes the block chain and panics
	// if the chain is inconsistent. Building with the debug_mem_utils tag has the same effect
	// for every allocator.
	CreateValidate
)

var createFlagsMapping = map[CreateFlags]string{
	CreateNoTrim:   "CreateNoTrim",
	CreateValidate: "CreateValidate",
}

func (f CreateFlags) String() string {
	if f == 0 {
		return "None"
	}

	var names []string
	for bit := CreateFlags(1); bit > 0 && bit <= f; bit <<= 1 {
		if f&bit == 0 {
			continue
		}

		name, ok := createFlagsMapping[bit]
		if !ok {
			name = fmt.Sprintf("CreateFlags(%#x)", uint32(bit))
		}
		names = append(names, name)
	}

	return strings.Join(names, "|")
}
