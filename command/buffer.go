package command

import "iter"

// Buffer is a per-frame list of commands in emission order.
// The zero value is an empty buffer ready to use.
type Buffer struct {
	cmds []Command
}

// Push appends a command.
func (b *Buffer) Push(c Command) {
	b.cmds = append(b.cmds, c)
}

// Len returns the number of buffered commands.
func (b *Buffer) Len() int {
	return len(b.cmds)
}

// All returns an iterator over the commands in emission order.
// The sequence can be ranged over any number of times until Clear.
func (b *Buffer) All() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for _, c := range b.cmds {
			if !yield(c) {
				return
			}
		}
	}
}

// Clear drops all commands, keeping the allocated capacity.
func (b *Buffer) Clear() {
	clear(b.cmds)
	b.cmds = b.cmds[:0]
}
