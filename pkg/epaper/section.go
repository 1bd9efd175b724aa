package epaper

import "github.com/google/uuid"

// Block mutation helpers. Every method returns a new Section with a freshly
// allocated block list; the receiver is never modified. Operations on block
// IDs that are no longer present return a value-equal section, so a stale
// click in the editor degrades to a no-op.

// NewSection creates an empty section of the given type.
func NewSection(sectionType, title string) Section {
	return Section{
		ID:    uuid.New().String(),
		Type:  sectionType,
		Title: title,
	}
}

// clone returns a deep copy of the section. Block variants hold no reference
// types, so copying the slice elements copies the blocks.
func (s Section) clone() Section {
	out := s
	if s.Blocks != nil {
		out.Blocks = make([]Block, len(s.Blocks))
		copy(out.Blocks, s.Blocks)
	}
	return out
}

// WithBlockUpdated returns a section in which the block matching blockID has
// the patch's set fields merged over its current values. The block's ID and
// kind are never changed.
func (s Section) WithBlockUpdated(blockID string, patch BlockPatch) Section {
	out := s
	out.Blocks = make([]Block, len(s.Blocks))
	for i, b := range s.Blocks {
		if b.BlockID() == blockID {
			out.Blocks[i] = b.applyPatch(patch)
		} else {
			out.Blocks[i] = b
		}
	}
	return out
}

// WithBlockAdded returns a section with the block appended to the end of the
// block list.
func (s Section) WithBlockAdded(b Block) Section {
	out := s
	out.Blocks = make([]Block, 0, len(s.Blocks)+1)
	out.Blocks = append(out.Blocks, s.Blocks...)
	out.Blocks = append(out.Blocks, b)
	return out
}

// WithBlockRemoved returns a section without the block matching blockID.
func (s Section) WithBlockRemoved(blockID string) Section {
	out := s
	out.Blocks = make([]Block, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		if b.BlockID() != blockID {
			out.Blocks = append(out.Blocks, b)
		}
	}
	return out
}

// WithBlockMoved returns a section with the block matching blockID moved one
// position toward the start (up) or the end (down). Moving the first block up
// or the last block down re-inserts it at the same index: order is unchanged
// but a new list is still produced.
func (s Section) WithBlockMoved(blockID string, direction MoveDirection) Section {
	idx := -1
	for i, b := range s.Blocks {
		if b.BlockID() == blockID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return s.clone()
	}

	out := s
	out.Blocks = make([]Block, 0, len(s.Blocks))
	out.Blocks = append(out.Blocks, s.Blocks[:idx]...)
	out.Blocks = append(out.Blocks, s.Blocks[idx+1:]...)

	target := idx
	switch {
	case direction == MoveUp && idx > 0:
		target = idx - 1
	case direction == MoveDown && idx < len(out.Blocks):
		target = idx + 1
	}

	moved := s.Blocks[idx]
	out.Blocks = append(out.Blocks, nil)
	copy(out.Blocks[target+1:], out.Blocks[target:])
	out.Blocks[target] = moved
	return out
}
