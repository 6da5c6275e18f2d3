package shelf

import (
	"github.com/TheBitDrifter/mask"
)

const blockBits = mask.MaxBits

// signature is a growable bitset of column positions. Bit i lives in block
// i/blockBits, so a registry can hold any number of component types.
type signature []mask.Mask

func (s *signature) mark(bit uint32) {
	block := int(bit / blockBits)
	for len(*s) <= block {
		*s = append(*s, mask.Mask{})
	}
	(*s)[block].Mark(bit % blockBits)
}

func (s signature) containsAll(other signature) bool {
	for i := range other {
		var have mask.Mask
		if i < len(s) {
			have = s[i]
		}
		if !have.ContainsAll(other[i]) {
			return false
		}
	}
	return true
}

func (s signature) containsAny(other signature) bool {
	for i := range other {
		if i < len(s) && s[i].ContainsAny(other[i]) {
			return true
		}
	}
	return false
}
