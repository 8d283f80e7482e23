package extendible

import (
	"github.com/mittfall/exthashmap/internal/model"
)

// Directory - Logical power-of-two length array of bucket handles, addressed by the low bits of a key
// hash. Several slots may reference the same bucket, for every live bucket the number of referencing
// slots is exactly 2^(globalDepth - localDepth) and those slots agree on their low localDepth bits.
type Directory struct {
	globalDepth int64
	slots       []model.Handle
}

// NewDirectory - Returns a pointer to a new Directory instance with global depth globalDepth,
// where slot i references handles[i]. The number of handles must be 2^globalDepth.
func NewDirectory(globalDepth int64, handles []model.Handle) *Directory {
	slots := make([]model.Handle, len(handles))
	copy(slots, handles)

	return &Directory{globalDepth: globalDepth, slots: slots}
}

// GlobalDepth - Returns the number of low hash bits used to index the directory
func (D *Directory) GlobalDepth() int64 {
	return D.globalDepth
}

// Length - Returns the number of directory slots, always 2^globalDepth
func (D *Directory) Length() int64 {
	return int64(len(D.slots))
}

// Slot - Returns the bucket handle referenced by the directory slot at the given address
func (D *Directory) Slot(addr int64) model.Handle {
	return D.slots[addr]
}

// Double - Doubles the directory length by duplicating the existing slot block, so slot j+2^globalDepth
// references the same bucket as slot j, and increments the global depth. This is a pure addressing
// capacity increase, no bucket contents move.
func (D *Directory) Double() {
	D.slots = append(D.slots, D.slots...)
	D.globalDepth++
}

// Repoint - Re-aims every slot that referenced a bucket just split at local depth oldLocal. The slots
// in question are exactly those whose low oldLocal bits equal pattern, and bit oldLocal of the slot
// index selects between the two halves: slots with the bit set now reference high, the rest low.
func (D *Directory) Repoint(pattern, oldLocal int64, low, high model.Handle) {
	step := int64(1) << oldLocal
	for j := pattern; j < int64(len(D.slots)); j += step {
		if (j>>oldLocal)&1 == 1 {
			D.slots[j] = high
		} else {
			D.slots[j] = low
		}
	}
}
