package timeline

// ID keys per-widget state in the host store and names hit-test
// allocations. Ids are derived by hashing, so a timeline and all of its
// internal handles fan out from one stable root id without the host needing
// to know the hierarchy.
type ID uint64

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

func NewID(name string) ID {
	return ID(fnvOffset).With(name)
}

func (id ID) With(name string) ID {
	h := uint64(id)
	for i := 0; i < len(name); i++ {
		h ^= uint64(name[i])
		h *= fnvPrime
	}
	return ID(h)
}

func (id ID) WithInt(i int) ID {
	h := uint64(id)
	for shift := 0; shift < 64; shift += 8 {
		h ^= uint64(i>>shift) & 0xff
		h *= fnvPrime
	}
	return ID(h)
}
