package sparsecs

const (
	pageBits = 12
	pageSize = 1 << pageBits
	pageMask = pageSize - 1
)

// sparseIndex maps an EntityID to a dense slice position. Pages are allocated
// on first write so a store only pays for the id ranges it has seen.
// Entries hold position+1; zero means absent.
type sparseIndex struct {
	pages [][]uint32
}

func (s *sparseIndex) get(e EntityID) (int, bool) {
	p := uint64(e) >> pageBits
	if p >= uint64(len(s.pages)) || s.pages[p] == nil {
		return 0, false
	}
	v := s.pages[p][uint64(e)&pageMask]
	if v == 0 {
		return 0, false
	}
	return int(v - 1), true
}

func (s *sparseIndex) set(e EntityID, pos int) {
	p := int(uint64(e) >> pageBits)
	if p >= len(s.pages) {
		s.pages = grow(s.pages, p+1)
	}
	if s.pages[p] == nil {
		s.pages[p] = make([]uint32, pageSize)
	}
	s.pages[p][uint64(e)&pageMask] = uint32(pos) + 1
}

func (s *sparseIndex) erase(e EntityID) {
	p := uint64(e) >> pageBits
	if p >= uint64(len(s.pages)) || s.pages[p] == nil {
		return
	}
	s.pages[p][uint64(e)&pageMask] = 0
}

func (s *sparseIndex) reset() {
	for _, pg := range s.pages {
		clear(pg)
	}
}
