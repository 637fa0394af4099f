package sparsecs

import (
	"math/bits"
	"strconv"
	"strings"
)

const signatureWords = MaxComponentTypes / 64

// Signature is a set of component types, one bit per registered type. It is
// used both as a system's requirement and as an entity's current composition.
// Signatures are plain values and can be copied and compared with ==.
type Signature [signatureWords]uint64

// NewSignature returns a signature with the bits of all keys set.
func NewSignature(keys ...ComponentKey) Signature {
	var s Signature
	for _, k := range keys {
		s.Set(k)
	}
	return s
}

// Set adds the component type to the signature. It panics with
// ErrInvalidHandle for an unregistered key.
func (s *Signature) Set(key ComponentKey) {
	s.setBit(keyIndex(key))
}

// Reset removes the component type from the signature.
func (s *Signature) Reset(key ComponentKey) {
	s.resetBit(keyIndex(key))
}

// Has reports whether the component type is in the signature.
func (s Signature) Has(key ComponentKey) bool {
	if !key.Registered() {
		return false
	}
	return s.hasBit(key.Index())
}

// And returns the intersection of s and o.
func (s Signature) And(o Signature) Signature {
	return Signature{s[0] & o[0], s[1] & o[1], s[2] & o[2], s[3] & o[3]}
}

// Equal reports whether both signatures hold the same component types.
func (s Signature) Equal(o Signature) bool {
	return s == o
}

// Contains reports whether every component type in req is also in s, that is
// (req & s) == req. An entity with signature s belongs to a system with
// requirement req exactly when s.Contains(req).
func (s Signature) Contains(req Signature) bool {
	return (s[0]&req[0]) == req[0] &&
		(s[1]&req[1]) == req[1] &&
		(s[2]&req[2]) == req[2] &&
		(s[3]&req[3]) == req[3]
}

// IsEmpty reports whether no bit is set.
func (s Signature) IsEmpty() bool {
	return s == Signature{}
}

// Count returns the number of component types in the signature.
func (s Signature) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// String renders the set bits, lowest first, e.g. "{0 3 17}".
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for i := range uint16(MaxComponentTypes) {
		if !s.hasBit(i) {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(strconv.Itoa(int(i)))
	}
	b.WriteByte('}')
	return b.String()
}

func (s *Signature) setBit(bit uint16) {
	s[bit>>6] |= uint64(1) << (bit & 63)
}

func (s *Signature) resetBit(bit uint16) {
	s[bit>>6] &^= uint64(1) << (bit & 63)
}

func (s Signature) hasBit(bit uint16) bool {
	return s[bit>>6]&(uint64(1)<<(bit&63)) != 0
}

func keyIndex(key ComponentKey) uint16 {
	if !key.Registered() || key.Index() >= MaxComponentTypes {
		panic(ErrInvalidHandle)
	}
	return key.Index()
}
