// Package xhash provides the structural hash used to give value.V and
// symbol.ID a cheap, order-aware identity without requiring a canonical
// textual form first.
package xhash

import (
	"crypto/sha256"
	"encoding/binary"
)

// Hash is a fixed-size structural digest. The zero Hash is the identity
// element of Add.
type Hash [32]byte

// Bytes hashes an arbitrary byte slice. The empty slice does not hash to
// the zero Hash.
func Bytes(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// String hashes a string.
func String(s string) Hash {
	return Bytes([]byte(s))
}

// Uint64 hashes a single uint64, useful for hashing small scalar payloads
// (Argument indices, enum tags) without allocating.
func Uint64(v uint64) Hash {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return Bytes(buf[:])
}

func isZero(h Hash) bool {
	return h == Hash{}
}

// Add combines two hashes commutatively: Add(a, b) == Add(b, a), and the
// zero Hash is the identity. Used to hash order-irrelevant collections
// (Alternatives elements, a set of struct fields) where two permutations of
// the same multiset must hash identically.
//
// Unlike XOR, h.Add(h) is not the identity: Add treats both digests as
// 256-bit numbers and adds them modulo 2^256, so combining a value with
// itself still moves the accumulator.
func (h Hash) Add(o Hash) Hash {
	if isZero(h) {
		return o
	}
	if isZero(o) {
		return h
	}
	var out Hash
	var carry uint16
	for i := 31; i >= 0; i-- {
		sum := uint16(h[i]) + uint16(o[i]) + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	return out
}

// Merge combines two hashes in order: Merge(a, b) generally differs from
// Merge(b, a), and neither Hash is an identity element for it. Used to hash
// ordered sequences (Concat/Add/Array elements, Call's callee-then-args)
// where permuting the inputs must change the result.
func (h Hash) Merge(o Hash) Hash {
	var buf [64]byte
	copy(buf[:32], h[:])
	copy(buf[32:], o[:])
	return Bytes(buf[:])
}
