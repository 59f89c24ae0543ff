// Package dfa builds deterministic finite automata from the NFAs of the nfa
// package via subset construction, compresses their transition tables with
// deduplicated byte classes, and provides whole-input and streaming
// (early-termination) matchers.
package dfa

import (
	"github.com/Bloeckchengrafik/lieutenant/internal/conv"
)

// ByteClassID indexes the byte-class pool of a DFA.
type ByteClassID uint16

// ByteClass maps each input byte to a column in a DFA state's transition
// table. Two bytes that drive the state identically share a column, which
// keeps per-state tables far below 256 entries.
//
// Classes live in a pool deduplicated by value: distinct DFA states with the
// same transition shape share one class, so total table memory is
// len(pool) * 256 regardless of state count.
type ByteClass [256]byte

// pool is the hash-consed byte-class store of a DFA under construction.
type pool struct {
	classes []ByteClass
	index   map[ByteClass]ByteClassID
}

func newPool() *pool {
	return &pool{index: make(map[ByteClass]ByteClassID)}
}

// intern returns the id of class in the pool, inserting it if it is new.
func (p *pool) intern(class ByteClass) ByteClassID {
	if id, ok := p.index[class]; ok {
		return id
	}
	id := ByteClassID(conv.IntToUint16(len(p.classes)))
	p.classes = append(p.classes, class)
	p.index[class] = id
	return id
}
