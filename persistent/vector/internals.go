package vector

import (
	"fmt"
	"strings"
)

type props struct {
	bits   uint32 // number of bits to use per level
	degree uint32 // degree is always 2 ^ bits
	mask   uint32 // mask is degree - 1, i.e. a bit pattern with trailing 1s of length 'bits'
}

func (p props) withBits(b uint32) props {
	p.bits = b
	p.degree = 1 << b
	p.mask = p.degree - 1
	return p
}

func (p props) init() props {
	if p.bits == 0 {
		return p.withBits(3)
	}
	return p
}

// vnode represents a node in the trie a vector is made of. Inner nodes carry
// children, nodes at level 0 carry a bucket of leafs.
type vnode[T any] struct {
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](k uint32) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], int(k)),
	}
}

func newLeaf[T any](tail []T) *vnode[T] {
	return &vnode[T]{leafs: cloneTail(tail, len(tail))}
}

func (node *vnode[T]) clone() *vnode[T] {
	n := &vnode[T]{}
	if node.leafs != nil {
		n.leafs = cloneTail(node.leafs, len(node.leafs))
	}
	if node.children != nil {
		n.children = make([]*vnode[T], len(node.children))
		copy(n.children, node.children)
	}
	return n
}

// assoc copies the path from node down to slot i and replaces the leaf there.
func (node *vnode[T]) assoc(level uint32, p props, i uint32, value T) *vnode[T] {
	n := node.clone()
	if level == 0 {
		n.leafs[i&p.mask] = value
		return n
	}
	subidx := (i >> level) & p.mask
	n.children[subidx] = node.children[subidx].assoc(level-p.bits, p, i, value)
	return n
}

func (node *vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.children == nil {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

func cloneTail[T any](tail []T, l int) []T {
	newTail := make([]T, l)
	copy(newTail, tail)
	return newTail
}

// newPath wraps node into a chain of inner nodes reaching down from level.
func newPath[T any](level uint32, p props, node *vnode[T]) *vnode[T] {
	if level == 0 {
		return node
	}
	top := emptyNode[T](p.degree)
	top.children[0] = newPath(level-p.bits, p, node)
	return top
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
