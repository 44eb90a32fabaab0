package vector

import (
	"fmt"

	"github.com/npillmayer/pmatch/maybe"
)

// Vector is an immutable persistent vector. The zero value is an empty vector
// with default degree.
type Vector[T any] struct {
	props
	length uint32
	shift  uint32 // bits * height of the trie
	root   *vnode[T]
	tail   []T
}

// Immutable creates an empty vector.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// DegreeExponent is an option to indirectly set the degree of the underlying tree for a vector.
// The degree of the tree will be 2^exp. Accepted exponents are [1…5]; default is 3, i.e.
// a degree of 8.
//
// Use it like this:
//
//     vec := vector.Immutable[int](DegreeExponent(5))
//
func DegreeExponent(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		return props{}.withBits(uint32(n))
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Len returns the number of items in v.
func (v Vector[T]) Len() int {
	return int(v.length)
}

// Last returns the last item of v, if any.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if v.length == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// Get returns the item at position i. It panics if i is out of range.
func (v Vector[T]) Get(i int) T {
	assertThat(i >= 0 && uint32(i) < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	if off := v.tailOffset(); uint32(i) >= off {
		return v.tail[uint32(i)-off]
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(uint32(i)>>level)&v.mask]
	}
	return node.leafs[uint32(i)&v.mask]
}

// Set returns a copy of v with position i replaced by value.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	assertThat(i >= 0 && uint32(i) < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	if off := v.tailOffset(); uint32(i) >= off {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[uint32(i)-off] = value
		v.tail = newTail
		return v
	}
	v.root = v.root.assoc(v.shift, v.props, uint32(i), value)
	return v
}

// Push returns a copy of v with value appended.
func (v Vector[T]) Push(value T) Vector[T] {
	v.props = v.props.init()
	if v.root == nil {
		v.root = emptyNode[T](v.degree)
		v.shift = v.bits
	}
	if v.length-v.tailOffset() < v.degree { // room in tail
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		v.tail = newTail
		v.length++
		return v
	}
	// tail is full ⇒ move it into the trie
	tailNode := newLeaf(v.tail)
	if (v.length >> v.bits) > (1 << v.shift) { // root overflow ⇒ grow by one level
		tracer().Debugf("vector of length %d grows a new root level", v.length)
		newRoot := emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath(v.shift, v.props, tailNode)
		v.root = newRoot
		v.shift += v.bits
	} else {
		v.root = v.pushTail(v.shift, v.root, tailNode)
	}
	v.tail = []T{value}
	v.length++
	return v
}

// Each calls f for every item of v, in order.
func (v Vector[T]) Each(f func(int, T)) {
	for i := 0; i < int(v.length); i++ {
		f(i, v.Get(i))
	}
}

// Slice returns the items of v as a fresh slice.
func (v Vector[T]) Slice() []T {
	s := make([]T, 0, v.length)
	v.Each(func(_ int, x T) {
		s = append(s, x)
	})
	return s
}

func (v Vector[T]) String() string {
	return fmt.Sprintf("Vector(len=%d, depth=%d, k=%d)", v.length, v.depth(), v.degree)
}

// ---------------------------------------------------------------------------

func (v Vector[T]) pushTail(level uint32, parent, tailNode *vnode[T]) *vnode[T] {
	subidx := ((v.length - 1) >> level) & v.mask
	node := parent.clone()
	switch child := parent.children[subidx]; {
	case level == v.bits:
		node.children[subidx] = tailNode
	case child != nil:
		node.children[subidx] = v.pushTail(level-v.bits, child, tailNode)
	default:
		node.children[subidx] = newPath(level-v.bits, v.props, tailNode)
	}
	return node
}

func (v Vector[T]) tailOffset() uint32 {
	if v.length < v.degree {
		return 0
	}
	return ((v.length - 1) >> v.bits) << v.bits
}

func (v Vector[T]) depth() int {
	if v.bits == 0 {
		return 0
	}
	return int(v.shift / v.bits)
}
