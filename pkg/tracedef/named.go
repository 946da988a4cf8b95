/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

// Child bound to a name inside a container field class
type namedFieldClass interface {
	// Child name, unique within the container
	Name() string

	// Bound field class
	FieldClass() IFieldClass
}

// Ordered collection of named children with O(1) name lookup.
//
// Shared engine behind structure members, variant options and trace class
// roots. Callers freeze the bound field class after a successful append.
type named[C namedFieldClass] struct {
	children []C
	index    map[string]int
}

func makeNamed[C namedFieldClass]() named[C] {
	return named[C]{index: make(map[string]int)}
}

// Appends child at the next index and registers its name. what names the
// child kind in panic messages ("structure member", "variant option", …).
//
// # Panics:
//   - if child name is empty,
//   - if child name is already used in the container.
func (n *named[C]) append(what string, child C) {
	name := child.Name()
	if name == "" {
		panic(ErrMissed("%s name", what))
	}
	if _, ok := n.index[name]; ok {
		panic(ErrAlreadyExists("%s «%s»", what, name))
	}
	n.index[name] = len(n.children)
	n.children = append(n.children, child)
}

// Returns child by index.
//
// # Panics:
//   - if index is out of bounds.
func (n *named[C]) at(what string, index int) C {
	if (index < 0) || (index >= len(n.children)) {
		panic(ErrOutOfBounds("%s index %d, container has %d children", what, index, len(n.children)))
	}
	return n.children[index]
}

// Finds child by name, case-sensitive exact match. A miss is not an error.
func (n *named[C]) byName(name string) (child C, ok bool) {
	if i, exists := n.index[name]; exists {
		return n.children[i], true
	}
	return child, false
}

func (n *named[C]) count() int { return len(n.children) }

// Enumerates all children in add order.
func (n *named[C]) each(cb func(C)) {
	for _, c := range n.children {
		cb(c)
	}
}
