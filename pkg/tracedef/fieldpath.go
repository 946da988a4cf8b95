/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

import "fmt"

// Opaque locator of one field class relative to the root of its graph.
//
// Values are produced by an external resolver and stored verbatim; this
// package never inspects them beyond rendering.
type IFieldPath interface {
	fmt.Stringer
}

// External collaborator resolving the relative path from the root of a
// graph to a target field class within the same graph. Consulted while a
// root is attached to a trace class, once per dynamic array length and per
// variant selector.
type FieldPathResolver func(root, target IFieldClass) (IFieldPath, error)

// Implemented by field class kinds carrying a field path to resolve.
// clearFieldPath discards a path stored by a walk that later failed, so
// the next attachment attempt resolves afresh.
type pathResolvable interface {
	resolveFieldPath(root IFieldClass, resolver FieldPathResolver) error
	clearFieldPath()
}
