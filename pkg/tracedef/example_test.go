/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef_test

import (
	"fmt"

	"github.com/tracekit/tracekit/pkg/tracedef"
)

func Example() {
	tc := tracedef.New()

	level := tc.NewUnsignedEnumeration()
	level.SetFieldValueRange(8)
	level.AddMapping("LOW", tracedef.NewUnsignedRangeSet().AddRange(0, 9))
	level.AddMapping("HIGH", tracedef.NewUnsignedRangeSet().AddRange(10, 20))

	payload := tc.NewStructure()
	payload.AppendMember("level", level)
	payload.AppendMember("message", tc.NewString())

	if err := tc.AttachRoot("event-payload", payload); err != nil {
		panic(err)
	}

	fmt.Println(payload.MemberCount())
	fmt.Println(level.MappingLabelsForValue(5))
	fmt.Println(level.MappingLabelsForValue(50))
	fmt.Println(payload.IsFrozen(), payload.IsPartOfTraceClass())

	// Output:
	// 2
	// [LOW]
	// []
	// true true
}
