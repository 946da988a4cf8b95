/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

import (
	"github.com/goccy/go-yaml"
)

// DescribeYAML renders a trace class and its attached root graphs as YAML,
// for humans and tests. The output is deterministic: roots, members,
// options and mappings appear in add order.
func DescribeYAML(tc ITraceClass) ([]byte, error) {
	roots := yaml.MapSlice{}
	tc.Roots(func(r IRoot) {
		roots = append(roots, yaml.MapItem{Key: r.Name(), Value: describeFieldClass(r.FieldClass())})
	})
	return yaml.Marshal(yaml.MapSlice{{Key: "roots", Value: roots}})
}

func describeFieldClass(fc IFieldClass) yaml.MapSlice {
	d := yaml.MapSlice{{Key: "kind", Value: fc.Kind().TrimString()}}

	switch f := fc.(type) {
	case IUnsignedEnumerationFieldClass:
		d = describeInteger(d, f)
		d = append(d, yaml.MapItem{Key: "mappings", Value: describeMappings[uint64](f.Mappings)})
	case ISignedEnumerationFieldClass:
		d = describeInteger(d, f)
		d = append(d, yaml.MapItem{Key: "mappings", Value: describeMappings[int64](f.Mappings)})
	case IIntegerFieldClass:
		d = describeInteger(d, f)
	case IRealFieldClass:
		d = append(d, yaml.MapItem{Key: "single-precision", Value: f.IsSinglePrecision()})
	case IStructureFieldClass:
		members := yaml.MapSlice{}
		f.Members(func(m IStructureMember) {
			members = append(members, yaml.MapItem{Key: m.Name(), Value: describeFieldClass(m.FieldClass())})
		})
		d = append(d, yaml.MapItem{Key: "members", Value: members})
	case IStaticArrayFieldClass:
		d = append(d,
			yaml.MapItem{Key: "length", Value: f.Length()},
			yaml.MapItem{Key: "element", Value: describeFieldClass(f.ElementFieldClass())})
	case IDynamicArrayFieldClass:
		if p := f.LengthFieldPath(); p != nil {
			d = append(d, yaml.MapItem{Key: "length-field-path", Value: p.String()})
		}
		d = append(d, yaml.MapItem{Key: "element", Value: describeFieldClass(f.ElementFieldClass())})
	case IVariantWithUnsignedSelectorFieldClass:
		d = describeSelectorVariant[uint64](d, f)
	case IVariantWithSignedSelectorFieldClass:
		d = describeSelectorVariant[int64](d, f)
	case IVariantFieldClass:
		options := yaml.MapSlice{}
		f.Options(func(o IVariantOption) {
			options = append(options, yaml.MapItem{Key: o.Name(), Value: describeFieldClass(o.FieldClass())})
		})
		d = append(d, yaml.MapItem{Key: "options", Value: options})
	}
	return d
}

func describeInteger(d yaml.MapSlice, f IIntegerFieldClass) yaml.MapSlice {
	return append(d,
		yaml.MapItem{Key: "field-value-range", Value: f.FieldValueRange()},
		yaml.MapItem{Key: "preferred-display-base", Value: f.PreferredDisplayBase().TrimString()})
}

func describeMappings[T RangeBound](mappings func(func(IEnumerationMapping[T]))) yaml.MapSlice {
	d := yaml.MapSlice{}
	mappings(func(m IEnumerationMapping[T]) {
		d = append(d, yaml.MapItem{Key: m.Label(), Value: m.Ranges().String()})
	})
	return d
}

func describeSelectorVariant[T RangeBound](d yaml.MapSlice, f IVariantWithSelectorFieldClass[T]) yaml.MapSlice {
	if p := f.SelectorFieldPath(); p != nil {
		d = append(d, yaml.MapItem{Key: "selector-field-path", Value: p.String()})
	}
	options := yaml.MapSlice{}
	f.Options(func(o IVariantOption) {
		so := o.(IVariantSelectorOption[T])
		options = append(options, yaml.MapItem{Key: o.Name(), Value: yaml.MapSlice{
			{Key: "ranges", Value: so.Ranges().String()},
			{Key: "field-class", Value: describeFieldClass(o.FieldClass())},
		}})
	})
	return append(d, yaml.MapItem{Key: "options", Value: options})
}
