/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

// # Implements:
//   - IStructureMember
type member struct {
	name string
	fc   IFieldClass
}

func (m *member) Name() string { return m.name }

func (m *member) FieldClass() IFieldClass { return m.fc }

// # Implements:
//   - IStructureFieldClass
type structure struct {
	fieldClass
	members named[*member]
}

func newStructure(tc ITraceClass) *structure {
	return &structure{
		fieldClass: makeFieldClass(tc, FieldClassKind_Structure),
		members:    makeNamed[*member](),
	}
}

func (s *structure) AppendMember(name string, fc IFieldClass) {
	s.panicIfFrozen()
	if fc == nil {
		panic(ErrMissed("member field class"))
	}
	s.members.append("structure member", &member{name: name, fc: fc})
	freeze(fc)
}

func (s *structure) Member(index int) IStructureMember {
	return s.members.at("structure member", index)
}

func (s *structure) MemberByName(name string) IStructureMember {
	if m, ok := s.members.byName(name); ok {
		return m
	}
	return nil
}

func (s *structure) MemberCount() int { return s.members.count() }

func (s *structure) Members(cb func(IStructureMember)) {
	s.members.each(func(m *member) { cb(m) })
}

func (s *structure) eachChild(cb func(IFieldClass)) {
	s.members.each(func(m *member) { cb(m.fc) })
}
