package lattice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wke/ogpm/immutable"
	"github.com/wke/ogpm/symbol"
)

// Class (spec.md §3, "Class (Cla)") carries an optional Tag, the
// transitive closure of its ancestor Tags, and its attribute schema.
//
// Grounded on original_source/pyogpm/subtype.py's Cla, restructured so
// that the "NO_TYPE"/"NULL_TYPE"/value-type distinguished classes carry
// explicit flags (null, value) instead of relying on Python object
// identity against module globals — the flags let Subtype/ClassOf/TyInf
// operate without a Registry in scope, matching the teacher's preference
// for self-contained value types over singleton lookups.
type Class struct {
	tag   symbol.Tag
	tags  map[symbol.Tag]struct{}
	attrs map[symbol.Label]Type

	null  bool // true only for a Registry's NullType
	value bool // true only for a Registry's Int/Str/BoolType
}

// LazyTag is a transient attribute-type placeholder used while building a
// self-referential class body (spec.md §9, "Cyclic pattern graphs" /
// "lazy-type token"): the class may declare an attribute typed after its
// own not-yet-complete Tag. (*Class).ResolveLazy replaces every LazyTag
// in the receiver's attribute table with the registered class for that
// Tag.
type LazyTag struct {
	Tag symbol.Tag
}

func (*LazyTag) isLatticeType() {}

// NewClass constructs a class. If tag is non-zero, it is registered in
// reg (DuplicateClass if already taken). The class's ancestor Tag set is
// the union of every super's ancestor set plus its own tag (unless tag
// is anonymous, spec.md §3). Its attribute table starts from attrs and is
// extended with each super's attributes; an attribute inherited under two
// different types is AttrTypeConflict.
func NewClass(reg *Registry, tag symbol.Tag, supers []*Class, attrs map[symbol.Label]Type) (*Class, error) {
	c := &Class{
		tag:   tag,
		tags:  make(map[symbol.Tag]struct{}),
		attrs: make(map[symbol.Label]Type, len(attrs)),
	}
	for la, ty := range attrs {
		c.attrs[la] = ty
	}
	if !tag.IsAnonymous() {
		c.tags[tag] = struct{}{}
	}

	if !tag.IsZero() {
		if reg == nil {
			return nil, &LatticeError{Kind: DuplicateClass, Tag: tag, Message: "lattice: cannot register class without a registry"}
		}
		if _, ok := reg.byTag[tag]; ok {
			return nil, &LatticeError{Kind: DuplicateClass, Tag: tag, Message: fmt.Sprintf("lattice: class %q already registered", tag)}
		}
	}

	for _, su := range supers {
		for t := range su.tags {
			c.tags[t] = struct{}{}
		}
		for la, ty := range su.attrs {
			if existing, ok := c.attrs[la]; ok {
				if !typesEqual(existing, ty) {
					return nil, &LatticeError{Kind: AttrTypeConflict, Label: la, Message: fmt.Sprintf("lattice: attribute %q inherited with conflicting types", la)}
				}
				continue
			}
			c.attrs[la] = ty
		}
	}

	if !tag.IsZero() {
		reg.byTag[tag] = c
	}

	return c, nil
}

// newRawClass builds an anonymous class whose tags/attrs are supplied
// directly, bypassing the supers-merge in NewClass. Used by Union, whose
// ancestor-tag and attribute tables are already the intersection across
// its operands (subtype.py, Cla.union: `Cla(None, [], attrs, tags)`).
func newRawClass(tags map[symbol.Tag]struct{}, attrs map[symbol.Label]Type) *Class {
	return &Class{tags: tags, attrs: attrs}
}

// Tag returns the class's Tag, or the zero Tag if anonymous.
func (c *Class) Tag() symbol.Tag {
	return c.tag
}

// IsAnonymous reports whether the class has no named Tag.
func (c *Class) IsAnonymous() bool {
	return c.tag.IsAnonymous()
}

// IsNullType reports whether c is a Registry's distinguished NullType.
func (c *Class) IsNullType() bool {
	return c != nil && c.null
}

// IsValueType reports whether c is one of a Registry's distinguished
// INT_TYPE, STR_TYPE, BOOL_TYPE primitive value classes.
func (c *Class) IsValueType() bool {
	return c != nil && c.value
}

// AncestorTags returns the transitive closure of ancestor tags, sorted
// for deterministic iteration.
func (c *Class) AncestorTags() []symbol.Tag {
	out := make([]symbol.Tag, 0, len(c.tags))
	for t := range c.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// AttrType returns the declared type of attribute la and true if la is
// part of the class's (closed) attribute schema.
func (c *Class) AttrType(la symbol.Label) (Type, bool) {
	t, ok := c.attrs[la]
	return t, ok
}

// AttrLabels returns the class's attribute labels, sorted for
// deterministic iteration.
func (c *Class) AttrLabels() []symbol.Label {
	out := make([]symbol.Label, 0, len(c.attrs))
	for la := range c.attrs {
		out = append(out, la)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// HasAttr reports whether la is in the class's attribute schema.
func (c *Class) HasAttr(la symbol.Label) bool {
	_, ok := c.attrs[la]
	return ok
}

// ResolveLazy replaces every LazyTag in the receiver's attribute table
// with the class registered under that tag (spec.md §9, "a lazy-type
// token... is resolved after the class body is complete by a single
// post-pass"). Returns the receiver for chaining, matching
// subtype.py's Cla.resolve_lazy.
func (c *Class) ResolveLazy(reg *Registry) (*Class, error) {
	for la, ty := range c.attrs {
		lz, ok := ty.(*LazyTag)
		if !ok {
			continue
		}
		resolved, ok := reg.byTag[lz.Tag]
		if !ok {
			return nil, &LatticeError{Kind: UndefinedClass, Tag: lz.Tag, Label: la}
		}
		c.attrs[la] = resolved
	}
	return c, nil
}

// Equal reports class equality (spec.md §3, Class "Equality"): by named
// Tag if both classes are named, else by equal ancestor-tag sets.
func (c *Class) Equal(y *Class) bool {
	if c == y {
		return true
	}
	if y == nil {
		return false
	}
	if !c.tag.IsAnonymous() && c.tag == y.tag {
		return true
	}
	return tagSetEqual(c.tags, y.tags)
}

// LE reports the subtype relation between two classes (spec.md §3,
// "Subtype rule"): x <= y iff identical, sharing a named tag, or
// x's ancestor set is a superset of y's.
func (c *Class) LE(y *Class) bool {
	if c == y {
		return true
	}
	if !c.tag.IsAnonymous() && c.tag == y.tag {
		return true
	}
	return tagSetSupersetOrEqual(c.tags, y.tags)
}

// Inter synthesizes an anonymous class whose ancestor set is the union
// of classes' ancestor sets and whose attributes are the union of their
// attribute schemas, rejecting attribute clashes with differing types
// (spec.md §3, "inter(cs)"). Grounded on subtype.py's `Cla.inter`, which
// is exactly NewClass(None, cs) — an anonymous class with cs as supers.
func Inter(classes []*Class) (*Class, error) {
	return NewClass(nil, symbol.Tag{}, classes, nil)
}

// Union synthesizes an anonymous class whose ancestor set is the
// intersection of classes' ancestor sets and whose attributes are the
// intersection of (label, type) pairs present identically in every class
// (spec.md §3, "union(cs)"). Grounded on subtype.py's `Cla.union`.
func Union(classes []*Class) (*Class, error) {
	if len(classes) == 0 {
		return newRawClass(map[symbol.Tag]struct{}{}, map[symbol.Label]Type{}), nil
	}

	tags := make(map[symbol.Tag]struct{})
	for t := range classes[0].tags {
		inAll := true
		for _, cla := range classes[1:] {
			if _, ok := cla.tags[t]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			tags[t] = struct{}{}
		}
	}

	attrs := make(map[symbol.Label]Type)
	for la, ty := range classes[0].attrs {
		inAll := true
		for _, cla := range classes[1:] {
			oty, ok := cla.attrs[la]
			if !ok || !typesEqual(ty, oty) {
				inAll = false
				break
			}
		}
		if inAll {
			attrs[la] = ty
		}
	}

	return newRawClass(tags, attrs), nil
}

// DebugString renders the class the way subtype.py's Cla.to_pp does,
// for use in tests and trace logs only (spec.md Non-goals exclude
// pretty-printing as a shipped feature, not an internal debug aid).
func (c *Class) DebugString() string {
	var b strings.Builder
	if c.tag.IsZero() {
		b.WriteString("Cla{tag: <anon>")
	} else {
		fmt.Fprintf(&b, "Cla{tag: %s", c.tag)
	}
	b.WriteString(", supers: [")
	tags := c.AncestorTags()
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}
	b.WriteString(strings.Join(names, ", "))
	b.WriteString("], attrs: {")
	labels := c.AttrLabels()
	parts := make([]string, len(labels))
	for i, la := range labels {
		parts[i] = fmt.Sprintf("%s: %s", la, describeType(c.attrs[la]))
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString("}}")
	return b.String()
}

// Describe returns an immutable snapshot of the class's attribute
// schema as label -> type-description string, for tooling that needs a
// read-only view without exposing the mutable internal map (mirrors
// schema.Type exposing immutable.Properties rather than a raw map).
func (c *Class) Describe() immutable.Map[string] {
	m := make(map[string]any, len(c.attrs))
	for la, ty := range c.attrs {
		m[la.String()] = describeType(ty)
	}
	return immutable.WrapMapClone(m)
}

func describeType(t Type) string {
	switch v := t.(type) {
	case *Class:
		if v.tag.IsZero() {
			return "<anon>"
		}
		return v.tag.String()
	case *ValueSet:
		return v.DebugString()
	case *LazyTag:
		return "lazy:" + v.Tag.String()
	default:
		return "<unknown>"
	}
}

func typesEqual(a, b Type) bool {
	switch av := a.(type) {
	case *Class:
		bv, ok := b.(*Class)
		return ok && av.Equal(bv)
	case *ValueSet:
		bv, ok := b.(*ValueSet)
		return ok && av.Equal(bv)
	default:
		return false
	}
}

func tagSetEqual(a, b map[symbol.Tag]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	return tagSetSupersetOrEqual(a, b)
}

// tagSetSupersetOrEqual reports whether a ⊇ b.
func tagSetSupersetOrEqual(a, b map[symbol.Tag]struct{}) bool {
	for t := range b {
		if _, ok := a[t]; !ok {
			return false
		}
	}
	return true
}
