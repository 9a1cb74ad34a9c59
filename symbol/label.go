// Package symbol provides the two comparable-by-value identifier types
// shared by every other package in the module: Label (attribute names,
// scope-frame links, pattern reference names) and Tag (named-class
// identity). Neither type depends on any other package in the module,
// matching the foundation-tier convention of location/diag/immutable.
package symbol

import "golang.org/x/text/unicode/norm"

// Label identifies an attribute, a scope-frame link, or a pattern
// reference name. Labels compare equal by value, not identity.
//
// The underlying string is NFC-normalized at construction so that two
// labels written with different Unicode representations of the same
// text (e.g. combining-mark sequences vs. precomposed characters)
// compare equal, the same concern location.CanonicalPath guards against
// for file paths.
type Label struct {
	id string
}

// NewLabel constructs a Label from raw text.
func NewLabel(id string) Label {
	return Label{id: norm.NFC.String(id)}
}

// String returns the label's textual form.
func (l Label) String() string {
	return l.id
}

// IsZero reports whether l is the zero Label.
func (l Label) IsZero() bool {
	return l.id == ""
}

// ScopeLabel is the distinguished label ("$") chaining scope frames to
// their enclosing frame (spec.md §3, "Scope frame").
var ScopeLabel = NewLabel("$")

// Tag is the symbolic identity of a named class. Two classes sharing a
// named Tag are the same class regardless of how their ancestor sets
// were computed (spec.md §3, Class "Equality").
type Tag struct {
	id string
}

// NewTag constructs a Tag from raw text. A Tag whose text begins with
// "*" is anonymous by convention (IsAnonymous reports true); named
// classes never choose such tags themselves — only the library's own
// Cla.inter/Cla.union anonymous-class machinery does.
func NewTag(id string) Tag {
	return Tag{id: norm.NFC.String(id)}
}

// String returns the tag's textual form.
func (t Tag) String() string {
	return t.id
}

// IsZero reports whether t is the zero Tag (absent tag, i.e. anonymous).
func (t Tag) IsZero() bool {
	return t.id == ""
}

// IsAnonymous reports whether t denotes an anonymous class: either the
// zero Tag (no tag at all) or a tag whose first rune is "*", the
// convention the original implementation uses for synthesized
// intersection/union classes (subtype.py, is_anon_tag).
func (t Tag) IsAnonymous() bool {
	return t.id == "" || t.id[0] == '*'
}
