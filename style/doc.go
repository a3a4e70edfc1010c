// Package style defines the typed, CSS-like style model consumed by the
// renderer.
//
// A Style is a patch: every field is an Optional that is either unset or
// holds a value. Several patches (preset, derived, inline) are folded with
// Merge, where a later set field always wins. Resolve then combines the
// merged patch with the parent's InheritedStyle: inheritable properties
// fall back to the parent, the rest to their initial values, so an
// InheritedStyle never has an unset field.
//
// Values are already typed. The Parse* helpers and the JSON/text
// unmarshalers exist for document loading and the utility-class layer;
// they accept single values, not full CSS grammar.
package style
