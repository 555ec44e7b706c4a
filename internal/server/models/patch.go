package models

// Patch is a tri-state optional value for partial updates: absent (leave
// the field unchanged), cleared (set the field to nothing) or set.
type Patch[T any] struct {
	present bool
	value   *T
}

// Absent leaves the field unchanged.
func Absent[T any]() Patch[T] { return Patch[T]{} }

// Clear removes the field's value.
func Clear[T any]() Patch[T] { return Patch[T]{present: true} }

// Set replaces the field's value with v.
func Set[T any](v T) Patch[T] { return Patch[T]{present: true, value: &v} }

// Present reports whether the caller sent the field at all.
func (p Patch[T]) Present() bool { return p.present }

// Value returns the new value, or nil when the patch clears the field.
func (p Patch[T]) Value() *T { return p.value }

// Apply returns the field value after the patch is applied to current.
func (p Patch[T]) Apply(current *T) *T {
	if !p.present {
		return current
	}
	return p.value
}

// StringPatch normalises a string patch so that an empty string clears the
// field, the same as null.
func StringPatch(p Patch[string]) Patch[string] {
	if p.present && p.value != nil && *p.value == "" {
		return Clear[string]()
	}
	return p
}

// CredentialPatch is a partial update of a Credential. Secret is the new
// plaintext and, when set, rotates the current cipher text into History.
type CredentialPatch struct {
	Title      Patch[string]
	LoginName  Patch[string]
	LoginEmail Patch[string]
	URL        Patch[string]
	Notes      Patch[string]
	Secret     Patch[string]
	IsFavorite Patch[bool]
	Category   Patch[Category]
}
