package kwargs

import "fmt"

// Key is a symbolic keyword-argument name, as supplied by the host.
type Key string

// Value is an opaque host value carried through extraction untouched.
type Value = any

type unspecifiedValue struct{}

func (unspecifiedValue) String() string { return "unspecified" }

// Unspecified marks an output slot whose optional keyword was not supplied.
// It is distinct from every legitimate value, including an explicit nil.
var Unspecified Value = unspecifiedValue{}

// IsUnspecified reports whether v is the Unspecified sentinel.
func IsUnspecified(v Value) bool {
	_, ok := v.(unspecifiedValue)
	return ok
}

// Schema declares the keyword names a call expects: a required prefix, an
// optional suffix, and whether keys outside the schema may remain in the
// mapping unconsumed.
type Schema struct {
	Required  []Key
	Optional  []Key
	AllowRest bool
}

// Len returns the number of declared keys, required plus optional.
func (s Schema) Len() int { return len(s.Required) + len(s.Optional) }

// Keys returns all declared keys, required first, in declaration order.
func (s Schema) Keys() []Key {
	keys := make([]Key, 0, s.Len())
	keys = append(keys, s.Required...)
	keys = append(keys, s.Optional...)
	return keys
}

// check panics on duplicate declared keys. A duplicate is a programming
// error in the declaring function, not a condition its caller can recover
// from.
func (s Schema) check() {
	seen := make(map[Key]struct{}, s.Len())
	for _, k := range s.Keys() {
		if _, dup := seen[k]; dup {
			panic(fmt.Sprintf("kwargs: duplicate key %q in schema", k))
		}
		seen[k] = struct{}{}
	}
}
