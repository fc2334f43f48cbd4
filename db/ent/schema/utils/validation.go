package utils

import "fmt"

// EnumValidator builds an ent field validator that accepts exactly the given
// values. The schemas use it for status-like string columns whose enums live
// in the constants package rather than in the database.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not one of %v", s, allowed)
	}
}
