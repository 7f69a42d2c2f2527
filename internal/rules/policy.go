package rules

import (
	"fmt"
	"slices"
)

// IntPolicy decides what happens to integer inputs that are not numbers.
type IntPolicy int

const (
	// IntStrict fails the build with ErrInvalidInteger.
	IntStrict IntPolicy = iota
	// IntLenient keeps a leading signed number and otherwise yields 0
	// ("15s" → 15, "abc" → 0).
	IntLenient
)

func (p IntPolicy) String() string {
	switch p {
	case IntStrict:
		return "strict"
	case IntLenient:
		return "lenient"
	default:
		return fmt.Sprintf("IntPolicy(%d)", int(p))
	}
}

// ParseIntPolicy converts "strict" or "lenient" to an IntPolicy. The empty
// string selects IntStrict.
func ParseIntPolicy(s string) (IntPolicy, error) {
	switch s {
	case "", "strict":
		return IntStrict, nil
	case "lenient":
		return IntLenient, nil
	default:
		return IntStrict, fmt.Errorf("unknown integer policy %q", s)
	}
}

// TruthyTokens are the exact raw values a flag input treats as true.
var TruthyTokens = []string{"1", "true", "yes", "on"}

func isTruthy(raw string) bool {
	return slices.Contains(TruthyTokens, raw)
}
