package account

import (
	"fmt"
	"regexp"
	"regexp/syntax"
)

// DefaultPinPattern requires exactly four digits.
const DefaultPinPattern = `\d{4}`

// PinPolicy checks PIN format. The pattern must match the whole PIN.
type PinPolicy struct {
	re *regexp.Regexp
}

// NewPinPolicy compiles pattern into a policy. An empty pattern selects DefaultPinPattern.
func NewPinPolicy(pattern string) (PinPolicy, error) {
	if pattern == "" {
		pattern = DefaultPinPattern
	}
	// Parsed on its own first so a pattern cannot close the anchoring group.
	if _, err := syntax.Parse(pattern, syntax.Perl); err != nil {
		return PinPolicy{}, fmt.Errorf("invalid pin pattern %q: %w", pattern, err)
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return PinPolicy{}, fmt.Errorf("invalid pin pattern %q: %w", pattern, err)
	}
	return PinPolicy{re: re}, nil
}

// DefaultPinPolicy returns the policy for DefaultPinPattern.
func DefaultPinPolicy() PinPolicy {
	p, _ := NewPinPolicy(DefaultPinPattern)
	return p
}

// Validate returns ErrInvalidPin when pin does not match the policy.
func (p PinPolicy) Validate(pin string) error {
	re := p.re
	if re == nil {
		re = DefaultPinPolicy().re
	}
	if !re.MatchString(pin) {
		return ErrInvalidPin
	}
	return nil
}

// String returns the anchored expression used for matching.
func (p PinPolicy) String() string {
	if p.re == nil {
		return DefaultPinPolicy().String()
	}
	return p.re.String()
}
