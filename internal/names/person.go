package names

import "strings"

// PersonName holds a first and last name plus an optional middle name.
// The middle name is presence-based: a middle name that was supplied is
// present even when it is the empty string. Values are immutable once
// constructed.
type PersonName struct {
	first  string
	last   string
	middle *string
}

// Option configures optional PersonName fields.
type Option func(*PersonName)

// WithMiddle supplies a middle name. Supplying the empty string still
// marks the middle name as present.
func WithMiddle(middle string) Option {
	return func(p *PersonName) {
		p.middle = &middle
	}
}

// NewPersonName builds a PersonName from the required first and last
// parts plus any options.
func NewPersonName(first, last string, opts ...Option) PersonName {
	p := PersonName{first: first, last: last}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// First returns the first name.
func (p PersonName) First() string { return p.first }

// Last returns the last name.
func (p PersonName) Last() string { return p.last }

// Middle returns the middle name and whether one was supplied.
func (p PersonName) Middle() (string, bool) {
	if p.middle == nil {
		return "", false
	}
	return *p.middle, true
}

// HasMiddleName reports whether a middle name was supplied. This checks
// presence, not content: WithMiddle("") counts as having a middle name.
func (p PersonName) HasMiddleName() bool {
	return p.middle != nil
}

// Full joins the present parts with single spaces.
func (p PersonName) Full() string {
	parts := []string{p.first}
	if p.middle != nil && *p.middle != "" {
		parts = append(parts, *p.middle)
	}
	parts = append(parts, p.last)
	return strings.Join(parts, " ")
}
