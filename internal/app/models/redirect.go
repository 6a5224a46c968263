package models

// Redirect is a non-exceptional authorization outcome. Guards return it
// instead of an error because being sent to a login or dashboard page is
// a normal branch of the flow, not a fault. A nil *Redirect means the
// caller proceeds.
type Redirect struct {
	Target string
}
