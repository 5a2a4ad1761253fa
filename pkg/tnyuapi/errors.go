package tnyuapi

import "fmt"

// InvalidAttributeError is returned when results are sorted by an attribute
// the records do not have
type InvalidAttributeError struct {
	Kind  Kind
	Field string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("cannot sort %s by '%s': no such attribute",
		e.Kind, e.Field)
}

type UnknownAttributeError struct {
	Kind  Kind
	Id    string
	Field string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("%s object has no attribute '%s'",
		e.Kind.Singular(), e.Field)
}

type NotFoundError struct {
	Kind Kind
	Id   string
	// Set when a relationship that must point somewhere is null
	Reference bool
	Err       error
}

func (e *NotFoundError) Error() string {
	if e.Reference {
		return fmt.Sprintf("no %s referenced", e.Kind.Singular())
	}
	return fmt.Sprintf("%s '%s' not found", e.Kind.Singular(), e.Id)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// TransportError wraps any failure of the underlying HTTP exchange:
// connection errors, unexpected statuses and undecodable bodies
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RelationshipError is returned when a relationship holds a different kind of
// reference than its accessor expects, eg a list where one record is expected
type RelationshipError struct {
	Kind Kind
	Id   string
	Name string
}

func (e *RelationshipError) Error() string {
	return fmt.Sprintf("%s of %s '%s' is not a single reference",
		e.Name, e.Kind.Singular(), e.Id)
}

/*
AuthenticationError is meant for protected resources accessed without a valid
API key. Nothing in this package returns it yet: requests are always sent with
whatever key the Client was built with and a rejection surfaces as a
TransportError.
*/
type AuthenticationError struct {
	Kind Kind
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication required to access %s", e.Kind)
}

type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown resource kind '%s', expected one of %s",
		e.Name, kindNames())
}
