package parser

import (
	"errors"
	"fmt"
)

// Kind identifies a structural schema violation.
type Kind int

const (
	KindMultiplePayload Kind = iota + 1
	KindMissingLength
	KindVectorOfVector
	KindMissingConstructWith
	KindEndiannessRequired
	KindInvalidLengthLiteral
	KindNonIntegerLengthToken
	KindUnsupportedSubByteVectorElement
	KindUnnamedField
	KindUnnamedType
	KindUnknownAnnotation
	KindDuplicateField
	KindEmptyPacket
	KindInvalidConstructArg
	KindUnsupportedWidth
	KindForwardLengthReference
	KindUnbalancedLength
	KindMisalignedVector
	KindUnknownPacketType
	KindHostOrderUnset
	KindUnresolvedExternal
	KindNameCollision
	KindInvalidName
)

var kindNames = map[Kind]string{
	KindMultiplePayload:                 "multiple payload fields",
	KindMissingLength:                   "variable length field must declare a length unless it is the last field or the payload",
	KindVectorOfVector:                  "vectors may not contain vectors",
	KindMissingConstructWith:            "non-primitive field types must declare construct_with",
	KindEndiannessRequired:              "endianness must be specified for types wider than 8 bits",
	KindInvalidLengthLiteral:            "length literal is not an unsigned integer",
	KindNonIntegerLengthToken:           "length expression token is not integer valued",
	KindUnsupportedSubByteVectorElement: "vector element width must be a multiple of 8 bits",
	KindUnnamedField:                    "all fields in a packet must be named",
	KindUnnamedType:                     "field has no type",
	KindUnknownAnnotation:               "unknown annotation",
	KindDuplicateField:                  "duplicate field name",
	KindEmptyPacket:                     "packet has no fields",
	KindInvalidConstructArg:             "construct_with arguments must be primitives",
	KindUnsupportedWidth:                "primitive width must be between 1 and 64 bits",
	KindForwardLengthReference:          "length expression may only reference earlier fields",
	KindUnbalancedLength:                "unbalanced parentheses in length expression",
	KindMisalignedVector:                "variable length field must start on a byte boundary",
	KindUnknownPacketType:               "vector element type is not a packet of this schema",
	KindHostOrderUnset:                  "host endianness used but no host byte order configured",
	KindUnresolvedExternal:              "length expression references an unbound external",
	KindNameCollision:                   "generated identifier is used twice",
	KindInvalidName:                     "generated type name is not a Go identifier",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown schema error"
}

// Sentinels for errors.Is matching on the error kind.
var (
	ErrMultiplePayload                 = &Error{Kind: KindMultiplePayload}
	ErrMissingLength                   = &Error{Kind: KindMissingLength}
	ErrVectorOfVector                  = &Error{Kind: KindVectorOfVector}
	ErrMissingConstructWith            = &Error{Kind: KindMissingConstructWith}
	ErrEndiannessRequired              = &Error{Kind: KindEndiannessRequired}
	ErrInvalidLengthLiteral            = &Error{Kind: KindInvalidLengthLiteral}
	ErrNonIntegerLengthToken           = &Error{Kind: KindNonIntegerLengthToken}
	ErrUnsupportedSubByteVectorElement = &Error{Kind: KindUnsupportedSubByteVectorElement}
	ErrUnnamedField                    = &Error{Kind: KindUnnamedField}
	ErrUnnamedType                     = &Error{Kind: KindUnnamedType}
	ErrUnknownAnnotation               = &Error{Kind: KindUnknownAnnotation}
	ErrDuplicateField                  = &Error{Kind: KindDuplicateField}
	ErrEmptyPacket                     = &Error{Kind: KindEmptyPacket}
	ErrInvalidConstructArg             = &Error{Kind: KindInvalidConstructArg}
	ErrUnsupportedWidth                = &Error{Kind: KindUnsupportedWidth}
	ErrForwardLengthReference          = &Error{Kind: KindForwardLengthReference}
	ErrUnbalancedLength                = &Error{Kind: KindUnbalancedLength}
	ErrMisalignedVector                = &Error{Kind: KindMisalignedVector}
	ErrUnknownPacketType               = &Error{Kind: KindUnknownPacketType}
	ErrHostOrderUnset                  = &Error{Kind: KindHostOrderUnset}
	ErrUnresolvedExternal              = &Error{Kind: KindUnresolvedExternal}
	ErrNameCollision                   = &Error{Kind: KindNameCollision}
	ErrInvalidName                     = &Error{Kind: KindInvalidName}
)

// Error is a schema compilation failure. It always names the offending
// field; MultiplePayload also names the first payload field in Other.
type Error struct {
	Kind   Kind
	Packet string
	Field  string
	Index  int
	Other  string
	// OtherIndex is the position of Other; only meaningful when Other is set.
	OtherIndex int
	Detail     string
}

func (e *Error) Error() string {
	msg := "schema"
	if e.Packet != "" {
		msg += ": packet " + e.Packet
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %s (#%d)", e.Field, e.Index)
	} else if e.Index > 0 || e.Kind == KindUnnamedField {
		msg += fmt.Sprintf(": field #%d", e.Index)
	}
	if e.Other != "" {
		msg += fmt.Sprintf(" (conflicts with %s (#%d))", e.Other, e.OtherIndex)
	}
	msg += ": " + e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is matches any *Error of the same kind, so the sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func fieldError(kind Kind, pkt string, f *Field, detail string) *Error {
	return &Error{Kind: kind, Packet: pkt, Field: f.Name, Index: f.Index, Detail: detail}
}

// FieldError builds an error for a field of pkt. Later pipeline stages use it
// so every compile failure has the same shape.
func FieldError(kind Kind, pkt string, f *Field, format string, args ...any) *Error {
	return fieldError(kind, pkt, f, fmt.Sprintf(format, args...))
}
