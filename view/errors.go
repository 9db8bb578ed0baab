package view

import (
	"errors"

	"github.com/alexhholmes/pktlayout/internal/parser"
)

// CompileError is returned for every structural schema violation.
type CompileError = parser.Error

// Compile error kinds, for use with errors.Is.
var (
	ErrMultiplePayload                 = parser.ErrMultiplePayload
	ErrMissingLength                   = parser.ErrMissingLength
	ErrVectorOfVector                  = parser.ErrVectorOfVector
	ErrMissingConstructWith            = parser.ErrMissingConstructWith
	ErrEndiannessRequired              = parser.ErrEndiannessRequired
	ErrInvalidLengthLiteral            = parser.ErrInvalidLengthLiteral
	ErrNonIntegerLengthToken           = parser.ErrNonIntegerLengthToken
	ErrUnsupportedSubByteVectorElement = parser.ErrUnsupportedSubByteVectorElement
	ErrUnnamedField                    = parser.ErrUnnamedField
	ErrUnnamedType                     = parser.ErrUnnamedType
	ErrUnknownAnnotation               = parser.ErrUnknownAnnotation
	ErrDuplicateField                  = parser.ErrDuplicateField
	ErrEmptyPacket                     = parser.ErrEmptyPacket
	ErrInvalidConstructArg             = parser.ErrInvalidConstructArg
	ErrUnsupportedWidth                = parser.ErrUnsupportedWidth
	ErrForwardLengthReference          = parser.ErrForwardLengthReference
	ErrUnbalancedLength                = parser.ErrUnbalancedLength
	ErrMisalignedVector                = parser.ErrMisalignedVector
	ErrUnknownPacketType               = parser.ErrUnknownPacketType
	ErrHostOrderUnset                  = parser.ErrHostOrderUnset
	ErrUnresolvedExternal              = parser.ErrUnresolvedExternal
	ErrNameCollision                   = parser.ErrNameCollision
	ErrInvalidName                     = parser.ErrInvalidName
)

// Access errors.
var (
	ErrNoField      = errors.New("no such field")
	ErrFieldKind    = errors.New("field kind does not support this access")
	ErrValueType    = errors.New("value has the wrong type for field")
	ErrUnknownKind  = errors.New("no such packet kind")
	ErrRecordTarget = errors.New("record belongs to another packet kind")
)
