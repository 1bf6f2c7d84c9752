package value

import "errors"

var (
	ErrNotObject       = errors.New("value: not an object")
	ErrNotFunction     = errors.New("value: not a function")
	ErrNotConstructor  = errors.New("value: not a constructor")
	ErrFrozen          = errors.New("value: object is frozen")
	ErrCyclicProto     = errors.New("value: cyclic prototype chain")
	ErrReadOnly        = errors.New("value: property is read-only")
	ErrNotNumeric      = errors.New("value: not a numeric string")
	ErrNotSerializable = errors.New("value: value is not serializable")
	ErrCircular        = errors.New("value: circular structure")
)
