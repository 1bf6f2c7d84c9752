// Package value implements a dynamic value model with explicit kind tags
// and parent-chain property lookup, plus introspection over it.
//
// # Data Model
//
// Primitives: undefined, null, boolean, number, bigint, string, symbol
// Objects:    an ordered own-property table, a class tag and a parent link
//
// Every property carries its provenance (own, found by walking Parent)
// and visibility (enumerable or hidden). Accessor properties are Go
// funcs invoked with the receiver the read started from.
//
// A nil *Value is undefined. Constructor helpers mirror the usual
// literals:
//
//	o := value.NewObject()
//	o.Set("a", value.Int(1))
//	arr := value.NewArray(value.String("x"), value.Null())
//
// # Chains
//
// Ordinary objects end at ObjectPrototype, the base object. Functions
// declared with NewFunction or NewClass carry a hidden "prototype" object
// that Construct links new instances under. Inherits relinks two
// constructor functions the classic way. Intrinsics are frozen, so the
// base object's names never change at run time.
//
// # Introspection
//
// Keys, Values and Entries take KeyOpts:
//
//	value.Keys(v)                                                    // own enumerable
//	value.KeysWithOpts(v, value.KeyOpts{EnumerableOnly: true,
//	    FollowPrototypeChain: true})                                 // for-in order
//	value.KeysWithOpts(v, value.KeyOpts{All: true})                  // everything but base-object names
//
// # Bridges
//
// FromJSON and FromYAML keep mapping order; ToJSON and Format render
// values back out.
package value
