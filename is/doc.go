// Package is provides predicates over dynamic values.
//
// Every predicate is pure and never fails: a value of the wrong kind is
// simply not a match. Numeric text is parsed with value.ParseNumber and
// parse failures count as a mismatch.
//
//	is.PlainObject(v)
//	is.Numeral(value.String("42"))   // true
//	is.Substring("lo", value.String("hello"), -3)
//
// Lookup and Names expose the single-argument predicates by name.
package is
