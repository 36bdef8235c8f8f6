// Package charset models the four character classes a derived password can
// draw from: lowercase, uppercase, numbers and symbols.
//
// A Charset is a 4-bit flag set. Each flag is bound to a fixed, publicly known
// alphabet, and the enumeration order (lowercase, uppercase, numbers, symbols)
// is significant: it determines the order in which mandatory characters are
// sampled during password assembly, so it is part of the derivation format and
// must never change.
//
// The single-byte bitmask encoding (1=lowercase, 2=uppercase, 4=number,
// 8=symbol) is the canonical serialized form, round-tripped via Byte and
// FromByte.
package charset
