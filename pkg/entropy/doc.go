// Package entropy turns a stretched key into a stream of uniformly
// distributed indices.
//
// A Pool wraps the PBKDF2 output as one unbounded-precision non-negative
// integer. Each Consume call performs a Euclidean division by the requested
// range: the remainder is the sampled index and the quotient becomes the
// remaining entropy. Sampling this way keeps every index exactly uniform over
// its range, which a modulo over a fixed-width integer would not.
//
// The package also builds the canonical derivation salt (site ++ login ++
// hex counter) consumed by the password assembler.
package entropy
