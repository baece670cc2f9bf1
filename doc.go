// Package bigint implements arbitrary-precision signed integers over a
// sign+magnitude representation: 32-bit little-endian magnitude words, a
// cached bit length, and a sign flag.
//
// Ordinary operations treat values as immutable and always allocate fresh
// results, so any value can be read concurrently without synchronization.
// Bitwise operators behave as if values were infinite-precision two's
// complement, emulated per word with borrow propagation rather than by
// materializing a sign-extended buffer. One consequence is pinned down
// explicitly: right-shifting a negative value truncates its magnitude
// toward zero instead of flooring.
//
// The Unsafe* methods mutate a value in place for exclusive-owner
// accumulator loops. They clone buffers known to be shared (package
// constants, Abs/Neg views) before writing, but cannot detect aliasing
// introduced by plain struct copies; mutating one such copy corrupts the
// others. Use Exclusive to break the aliasing first.
//
// Parsing and formatting take their culture data (symbols, sign strings,
// digit grouping, layout patterns) from a numstyle.Style supplied per
// call. Persistence writes a fixed binary layout through a binio.Writer:
// a packed sign+bit-length word followed by the magnitude words.
//
// Every error wraps one of ErrInvalidInput, ErrFormat, ErrOverflow, or
// ErrDivideByZero. All failures are detected synchronously and surfaced
// immediately; the truncating conversions are the single documented lossy
// path that does not error.
package bigint
