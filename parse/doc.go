// Package parse converts ASCII digit bytes into fixed width integers of any
// width in radix 2 through 36.
//
// The unsigned parser accumulates a magnitude with an overflow check before
// every multiply and add. The signed parser strips an optional '+' or '-',
// runs the unsigned parser at the unsigned width of the target type, and
// fits the magnitude into the signed range.
//
// The plain forms report overflow as PosOverflow or NegOverflow. The
// Saturating forms clamp to the target type's bounds instead. Both stop
// scanning at the point of overflow, so an invalid byte after that point is
// never reported. Empty input and invalid digits are errors under both.
//
// A radix outside [2, 36] is a programming error and panics.
package parse
