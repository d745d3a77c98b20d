// Package analysis accounts ELF segments against the program and dynamic
// memory budgets.
//
// Classification is intentionally narrow: a segment counts as program memory
// only when its flags are exactly R+X, and as dynamic memory only when they
// are exactly R+W. Every other combination (read-only data, RWX, no flags)
// counts against neither budget. This mirrors what avr-size style tools have
// always reported for Arduino sketches and must not be widened.
package analysis
