// Package machine implements the execution engine for URM programs.
//
// The machine consists of a fixed size register file of arbitrary precision
// non-negative integers, a program counter, and an iteration counter bounded
// by an optional limit. A negative limit runs the program until it halts.
package machine
