// Package program implements the instruction set and parser for Unlimited
// Register Machine (URM) programs.
//
// A URM program is a sequence of calls, one of z(r), s(r), t(src, dst) or
// j(a, b, line), plus an optional p(n1, n2, ...) declaring the initial
// register contents. Registers are numbered from 1 in the source text and
// from 0 internally. Comments run from // to the end of the line.
//
// The parser is a single pass, two state scanner. It validates operands as
// they complete and stops at the first diagnostic.
package program
