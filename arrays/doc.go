// Package arrays produces the initial sequence handed to the sorting engines.
//
// Two sources are supported:
//
//	GenerateRandom(size, min, max, opts...) — uniform random values, IDs "element-<i>"
//	ParseInput(text, opts...)               — comma-separated user input, rescaled for display
//
// Parsed input is linearly rescaled into a display range (default [20, 400])
// so bars have a usable height, while Element.OriginalValue keeps the number
// the user typed. Originals recovers that sequence exactly.
//
// Limits:
//   - generation accepts 1..MaxSize elements;
//   - parsing accepts 2..MaxLen elements (configurable with WithMaxLen).
//
// Errors:
//   - ErrEmptyInput   — blank text.
//   - ErrParse        — a token is not a finite number; the *ParseError names it.
//   - ErrInvalidSize  — element count outside the accepted window.
//   - ErrInvalidRange — min > max, or an empty integer range.
//
// Determinism: pass WithSeed or WithRand to GenerateRandom to lock outcomes.
package arrays
