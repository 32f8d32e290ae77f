// Package calculator implements the tip form's state machine.
//
// Raw field text goes in, validated numbers and display strings come
// out. Nothing in this package returns an error for bad input: every
// field is coerced to a safe value and problems are reported through
// the validation flags on Results.
//
// Layout:
//
//	coerce.go  — text to number coercion, people-count normalization
//	modes.go   — presets and rounding modes
//	derive.go  — the pure Derive function and its Results
//	form.go    — Form, the stateful wrapper the UI drives
package calculator
