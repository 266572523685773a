// Package console implements the interactive prompts of the plain CLI:
// the pre-upload confirmation gate and the first-run token prompt.
//
// Both functions take an explicit reader and writer instead of touching
// os.Stdin directly, so tests can drive them headlessly:
//
//	ok, err := console.Confirm(os.Stdin, os.Stdout, "Do you want to continue?")
//
// The confirmation default is no: only an explicit y/yes proceeds.
package console
