// Package viz is the terminal front-end for exploring the methods.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: parameter form, plot area and error summary bound to a
//     [paramstore.Store]
//   - [Plot]: asciigraph rendering of one result view, also used by the CLI
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	j/k     - Select parameter
//	enter   - Edit the selected value (enter again to apply, esc to cancel)
//	h/l     - Nudge the selected value down/up
//	v, tab  - Cycle views: solutions, global, local, steps
//	r       - Reset parameters
//	t       - Cycle color themes
//	q       - Quit
//
// Every parameter change goes through the store. The app subscribes to all
// parameters and recomputes its report once per handled key after any of
// them fired.
package viz
