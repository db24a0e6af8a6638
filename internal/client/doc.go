// Package client implements the interactive application runtime.
//
// It wires the terminal UI flows and the business services into a single
// process lifecycle: authenticate, run the main loop, and start over on
// logout.
package client
