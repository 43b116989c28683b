// Package app is the composition root for progressdash.
//
// Run loads the optional config file, applies command-line overrides, sets
// up logging and hands a state.Tracker to the Bubble Tea program in package
// ui. Everything after startup happens on the program's update loop; app
// starts no goroutines of its own.
//
// Log records go to a file because the UI owns the terminal. With no log
// file configured they are discarded.
package app
