// Package dial provides a rotary-controller focus navigation engine for Go.
//
// Users import this single package for the complete public API:
// window and element construction, focus regions, history caching,
// directional search, and the rotary input controller.
//
// The engine is single threaded. All calls must come from the same
// goroutine that mutates the element tree, mirroring a UI main loop.
package dial
