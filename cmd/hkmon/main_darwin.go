package main

import "runtime"

// Carbon posts hotkey events to the main thread's queue and the
// context pumps that queue from whichever thread polls it. Pinning
// main keeps the poll loop on the thread Carbon delivers to.
func init() {
	runtime.LockOSThread()
}
