// Package replay executes a translated step table against graphics
// contexts supplied by a pluggable driver.
//
// The runtime is the in-process twin of the native runtime embedded in
// generated programs: a single-threaded loop that drains driver events,
// issues one step per tick, presents every live context, and paces with a
// fixed interval. Each context owns an object-handle table mapping the
// trace's virtual handles to driver-assigned object names; the
// process-wide context registry maps context handles to live contexts and
// only grows until teardown.
//
// Drivers register themselves by name, following the database/sql driver
// pattern:
//
//	drv, err := replay.NewDriver("headless")
//	rt, err := replay.New(drv, steps)
//	err = rt.Run()
//
// The built-in headless driver allocates sequential object names and
// records every issued call, which is what the generator's dry-run mode
// and the test suite use. Windowed replay is the generated native
// program's job; it carries the same runtime compiled into its prologue.
package replay
