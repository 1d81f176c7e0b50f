// Package target models the accelerator being compiled for: its execution
// resource classes and the cost oracle that maps a graph node onto a
// resource class with a cycle cost.
//
// A Backend is built once from a config.TargetSpec and is read-only
// afterwards. Resource identity is the *ExecResource pointer; the
// scheduler keys its occupancy tracking on it.
package target
