// Package rota is the assignment and validation engine. Everything here is
// pure: callers load tasks, workers and properties and hand them in, and the
// engine returns conflicts, workload figures and advisory warnings. Nothing in
// this package returns an error for a soft constraint.
package rota
