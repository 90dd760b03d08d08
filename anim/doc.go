// Package anim provides interruptible, time based transitions of scalar values
// driven by the frame clock of the caller.
package anim
