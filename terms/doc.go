// Package terms holds the mutable term graph of an affine lambda program.
//
// Every position of the graph lives in a Store and is addressed by a NodeID.
// A position is reserved undefined by Allocate, defined exactly once while
// the program is built, and afterwards rewritten in place by an evaluator.
// Each abstraction owns a single-assignment Slot; a beta reduction writes the
// argument into the slot and the one permitted Reference to it takes the
// value out again, so no substitution ever walks a body.
package terms
