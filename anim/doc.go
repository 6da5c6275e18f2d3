// Package anim provides frame-scheduled animations and a state-driven animation
// selector built on top of the shelf registry.
//
// An Animation advances its frame at its own rate, independent of how often the
// world ticks. An AnimStateMachine watches another component on the same entity
// and, when that value changes, swaps in a fresh Animation for the clip the asset
// catalog binds to the new state.
//
// Asset lookups never panic: every missing clip, state or frame is reported as an
// *AssetNotFoundError.
package anim
