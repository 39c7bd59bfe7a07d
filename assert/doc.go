// Package assert evaluates internal invariants and reports failures through
// the logging facade and OpenTelemetry.
//
// Assertions return errors instead of panicking; callers decide how to
// degrade when an invariant does not hold.
package assert
