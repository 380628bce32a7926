// Package tools implements the stateless analysis routines the workflow
// coordinator dispatches to: text analysis, knowledge lookup, metrics
// computation, workflow guidance, and a general fallback.
//
// Tools are pure functions over their input text. Expected problems (for
// example a metrics request with no parseable numbers) are reported as
// human-readable text inside the result rather than as errors, so a session
// always receives a well-formed reply.
package tools
