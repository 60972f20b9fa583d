// Package health provides status, liveness and readiness HTTP handlers.
//
// [StatusHandler] answers {"status":"OK","timestamp":"..."} with an ISO-8601
// UTC timestamp and has no side effects. [LivenessHandler] always reports
// healthy. [ReadinessHandler] runs a set of [Checks] concurrently under a
// shared timeout and answers 503 when any of them fails:
//
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "smtp": sender.Ping,
//	}, health.WithTimeout(3*time.Second)))
//
// Liveness and readiness answer plain text by default and JSON when the
// client sends Accept: application/json or ?format=json.
//
// [Run] executes checks outside HTTP, e.g. from a CLI, and returns
// [ErrCheckFailed] joined with the individual failures.
package health
