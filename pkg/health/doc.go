// Package health provides liveness and readiness HTTP handlers.
//
// LivenessHandler always answers OK. ReadinessHandler runs a set of named
// checks concurrently, each bounded by a timeout, and answers 503 when any
// fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"timezone": func(ctx context.Context) error {
//			_, err := clock.Location("Asia/Shanghai")
//			return err
//		},
//	}, health.WithTimeout(2*time.Second), health.WithLogger(log)))
//
// Probes get "OK" or "Service Unavailable" as plain text. With
// Accept: application/json or ?format=json the body is:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "timezone": {"status": "unhealthy", "error": "...", "duration": "12µs"}
//	  }
//	}
package health
