// Package health serves liveness and readiness probes.
//
// The App registers both endpoints when health checks are enabled:
//
//	app := langneg.New(
//	    langneg.WithHealthChecks(
//	        langneg.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	        langneg.WithReadinessCheck("postgres", db.Healthcheck(pool)),
//	    ),
//	)
//
// Checks run concurrently under a shared timeout. Responses are plain text
// ("OK" or "Service Unavailable") unless the client asks for JSON with
// ?format=json or an Accept header:
//
//	{"status": "unhealthy", "checks": {"redis": {"status": "unhealthy", "error": "...", "duration": "3ms"}}}
//
// Run executes the same checks outside HTTP, for example from a startup hook:
//
//	if err := health.Run(ctx, checks).Err(); err != nil {
//	    return err
//	}
package health
