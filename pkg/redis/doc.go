// Package redis opens a go-redis client from environment configuration.
//
// The client backs prefstore.RedisStore, which keeps per-subject language
// preferences:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	client, err := redis.Open(ctx, cfg, log)
//	if err != nil {
//	    return err
//	}
//
//	app := langneg.New(
//	    langneg.WithHealthChecks(langneg.WithReadinessCheck("redis", redis.Healthcheck(client))),
//	)
//	return app.Run(":8080", langneg.ShutdownHook(redis.Shutdown(client)))
package redis
