// Package prefstore persists per-subject language preferences and exposes them
// as a negotiation step.
//
// Three stores implement Store: MemoryStore, RedisStore and PostgresStore. Cached
// puts an in-process read-through cache in front of any of them:
//
//	store := prefstore.Cached(prefstore.NewRedisStore(client), time.Minute)
//
//	cfg := negotiate.MustNew(
//	    negotiate.WithResolver(prefstore.Resolver(store, prefstore.SubjectFromHeader("X-User-ID"))),
//	    negotiate.WithWeights(weights),
//	    negotiate.WithWildcard(langcode.En),
//	)
//
// A stored preference wins over the URL and Accept-Language steps because custom
// resolvers run first. Requests without a subject, or subjects without a stored
// preference, fall through to the next step.
//
// PostgresStore needs its table; run Migrate once at startup:
//
//	if err := prefstore.Migrate(ctx, pool, dbCfg.MigrationsTable, log); err != nil {
//	    return err
//	}
package prefstore
