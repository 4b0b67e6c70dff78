// Package negotiate decides which language to serve for an HTTP request.
//
// A Config combines up to four sources, tried in this order:
//
//  1. a custom Resolver (synchronous or asynchronous), highest precedence;
//  2. a designated URL path segment, e.g. /{lang}/... with WithURLSegment(0);
//  3. the Accept-Language header weighed against the server's support weights;
//  4. a wildcard language, the last resort.
//
// The first configured source that succeeds wins. Sources that are not configured
// are skipped silently. When everything fails the error of the last configured step
// is returned: ErrNotFound for a bad URL segment, ErrNotAcceptable for a header
// with no supported language.
//
// Header decisions use a relative trade-off between server support and client
// quality rather than a plain maximum, so a language the server supports better
// can win over a slightly preferred one:
//
//	cfg := negotiate.MustNew(
//		negotiate.WithWeight(langcode.En, 0.5),
//		negotiate.WithWeight(langcode.De, 0.5),
//		negotiate.WithWeight(langcode.Es, 1.0),
//	)
//	// "de, es;q=0.5" resolves to de, "de, es;q=0.6" resolves to es.
//
// Weights can be loaded from YAML or JSON files with WithWeightsFile and from
// environment variables through EnvConfig.
//
// Config is immutable after New and safe for concurrent use.
package negotiate
