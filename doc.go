// Package outbound provides an HTTP client for the Outbound API.
//
// The client wraps [github.com/go-resty/resty/v2]. Each call validates its
// arguments, sends a single JSON POST and reports the outcome as a
// [Result]; nothing is retried and no connections are reused.
//
// # Basic Usage
//
//	c := outbound.New("my-api-key",
//	    outbound.WithLogLevel(outbound.LevelError),
//	)
//
//	res := c.Track(ctx, outbound.Event{
//	    UserID: outbound.StringID("user-1"),
//	    Name:   "purchase",
//	})
//	if !res.Success() {
//	    log.Println(res.Err)
//	}
//
// Code written against a single process-wide client can use [Init] and the
// package-level functions instead:
//
//	outbound.Init("my-api-key", outbound.LevelError)
//	res := outbound.Identify(ctx, outbound.IntID(42), outbound.UserInfo{Email: "a@b.c"})
//
// # Results
//
// A [Result] never panics and never carries an error the caller has to
// type-switch on. Use the predicates to classify it: [Result.UserIDError],
// [Result.PlatformError], [Result.ConnectionError], [Result.HTTPError] and
// so on. ReceivedCall is true only when the API sent back a response.
//
// # Identifiers
//
// User and group identifiers are either strings or numbers. Build them with
// [StringID], [IntID], [UintID], [FloatID] or, for dynamically typed input,
// [IDFrom]. The zero [ID] is rejected by every operation.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; the
// resulting configuration is validated once, and a client with a bad
// configuration returns a [Result] wrapping [ErrInvalidOptions] from every
// call.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [WithLogLevel] for the
// built-in [LevelLogger]. The default [NoopLogger] discards all log output.
// Request bodies are logged at debug level; API keys are never logged.
//
// # Concurrency
//
// A [Client] is safe for concurrent use. [Init] swaps the process-wide
// client atomically, but a call racing with [Init] may use either the old
// or the new client.
package outbound
