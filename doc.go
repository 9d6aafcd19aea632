// Package tmdb provides a typed client for The Movie Database (TMDB) v3 API.
//
// Every endpoint is a command: a small struct that knows its resource path
// and query parameters. Commands from the endpoint subpackages (movie,
// tvshow, search, …) execute against a shared Client that attaches the API
// key, performs the GET and classifies the response.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: owns the base URL, API key and transport; runs the request
//     pipeline and, when configured, a fixed-rate request throttle
//   - Command: the contract endpoint types implement (Path and Params)
//   - Transport: the pluggable HTTP capability returning raw status + body
//   - Errors: structured error types for each failure class
//
// # Usage
//
// Create a client with your API key and run commands against it:
//
//	client, err := tmdb.New(
//		"your-api-key",
//		tmdb.WithRequestRate(tmdb.DefaultRequestRate),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	result, err := search.NewMovies("the thing").WithYear(1982).Execute(ctx, client)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, m := range result.Results {
//		fmt.Println(m.Title, m.ReleaseDate.Year())
//	}
//
// # Error Handling
//
// Each call resolves to exactly one outcome: a decoded value, a
// *ValidationError (HTTP 422), a *ServerError (any other non-2xx status)
// or a *TransportError (network or decode failure). ServerError keeps the
// HTTP status and TMDB's own error code, so callers can branch:
//
//	if _, err := cmd.Execute(ctx, client); err != nil {
//		switch {
//		case tmdb.IsNotFound(err):
//			// resource does not exist
//		case tmdb.IsInvalidAPIKey(err):
//			// credential rejected
//		}
//	}
//
// The client never retries; retry policy belongs to the caller. The API
// key is sent as a query parameter on every request and never appears in
// log output.
package tmdb
