package tmdb

import "context"

// Command describes one endpoint call: a resource path and the query
// parameters derived from the command's fields. Endpoint packages
// implement it once per operation; the shared execution path lives in
// Execute and the Client.
type Command interface {
	// Path returns the resource path without base URL or query string,
	// for example "/movie/550".
	Path() string
	// Params returns the query parameters for the set fields, in a
	// fixed order, without the API key.
	Params() Params
}

// Execute runs a command against the client and decodes the response
// body into T. Endpoint packages wrap it in typed Execute methods,
// unwrapping single-key envelopes where the API uses them.
func Execute[T any](ctx context.Context, c *Client, cmd Command) (T, error) {
	var out T
	if err := c.Execute(ctx, cmd.Path(), cmd.Params(), &out); err != nil {
		return out, err
	}
	return out, nil
}
