// Package movie covers the movie endpoint family: details, the curated
// and derived listings, and the per-movie sub-resources such as
// credits, images, release dates and watch providers.
//
// Commands are built with the NewX constructors, refined with WithX
// and run with Execute:
//
//	m, err := movie.NewDetails(550).WithLanguage("en-US").Execute(ctx, client)
package movie
