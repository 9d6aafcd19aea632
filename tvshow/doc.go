// Package tvshow covers the TV endpoint family: show details, seasons
// and episodes, aggregate credits, content ratings and the per-show
// sub-resources.
package tvshow
