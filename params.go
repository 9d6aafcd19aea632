package tmdb

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is a single query-string key/value pair.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Commands build one per
// call from their set fields; insertion order is preserved so encoding is
// deterministic. The client appends the API key itself; commands must
// never include it.
type Params []Param

// With appends a parameter and returns the extended list.
func (p Params) With(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// WithInt appends an integer parameter.
func (p Params) WithInt(key string, value int) Params {
	return p.With(key, strconv.Itoa(value))
}

// Encode serializes the parameters in order as a URL query string.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, param := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(param.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(param.Value))
	}
	return sb.String()
}
