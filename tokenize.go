package tyrouter

import "strings"

// tokenize implements spec.md §4.5's tokenization step: trim surrounding
// whitespace, split the URI into a path and an optional query, split the
// path on "/" (discarding the synthetic leading empty segment produced by
// a leading "/", but keeping a trailing empty segment produced by a
// trailing "/" — that is what lets a TrailingSlash descriptor match), then
// flatten the query into alternating key/value tokens and append them
// after the path tokens.
//
// tokenize returns ok == false only for an empty (post-trim) URI; a
// malformed-looking URI still tokenizes, since spec.md leaves "no match"
// as the only outcome for a URI no route accepts.
func tokenize(uri string) ([]string, bool) {
	trimmed := strings.TrimSpace(uri)
	if trimmed == "" {
		return nil, false
	}

	path, query, hasQuery := strings.Cut(trimmed, "?")

	tokens := splitPath(path)
	if hasQuery {
		tokens = append(tokens, flattenQuery(query)...)
	}
	return tokens, true
}

// splitPath splits a path on "/", discarding only the leading empty
// segment a leading "/" produces. A trailing "/" leaves a trailing empty
// segment in the result, matched by TrailingSlash (spec.md §4.5).
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	return parts
}

// flattenQuery turns "k1=v1&k2&k3=v3" into the token stream
// [k1, v1, k2, k3, v3] (spec.md §4.5 and §6's QUERY grammar): each "k=v"
// pair contributes two tokens, each bare "k" contributes one.
func flattenQuery(query string) []string {
	if query == "" {
		return nil
	}
	var tokens []string
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, hasValue := strings.Cut(pair, "=")
		tokens = append(tokens, key)
		if hasValue {
			tokens = append(tokens, value)
		}
	}
	return tokens
}
