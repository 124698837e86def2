package tabletag

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"
)

// querystring builds a query-string URL ("?k=v&...") from the current
// request's parameters, applying the given key/value pairs. A pair with an
// empty or nil value removes the key; otherwise it replaces every existing
// value of the key. Empty keys are skipped. With a nil request it returns ""
// so templates rendered outside a request degrade quietly.
//
// An odd number of arguments is a call-site mistake and surfaces as a
// template execution error.
func querystring(req *http.Request, pairs ...any) (template.URL, error) {
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("querystring: arguments must be key/value pairs, got %d values", len(pairs))
	}
	if req == nil {
		return "", nil
	}

	params := req.URL.Query()
	for i := 0; i < len(pairs); i += 2 {
		key := strings.TrimSpace(stringifyArg(pairs[i]))
		if key == "" {
			continue
		}
		value := stringifyArg(pairs[i+1])
		if value == "" {
			params.Del(key)
			continue
		}
		params.Set(key, value)
	}
	return encodeQuery(params), nil
}

// withoutParams builds a query-string URL from the current request's
// parameters with the named keys removed.
func withoutParams(req *http.Request, keys ...string) template.URL {
	if req == nil {
		return ""
	}
	params := req.URL.Query()
	for _, key := range keys {
		params.Del(key)
	}
	return encodeQuery(params)
}

// encodeQuery re-encodes a parameter set with a "?" prefix. Encode sorts
// keys, so output is deterministic. An empty set yields "".
func encodeQuery(params url.Values) template.URL {
	if len(params) == 0 {
		return ""
	}
	return template.URL("?" + params.Encode())
}

// stringifyArg renders a template argument as its query-string value.
// nil maps to "", which querystring treats as a removal.
func stringifyArg(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
