package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// signingInput holds the per-request values that feed the canonical
// data-to-sign string.
type signingInput struct {
	credentials   *Credentials
	headersToSign []string
	timestamp     string
	nonce         string
}

// dataToSign constructs the canonical representation of the request that
// both client and server sign. The fields are tab separated, in fixed
// order: method, scheme, host, path+query, canonical headers, content
// hash, and the partial Authorization header (every field except the
// signature).
func dataToSign(r *http.Request, body []byte, in signingInput) string {
	fields := []string{
		strings.ToUpper(r.Method),
		scheme(r),
		host(r),
		pathAndQuery(r),
		canonicalizeHeaders(r.Header, in.headersToSign),
		contentHash(r.Method, body, in.credentials.maxBody()),
		authHeaderPrefix(in.credentials, in.timestamp, in.nonce),
	}

	return strings.Join(fields, "\t")
}

// scheme returns the request scheme, defaulting to https when the URL
// carries none.
func scheme(r *http.Request) string {
	if r.URL != nil && r.URL.Scheme != "" {
		return strings.ToLower(r.URL.Scheme)
	}

	return "https"
}

// host returns the lowercased authority (host[:port]) of the request.
func host(r *http.Request) string {
	if r.URL != nil && r.URL.Host != "" {
		return strings.ToLower(r.URL.Host)
	}

	return strings.ToLower(r.Host)
}

// pathAndQuery returns the escaped request path joined with the canonical
// query string. An empty path becomes "/".
func pathAndQuery(r *http.Request) string {
	path := r.URL.EscapedPath()
	if path == "" {
		path = "/"
	}

	query := canonicalQuery(r.URL.Query())
	if query == "" {
		return path
	}

	return path + "?" + query
}

// canonicalQuery flattens query parameters into percent-encoded key=value
// pairs sorted by key, ties broken by value. Parameter order in the
// request URL does not influence the result.
func canonicalQuery(values url.Values) string {
	if len(values) == 0 {
		return ""
	}

	type pair struct{ key, value string }

	pairs := make([]pair, 0, len(values))
	for key, vs := range values {
		for _, v := range vs {
			pairs = append(pairs, pair{key: key, value: v})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].key != pairs[j].key {
			return pairs[i].key < pairs[j].key
		}

		return pairs[i].value < pairs[j].value
	})

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = queryEscape(p.key) + "=" + queryEscape(p.value)
	}

	return strings.Join(parts, "&")
}

// queryEscape percent-encodes a query component. Spaces are encoded as
// %20, not "+", to match the encoding the server applies when it rebuilds
// the canonical string.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// canonicalizeHeaders renders the declared headers as lowercased
// "name:value" entries joined with tabs. The declared order is preserved;
// a header absent from the request keeps its position with an empty value.
// Values are trimmed and internal whitespace runs collapse to one space.
func canonicalizeHeaders(h http.Header, names []string) string {
	if len(names) == 0 {
		return ""
	}

	parts := make([]string, len(names))
	for i, name := range names {
		value := strings.Join(strings.Fields(h.Get(name)), " ")
		parts[i] = strings.ToLower(name) + ":" + value
	}

	return strings.Join(parts, "\t")
}

// contentHash returns the base64 SHA-256 of the body for POST requests,
// and the empty string otherwise. At most maxBody bytes feed the hash;
// bytes past the cutoff are ignored for signing while the full body is
// still transmitted.
func contentHash(method string, body []byte, maxBody int) string {
	if !strings.EqualFold(method, http.MethodPost) || len(body) == 0 {
		return ""
	}

	if len(body) > maxBody {
		log.WithFields(logrus.Fields{
			"body_size": len(body),
			"max_body":  maxBody,
		}).Warn("edgegrid: request body exceeds max_body, truncating for signing")

		body = body[:maxBody]
	}

	sum := sha256.Sum256(body)

	return base64.StdEncoding.EncodeToString(sum[:])
}
