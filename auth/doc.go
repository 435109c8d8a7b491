// Package auth implements the Akamai EdgeGrid request authentication
// scheme (EG1-HMAC-SHA256).
//
// Every request sent to an Akamai OPEN API endpoint must carry an
// Authorization header of the form
//
//	EG1-HMAC-SHA256 client_token=...;access_token=...;timestamp=...;nonce=...;signature=...
//
// where the signature is an HMAC-SHA256 over a canonical representation of
// the request, keyed with a per-request signing key derived from the client
// secret and the request timestamp. The server derives the same key and
// recomputes the signature, so the canonical representation here matches
// the reference Akamai implementations byte for byte.
//
// # Signing Requests
//
// Use SignRequest to set the Authorization header on an outgoing request:
//
//	creds := auth.NewCredentials(clientToken, clientSecret, accessToken, host)
//
//	err := auth.SignRequest(req, auth.SignConfig{
//	    Credentials: creds,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Timestamp and nonce are generated fresh for every call unless fixed
// values are supplied in SignConfig, which is intended for tests.
//
// # Signed Headers
//
// By default no request headers are covered by the signature. Some Akamai
// endpoints require specific headers to be signed; list them in
// SignConfig.HeadersToSign. The declared order is preserved in the
// canonical representation, and a declared header that is absent from the
// request contributes an empty value rather than being skipped.
//
// # Request Bodies
//
// For POST requests the body is covered by the signature through a SHA-256
// content hash. Only the first Credentials.MaxBody bytes (128 KiB by
// default) influence the hash; a longer body is truncated for signing
// purposes while the full body is still sent on the wire. This truncation
// is part of the EdgeGrid scheme, not a limitation of this package.
//
// # Client Transport
//
// NewTransport creates an http.RoundTripper that signs every outgoing
// request. Pass an *http.Transport to configure proxy, TLS, and timeout
// settings. Pass nil for sensible defaults:
//
//	client := &http.Client{
//	    Transport: auth.NewTransport(nil, auth.SignConfig{
//	        Credentials: creds,
//	    }),
//	}
//
//	resp, err := client.Get("https://" + creds.Host + "/papi/v1/contracts")
package auth
