// Package edgerc resolves EdgeGrid credentials from the standard Akamai
// configuration sources: .edgerc files and AKAMAI_* environment variables.
//
// An .edgerc file is an INI file with one section per API client:
//
//	[default]
//	client_secret = abcdefghijklmnopqrstuvwxyz1234567890ABCDEFG=
//	host = akab-xxxx.luna.akamaiapis.net
//	access_token = akab-xxxx
//	client_token = akab-xxxx
//	max-body = 131072
//
// Load consults the environment first and falls back to the file, matching
// the behaviour of the Akamai CLI tooling:
//
//	creds, err := edgerc.Load("~/.edgerc", "default")
//
// For the "default" section the environment variables are AKAMAI_HOST,
// AKAMAI_CLIENT_TOKEN, AKAMAI_CLIENT_SECRET, and AKAMAI_ACCESS_TOKEN. Any
// other section name is upper-cased into the prefix, e.g.
// AKAMAI_PAPI_HOST for section "papi".
//
// The resolved credentials are validated before they are returned: a
// missing required field yields auth.ErrMissingCredential naming the
// field, and an unknown section yields ErrInvalidSection naming the
// section.
package edgerc
