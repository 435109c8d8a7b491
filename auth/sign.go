package auth

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// authType is the EdgeGrid authentication scheme identifier.
const authType = "EG1-HMAC-SHA256"

// timestampFormat renders a UTC instant as "20140321T19:34:21+0000". The
// zone suffix is literal: EdgeGrid timestamps are always UTC.
const timestampFormat = "20060102T15:04:05+0000"

// Timestamp formats t for use in the Authorization header. The instant is
// converted to UTC and truncated to whole seconds.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

// GenerateNonce returns a fresh random nonce (a version 4 UUID). Nonces
// are never reused across requests.
func GenerateNonce() string {
	return uuid.NewString()
}

// SignConfig configures EdgeGrid request signing.
type SignConfig struct {
	// Credentials supplies the client secrets. Required.
	Credentials *Credentials

	// HeadersToSign lists request headers covered by the signature, in
	// the order they are canonicalized. Defaults to none.
	HeadersToSign []string

	// Timestamp fixes the signing time. When zero, time.Now() is used.
	// Fixed timestamps are intended for tests.
	Timestamp time.Time

	// Nonce fixes the request nonce. When empty, a fresh UUID is
	// generated. Fixed nonces are intended for tests.
	Nonce string
}

// SignRequest signs an HTTP request in-place by setting its Authorization
// header.
//
// The header is built in two passes: the partial header value (all fields,
// empty signature) is embedded in the canonical data-to-sign, the
// signature is computed over that string, and only then is the final
// header assembled. The signature therefore authenticates every other
// header field, but not itself.
func SignRequest(r *http.Request, cfg SignConfig) error {
	if cfg.Credentials == nil {
		return ErrNoCredentials
	}

	if err := cfg.Credentials.Validate(); err != nil {
		return err
	}

	signedAt := cfg.Timestamp
	if signedAt.IsZero() {
		signedAt = time.Now()
	}

	nonce := cfg.Nonce
	if nonce == "" {
		nonce = GenerateNonce()
	}

	body, err := readAndRestoreBody(r)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrSigning, err)
	}

	in := signingInput{
		credentials:   cfg.Credentials,
		headersToSign: cfg.HeadersToSign,
		timestamp:     Timestamp(signedAt),
		nonce:         nonce,
	}

	data := dataToSign(r, body, in)
	log.Debugf("edgegrid: data to sign: %q", data)

	key, err := signingKey(cfg.Credentials.ClientSecret, in.timestamp)
	if err != nil {
		return err
	}

	signature, err := signData(key, data)
	if err != nil {
		return err
	}

	prefix := authHeaderPrefix(cfg.Credentials, in.timestamp, in.nonce)
	r.Header.Set("Authorization", prefix+"signature="+signature)

	return nil
}

// authHeaderPrefix returns the Authorization header value with an empty
// signature field. This exact string is the final field of the canonical
// data-to-sign.
func authHeaderPrefix(c *Credentials, timestamp, nonce string) string {
	return fmt.Sprintf("%s client_token=%s;access_token=%s;timestamp=%s;nonce=%s;",
		authType, c.ClientToken, c.AccessToken, timestamp, nonce)
}

// signingKey derives the per-request signing key: the base64 HMAC-SHA256
// of the timestamp keyed with the client secret. The key is never cached;
// it changes with every timestamp.
func signingKey(clientSecret, timestamp string) (string, error) {
	if clientSecret == "" {
		return "", fmt.Errorf("%w: client_secret", ErrMissingCredential)
	}

	if !utf8.ValidString(clientSecret) {
		return "", fmt.Errorf("%w: client_secret", ErrInvalidEncoding)
	}

	mac := computeHMAC([]byte(clientSecret), []byte(timestamp))

	return base64.StdEncoding.EncodeToString(mac), nil
}

// signData computes the request signature: the base64 HMAC-SHA256 of the
// data-to-sign keyed with the decoded signing key.
func signData(signingKey, data string) (string, error) {
	key, err := base64.StdEncoding.DecodeString(signingKey)
	if err != nil {
		return "", fmt.Errorf("%w: decode signing key: %w", ErrSigning, err)
	}

	mac := computeHMAC(key, []byte(data))

	return base64.StdEncoding.EncodeToString(mac), nil
}

func computeHMAC(key, message []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(message)

	return h.Sum(nil)
}

// readAndRestoreBody reads the entire request body and replaces it with a
// new reader so the full body is still sent on the wire after signing.
func readAndRestoreBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}
