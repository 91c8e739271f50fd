package providers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/keagan/railcut/internal/config"
)

// Presigner issues S3-style SigV4 presigned URLs so the browser can
// upload directly to object storage without the key ever leaving the
// server.
type Presigner struct {
	cfg config.StorageConfig
	now func() time.Time
}

// NewPresigner creates a presigner from storage configuration.
func NewPresigner(cfg config.StorageConfig) *Presigner {
	return &Presigner{cfg: cfg, now: time.Now}
}

// PresignPut returns a presigned PUT URL for an object key.
func (p *Presigner) PresignPut(key string, expires time.Duration) (string, error) {
	return p.presign("PUT", key, expires)
}

// PresignGet returns a presigned GET URL for an object key.
func (p *Presigner) PresignGet(key string, expires time.Duration) (string, error) {
	return p.presign("GET", key, expires)
}

func (p *Presigner) presign(method, key string, expires time.Duration) (string, error) {
	if p.cfg.AccessKey == "" || p.cfg.SecretKey == "" {
		return "", fmt.Errorf("storage credentials not configured")
	}
	if p.cfg.Bucket == "" {
		return "", fmt.Errorf("storage bucket not configured")
	}

	host, path, err := p.target(key)
	if err != nil {
		return "", err
	}

	t := p.now().UTC()
	amzDate := t.Format("20060102T150405Z")
	dateStamp := t.Format("20060102")
	scope := dateStamp + "/" + p.cfg.Region + "/s3/aws4_request"

	query := map[string]string{
		"X-Amz-Algorithm":     "AWS4-HMAC-SHA256",
		"X-Amz-Credential":    p.cfg.AccessKey + "/" + scope,
		"X-Amz-Date":          amzDate,
		"X-Amz-Expires":       fmt.Sprintf("%d", int(expires.Seconds())),
		"X-Amz-SignedHeaders": "host",
	}
	canonicalQuery := encodeQuery(query)

	canonicalRequest := strings.Join([]string{
		method,
		encodePath(path),
		canonicalQuery,
		"host:" + host + "\n",
		"host",
		"UNSIGNED-PAYLOAD",
	}, "\n")

	hashedRequest := sha256.Sum256([]byte(canonicalRequest))
	stringToSign := strings.Join([]string{
		"AWS4-HMAC-SHA256",
		amzDate,
		scope,
		hex.EncodeToString(hashedRequest[:]),
	}, "\n")

	signingKey := hmacSHA256(
		hmacSHA256(
			hmacSHA256(
				hmacSHA256([]byte("AWS4"+p.cfg.SecretKey), dateStamp),
				p.cfg.Region),
			"s3"),
		"aws4_request")
	signature := hex.EncodeToString(hmacSHA256(signingKey, stringToSign))

	return fmt.Sprintf("https://%s%s?%s&X-Amz-Signature=%s",
		host, encodePath(path), canonicalQuery, signature), nil
}

// target resolves the request host and object path. With no custom
// endpoint the bucket rides in the host (virtual-hosted style); custom
// endpoints get path-style addressing, which MinIO-like stores expect.
func (p *Presigner) target(key string) (host, path string, err error) {
	if p.cfg.Endpoint == "" {
		return p.cfg.Bucket + ".s3.amazonaws.com", "/" + key, nil
	}
	u, err := url.Parse(p.cfg.Endpoint)
	if err != nil {
		return "", "", fmt.Errorf("invalid storage endpoint: %w", err)
	}
	return u.Host, "/" + p.cfg.Bucket + "/" + key, nil
}

func hmacSHA256(key []byte, data string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(data))
	return mac.Sum(nil)
}

// encodeQuery builds the canonical query string: keys sorted, every key
// and value RFC 3986 encoded.
func encodeQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, uriEncode(k, false)+"="+uriEncode(params[k], false))
	}
	return strings.Join(parts, "&")
}

// encodePath encodes an object path, keeping the slashes.
func encodePath(path string) string {
	return uriEncode(path, true)
}

// uriEncode implements the SigV4 variant of RFC 3986 encoding: only
// unreserved characters (and optionally "/") pass through.
func uriEncode(s string, keepSlash bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9',
			c == '-', c == '.', c == '_', c == '~':
			b.WriteByte(c)
		case c == '/' && keepSlash:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
