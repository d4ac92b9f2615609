package app

import (
	"net/url"
	"strings"
)

const (
	binaryResultOption    = "disable_prepared_binary_result"
	maxTracedQueryLength  = 512
	redactedPasswordValue = "xxxxx"
)

// dsn is a Postgres connection string in URL form (postgres://...) or in
// libpq key=value form.
type dsn string

func (d dsn) url() (*url.URL, bool) {
	parsed, err := url.Parse(strings.TrimSpace(string(d)))
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return nil, false
	}
	return parsed, true
}

func (d dsn) keyValues() []string {
	return strings.Fields(string(d))
}

// withBinaryResultsDisabled sets disable_prepared_binary_result=yes unless the
// caller already chose a value. Needed behind transaction poolers.
func (d dsn) withBinaryResultsDisabled() string {
	raw := strings.TrimSpace(string(d))
	if parsed, ok := d.url(); ok {
		query := parsed.Query()
		if query.Get(binaryResultOption) != "" {
			return raw
		}
		query.Set(binaryResultOption, "yes")
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}

	for _, kv := range d.keyValues() {
		if strings.HasPrefix(kv, binaryResultOption+"=") {
			return raw
		}
	}
	if raw == "" {
		return raw
	}
	return raw + " " + binaryResultOption + "=yes"
}

func (d dsn) dbName() string {
	if parsed, ok := d.url(); ok {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}
	for _, kv := range d.keyValues() {
		if name, ok := strings.CutPrefix(kv, "dbname="); ok {
			return strings.Trim(name, `"'`)
		}
	}
	return ""
}

// redacted masks the password so the DSN can go into logs and errors.
func (d dsn) redacted() string {
	if parsed, ok := d.url(); ok {
		return parsed.Redacted()
	}
	parts := d.keyValues()
	for i, kv := range parts {
		if strings.HasPrefix(kv, "password=") {
			parts[i] = "password=" + redactedPasswordValue
		}
	}
	return strings.Join(parts, " ")
}

// traceQuery collapses whitespace and caps the statement recorded on SQL spans.
func traceQuery(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
