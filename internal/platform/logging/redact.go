package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders are the lower-case names of request headers that carry
// credentials. The HTTP logging middleware prints them as [REDACTED].
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

// Transcripts and extracted answers are client content and stay out of the
// log along with credentials.
var (
	redactedKeys     = []string{"password", "secret", "token", "transcript_text", "answer_text"}
	redactedPrefixes = []string{"secret_", "api_key"}
)

// Credentials that turn up inside otherwise harmless values. JWT segments
// must be at least 10 characters so version strings do not match.
var credentialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// redactor builds the masq ReplaceAttr installed by New.
func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range redactedKeys {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range credentialPatterns {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
