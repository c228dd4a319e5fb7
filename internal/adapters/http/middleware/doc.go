// Package middleware provides the inbound HTTP request pipeline. The server
// registers it in this order:
//
//	Recovery → RequestID → CorrelationID → AppContext → OpenTelemetry → Logging → Timeout → handler
//
// Status capture goes through chi's WrapResponseWriter so every layer sees
// the same code and byte count.
package middleware
