// Package domain holds the error vocabulary shared by the dashboard's domain
// packages: progress, completion, discovery and settings. Adapters translate
// these errors into transport status codes.
package domain
