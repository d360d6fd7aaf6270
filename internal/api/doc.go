// Package api exposes SEO generation over a JSON HTTP interface. It decodes
// and validates requests, calls the generator, and maps generation errors to
// status codes and safe client messages.
package api
