// Package sanitizer normalizes free-text input before validation and storage.
//
// All functions are idempotent: applying them twice yields the same result.
// They never fail; unusable input collapses to the empty string, which the
// validators then report as missing.
package sanitizer
