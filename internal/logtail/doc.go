// Package logtail reads the end of the app's own JSON log for the
// diagnostics overlay.
//
// Lines returns the last N raw lines of a file; a missing file yields no
// lines rather than an error, since the log only appears after the first
// write. Parse decodes one zap JSON entry with gjson, dropping the caller and
// stacktrace keys, and Entry.Format renders it as a single terminal line:
//
//	09:15:42 WARN  loader: sample load failed error=timeout
//
// Lines that are not JSON (a panic trace, say) are passed through untouched.
package logtail
