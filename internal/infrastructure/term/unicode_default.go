//go:build !windows

package term

// Without a UTF-8 locale there is no reliable unicode signal on POSIX
// terminals, so the fallback is conservative.
const defaultUnicodeSupport = false
