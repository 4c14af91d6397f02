//go:build windows

package term

// The Windows console is natively wide-character, so unicode is assumed
// when no locale variable says otherwise.
const defaultUnicodeSupport = true
