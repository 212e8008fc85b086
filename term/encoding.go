package term

import (
	"github.com/gdamore/encoding"
	"github.com/gdamore/tcell/v2"
)

// registerLegacyEncodings makes the legacy (non-UTF-8) terminal
// charset tables gdamore/encoding carries available to tcell's own
// encoding lookup, so a session started under a locale like
// ISO8859-1 or Shift_JIS still decodes terminal input/output
// correctly instead of assuming UTF-8. Grounded on tcell's own
// documented pattern of calling encoding.Register() once before the
// first Screen is created; NewTcellScreen does this unconditionally
// since registering a table costs nothing for locales that never
// look it up.
func registerLegacyEncodings() {
	encoding.Register()
}

// LegacyEncodingAvailable reports whether charset (a canonical IANA
// name such as "ISO8859-1" or "GBK") has a registered decode/encode
// table. Exported for term's own tests and for a future locale-probe
// path; nothing outside this package depends on it yet.
func LegacyEncodingAvailable(charset string) bool {
	return tcell.GetEncoding(charset) != nil
}
