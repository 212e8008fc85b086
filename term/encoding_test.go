package term

import "testing"

func TestLegacyEncodingTablesRegistered(t *testing.T) {
	registerLegacyEncodings()

	for _, charset := range []string{"ISO8859-1", "ISO8859-15", "GBK", "Shift_JIS"} {
		if !LegacyEncodingAvailable(charset) {
			t.Errorf("expected %s to be registered by gdamore/encoding", charset)
		}
	}
}

func TestLegacyEncodingUnknownCharsetNotAvailable(t *testing.T) {
	registerLegacyEncodings()

	if LegacyEncodingAvailable("not-a-real-charset") {
		t.Error("expected an unregistered charset name to report unavailable")
	}
}
