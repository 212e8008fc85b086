package errbuf

import "testing"

func TestErrorMsgPrefix(t *testing.T) {
	eb := New(nil)
	eb.ConfigFilename = "rc"
	eb.ConfigLine = 4
	ok := eb.ErrorMsgForCmd("bind", "bad key %q", "C-@")
	if ok {
		t.Fatal("ErrorMsgForCmd must return false")
	}
	want := `rc:4: bind: bad key "C-@"`
	if eb.Message() != want {
		t.Fatalf("got %q want %q", eb.Message(), want)
	}
	if !eb.IsError() {
		t.Fatal("expected IsError true")
	}
	if eb.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", eb.ErrorCount())
	}
}

func TestInfoMsgClearsError(t *testing.T) {
	eb := New(nil)
	eb.ErrorMsg("boom")
	eb.InfoMsg("ok")
	if eb.IsError() {
		t.Fatal("InfoMsg must clear error flag")
	}
	if eb.Message() != "ok" {
		t.Fatalf("got %q", eb.Message())
	}
}

func TestStderrSink(t *testing.T) {
	var got string
	eb := New(func(s string) { got = s })
	eb.PrintToStderr = true
	eb.ErrorMsg("boom")
	if got != "boom" {
		t.Fatalf("sink got %q", got)
	}
	if !eb.StderrErrorsPrinted() {
		t.Fatal("expected StderrErrorsPrinted true")
	}
}
