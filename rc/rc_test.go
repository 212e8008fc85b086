package rc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dteedit/dte/command"
	"github.com/dteedit/dte/errbuf"
)

func TestLocateFindsFileViaLocator(t *testing.T) {
	dir := t.TempDir()
	dteDir := filepath.Join(dir, "dte")
	if err := os.MkdirAll(dteDir, 0755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dteDir, "rc")
	if err := os.WriteFile(want, []byte("quit\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)

	found, err := Locate(DefaultLocator)
	if err != nil {
		t.Fatal(err)
	}
	if found != want {
		t.Fatalf("Locate() = %q, want %q", found, want)
	}
}

func TestLocateReturnsErrorWhenNothingFound(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", "")
	if _, err := Locate(DefaultLocator); err == nil {
		t.Fatal("expected an error when no rc file exists anywhere")
	}
}

func TestLoadRunsEachLineAsACommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rc")
	script := "# a comment\n\nquit\n"
	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		t.Fatal(err)
	}

	var ran []string
	eb := errbuf.New(nil)
	runner := &command.Runner{
		Ebuf: eb,
		Cmds: &command.CommandSet{
			Lookup: func(name string) *command.Command {
				return &command.Command{
					Name:      name,
					AllowInRC: true,
					Func: func(_ *errbuf.ErrorBuffer, _ command.Args) bool {
						ran = append(ran, name)
						return true
					},
				}
			},
		},
	}

	if err := Load(runner, path); err != nil {
		t.Fatal(err)
	}
	if len(ran) != 1 || ran[0] != "quit" {
		t.Fatalf("ran = %v, want exactly [\"quit\"]", ran)
	}
}

func TestLoadSetsConfigFilenameForRejectedNonRCCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rc")
	if err := os.WriteFile(path, []byte("risky\n"), 0644); err != nil {
		t.Fatal(err)
	}

	eb := errbuf.New(nil)
	runner := &command.Runner{
		Ebuf: eb,
		Cmds: &command.CommandSet{
			Lookup: func(name string) *command.Command {
				return &command.Command{Name: name, AllowInRC: false}
			},
		},
	}

	if err := Load(runner, path); err != nil {
		t.Fatal(err)
	}
	if !eb.IsError() {
		t.Fatal("expected an error recorded for a non-AllowInRC command in an rc file")
	}
	if eb.ConfigFilename != "" {
		t.Fatalf("ConfigFilename should be restored to empty after Load, got %q", eb.ConfigFilename)
	}
}
