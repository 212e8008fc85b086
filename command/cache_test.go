package command

import (
	"testing"

	"github.com/dteedit/dte/errbuf"
)

func testCommandSet(calls *[]string) *CommandSet {
	insert := &Command{
		Name: "insert",
		Spec: Spec{MinArgs: 1, MaxArgs: 1},
		Func: func(eb *errbuf.ErrorBuffer, args Args) bool {
			*calls = append(*calls, "insert:"+args.Positional[0])
			return true
		},
	}
	return &CommandSet{
		Lookup: func(name string) *Command {
			if name == "insert" {
				return insert
			}
			return nil
		},
	}
}

func TestCompileStaticSingleCommand(t *testing.T) {
	var calls []string
	cmds := testCommandSet(&calls)
	cc := Compile("insert hello", cmds)
	if cc.dynamic || cc.Resolved == nil {
		t.Fatalf("expected static compile, dynamic=%v resolved=%v", cc.dynamic, cc.Resolved)
	}

	runner := &Runner{Cmds: cmds, Ebuf: errbuf.New(nil)}
	if !cc.Invoke(runner) {
		t.Fatalf("Invoke failed: %s", runner.Ebuf.Message())
	}
	if len(calls) != 1 || calls[0] != "insert:hello" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestCompileDynamicOnVariableReference(t *testing.T) {
	var calls []string
	cmds := testCommandSet(&calls)
	cc := Compile("insert $FOO", cmds)
	if !cc.dynamic {
		t.Fatal("expected dynamic compile for a body containing $")
	}
}

func TestCompileDynamicOnMultipleCommands(t *testing.T) {
	var calls []string
	cmds := testCommandSet(&calls)
	cc := Compile("insert a; insert b", cmds)
	if !cc.dynamic {
		t.Fatal("expected dynamic compile for a multi-command body")
	}
}

func TestCompileDynamicOnUnknownCommand(t *testing.T) {
	var calls []string
	cmds := testCommandSet(&calls)
	cc := Compile("bogus x", cmds)
	if !cc.dynamic {
		t.Fatal("expected dynamic compile for an unresolvable command")
	}
}

func TestCompileDynamicOnArityError(t *testing.T) {
	var calls []string
	cmds := testCommandSet(&calls)
	cc := Compile("insert", cmds)
	if !cc.dynamic {
		t.Fatal("expected dynamic compile when arity check fails")
	}

	runner := &Runner{Cmds: cmds, Ebuf: errbuf.New(nil)}
	if cc.Invoke(runner) {
		t.Fatal("expected dynamic Invoke to still fail the arity check")
	}
}
