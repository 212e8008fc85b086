package command

import "github.com/pkg/errors"

// ArgParseError enumerates the ways parse_args(3) can reject an
// invocation, mirroring original_source/src/command/args.c's
// ArgParseError enum and messages.
type ArgParseError int

const (
	ArgErrNone ArgParseError = iota
	ArgErrInvalidOption
	ArgErrTooManyOptions
	ArgErrOptionArgumentMissing
	ArgErrOptionArgumentNotSeparate
	ArgErrTooFewArguments
	ArgErrTooManyArguments
)

// maxFlags bounds how many flag characters (repeats included) a
// single invocation may carry: the maxFlags-th one is rejected, so at
// most maxFlags-1 are accepted, mirroring the original's small
// fixed-size a->flags buffer.
const maxFlags = 8

// UnboundedArgs marks Spec.MaxArgs as having no upper bound (the
// original's sentinel 0xFF).
const UnboundedArgs = 0xFF

// Spec describes one command's flag grammar and arity, the Go
// analogue of the original's `Command` flags/min_args/max_args triple.
type Spec struct {
	// Flags lists the single-character flags this command accepts.
	// A flag followed by '=' in this string takes a required
	// argument, e.g. "e=abq" declares -e (takes an arg) and -a/-b/-q.
	Flags string
	// NoFlagsAfterArgs stops flag scanning at the first non-flag
	// token (CMDOPT_NO_FLAGS_AFTER_ARGS in the original).
	NoFlagsAfterArgs bool
	MinArgs          int
	MaxArgs          int // UnboundedArgs for no limit
}

func (s Spec) takesArg(flag byte) bool {
	for i := 0; i+1 < len(s.Flags); i++ {
		if s.Flags[i] == flag && s.Flags[i+1] == '=' {
			return true
		}
	}
	return false
}

func (s Spec) validFlag(flag byte) bool {
	if flag == '=' {
		return false
	}
	for i := 0; i < len(s.Flags); i++ {
		if s.Flags[i] == flag {
			return true
		}
	}
	return false
}

// FlagSet is a 64-bit field indexed by [A-Za-z0-9], giving O(1) flag
// presence tests (the glossary entry for "Flag-bitset") instead of scanning
// the order-preserving Flags slice.
type FlagSet uint64

// flagBit maps a flag byte to its bit index in a FlagSet, or -1 if
// the byte can never be a flag character.
func flagBit(flag byte) int {
	switch {
	case flag >= 'A' && flag <= 'Z':
		return int(flag - 'A')
	case flag >= 'a' && flag <= 'z':
		return 26 + int(flag-'a')
	case flag >= '0' && flag <= '9':
		return 52 + int(flag-'0')
	default:
		return -1
	}
}

func (s FlagSet) has(flag byte) bool {
	bit := flagBit(flag)
	return bit >= 0 && s&(1<<uint(bit)) != 0
}

func (s *FlagSet) set(flag byte) {
	if bit := flagBit(flag); bit >= 0 {
		*s |= 1 << uint(bit)
	}
}

// Args is the result of parsing one invocation's raw token vector
// against a Spec: flags seen (in order, and as a bitset for O(1)
// lookup), flag-argument values (rotated to the front per the
// original's rule), and the remaining positional arguments.
type Args struct {
	Flags      []byte
	Set        FlagSet
	FlagArgs   []string
	Positional []string
}

// All returns the flag-arguments followed by the positional
// arguments, the single combined vector this design describes
// commands as receiving.
func (a Args) All() []string {
	out := make([]string, 0, len(a.FlagArgs)+len(a.Positional))
	out = append(out, a.FlagArgs...)
	out = append(out, a.Positional...)
	return out
}

// HasFlag reports whether flag was given, via the O(1) bitset test.
func (a Args) HasFlag(flag byte) bool {
	return a.Set.has(flag)
}

// ParseArgs extracts flags and flag-arguments from raw per spec,
// implementing the same left-to-right scan and flag-argument
// rotation as original_source/src/command/args.c's do_parse_args.
//
// Unless spec.NoFlagsAfterArgs is set, flags may appear anywhere in
// raw; a flag's required argument is always the next *separate*
// token (packed forms like `-earg` are rejected). A lone `--` token
// ends flag scanning and is itself discarded.
func ParseArgs(spec Spec, raw []string) (Args, ArgParseError, byte) {
	args := append([]string(nil), raw...)
	var flags []byte
	var flagArgs []string
	var set FlagSet

	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			args = append(args[:i], args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			if spec.NoFlagsAfterArgs {
				break
			}
			i++
			continue
		}

		consumedThisArg := false
		for j := 1; j < len(arg); j++ {
			flag := arg[j]
			if !spec.validFlag(flag) {
				return Args{}, ArgErrInvalidOption, flag
			}
			flags = append(flags, flag)
			set.set(flag)
			if len(flags) == maxFlags {
				return Args{}, ArgErrTooManyOptions, 0
			}
			if !spec.takesArg(flag) {
				continue
			}
			if j > 1 || j+1 < len(arg) {
				return Args{}, ArgErrOptionArgumentNotSeparate, flag
			}
			if i+1 >= len(args) {
				return Args{}, ArgErrOptionArgumentMissing, flag
			}
			flagArgs = append(flagArgs, args[i+1])
			// Remove both the flag token and its argument token.
			args = append(args[:i], args[i+2:]...)
			consumedThisArg = true
			break
		}
		if !consumedThisArg {
			args = append(args[:i], args[i+1:]...)
		}
	}

	nrArgs := len(args)
	if nrArgs < spec.MinArgs {
		return Args{}, ArgErrTooFewArguments, 0
	}
	if spec.MaxArgs != UnboundedArgs && nrArgs > spec.MaxArgs {
		return Args{}, ArgErrTooManyArguments, 0
	}

	return Args{Flags: flags, Set: set, FlagArgs: flagArgs, Positional: args}, ArgErrNone, 0
}

// ArgParseErrorMessage renders err (with its associated flag and the
// command's arity) into the same messages
// original_source/src/command/args.c's arg_parse_error_msg produces.
func ArgParseErrorMessage(cmdName string, spec Spec, nrArgs int, err ArgParseError, flag byte) error {
	switch err {
	case ArgErrInvalidOption:
		return errors.Errorf("%s: invalid option -%c", cmdName, flag)
	case ArgErrTooManyOptions:
		return errors.Errorf("%s: too many options given", cmdName)
	case ArgErrOptionArgumentMissing:
		return errors.Errorf("%s: option -%c requires an argument", cmdName, flag)
	case ArgErrOptionArgumentNotSeparate:
		return errors.Errorf("%s: option -%c must be given separately because it requires an argument", cmdName, flag)
	case ArgErrTooFewArguments:
		return errors.Errorf("%s: too few arguments (got: %d, minimum: %d)", cmdName, nrArgs, spec.MinArgs)
	case ArgErrTooManyArguments:
		return errors.Errorf("%s: too many arguments (got: %d, maximum: %d)", cmdName, nrArgs, spec.MaxArgs)
	default:
		return nil
	}
}
