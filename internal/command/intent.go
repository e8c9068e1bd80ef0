// Package command resolves catalog actions into executable intents.
package command

import (
	"errors"
	"fmt"
	"strings"

	shellwords "github.com/mattn/go-shellwords"

	"github.com/aam-007/syswiz/internal/catalog"
	"github.com/aam-007/syswiz/internal/risk"
	"github.com/aam-007/syswiz/internal/validate"
)

// Resolution errors.
var (
	// ErrInputRequired is returned when the action needs input and none
	// was supplied.
	ErrInputRequired = errors.New("action requires input")
	// ErrInputUnexpected is returned when input was supplied for an
	// action that takes none.
	ErrInputUnexpected = errors.New("action takes no input")
)

// ResolveOptions carries process-level context into intent resolution.
type ResolveOptions struct {
	// AsRoot reports whether the process already runs with euid 0.
	// When false, privileged actions are executed through sudo.
	AsRoot bool
	// DNF replaces the leading "dnf" template token, e.g. an absolute
	// path or an alternative front-end with fixed flags. Empty keeps
	// the template token.
	DNF []string
}

// Intent is an action with validated argument values substituted into its
// template. It is created only after validation succeeds and is consumed
// exactly once by the runner.
type Intent struct {
	Action catalog.Action
	Tier   risk.Tier
	// Argv is the fully resolved argument vector. It is passed to the
	// process as discrete tokens; a shell never re-parses it.
	Argv []string
	// Sudo indicates the vector is executed through sudo because the
	// process does not hold root.
	Sudo bool
}

// Resolve validates input against the action's declared kind and
// substitutes it into the template.
func Resolve(action catalog.Action, input string, opts ResolveOptions) (*Intent, error) {
	if action.NeedsInput() {
		if input == "" {
			return nil, ErrInputRequired
		}
		if err := validate.Check(action.Input, input); err != nil {
			return nil, err
		}
	} else if input != "" {
		return nil, ErrInputUnexpected
	}

	argv := make([]string, 0, len(action.Argv)+len(opts.DNF))
	for i, tok := range action.Argv {
		if i == 0 && tok == "dnf" && len(opts.DNF) > 0 {
			argv = append(argv, opts.DNF...)
			continue
		}
		if strings.Contains(tok, catalog.Placeholder) {
			tok = strings.ReplaceAll(tok, catalog.Placeholder, input)
		}
		argv = append(argv, tok)
	}

	return &Intent{
		Action: action,
		Tier:   action.Tier(),
		Argv:   argv,
		Sudo:   action.Privileged && !opts.AsRoot,
	}, nil
}

// ExecArgv returns the vector actually handed to the operating system,
// including the sudo prefix when one applies.
func (in *Intent) ExecArgv() []string {
	if in.Sudo {
		return append([]string{"sudo"}, in.Argv...)
	}
	return in.Argv
}

// Preview returns the exact command string shown to the user before
// confirmation: the executed vector joined by single spaces. What is
// displayed is byte-identical to what runs.
func (in *Intent) Preview() string {
	return strings.Join(in.ExecArgv(), " ")
}

// QuotedPreview returns a copy-pasteable shell rendering of the vector.
// Display and journaling only; execution always uses the raw vector.
func (in *Intent) QuotedPreview() string {
	argv := in.ExecArgv()
	quoted := make([]string, len(argv))
	for i, tok := range argv {
		quoted[i] = shellQuote(tok)
	}
	return strings.Join(quoted, " ")
}

// shellQuote quotes a single token for display when it contains
// characters a shell would interpret.
func shellQuote(tok string) string {
	if tok == "" {
		return "''"
	}
	if !strings.ContainsAny(tok, " \t\n'\"\\$`&|;<>(){}*?#~") {
		return tok
	}
	return "'" + strings.ReplaceAll(tok, "'", `'\''`) + "'"
}

// ParseArgv tokenizes a configured command override (such as
// general.dnf_path with flags) into an argument vector.
func ParseArgv(raw string) ([]string, error) {
	p := shellwords.NewParser()
	tokens, err := p.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse command %q: %w", raw, err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	return tokens, nil
}
