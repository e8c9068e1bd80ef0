package command

import (
	"strings"
	"testing"

	"github.com/aam-007/syswiz/internal/catalog"
	"github.com/aam-007/syswiz/internal/risk"
	"github.com/aam-007/syswiz/internal/validate"
)

func installAction() catalog.Action {
	return catalog.Action{
		ID:          "install",
		Title:       "Install Package",
		Description: "Installs a specific package.",
		Argv:        []string{"dnf", "install", catalog.Placeholder},
		Input:       validate.KindPackage,
		Prompt:      "Enter package name:",
		Privileged:  true,
	}
}

func searchAction() catalog.Action {
	return catalog.Action{
		ID:          "search",
		Title:       "Search Packages",
		Description: "Search repositories for a package by keyword.",
		Argv:        []string{"dnf", "search", catalog.Placeholder},
		Input:       validate.KindPackage,
		Prompt:      "Enter keyword to search:",
	}
}

func TestResolveSubstitutesInput(t *testing.T) {
	in, err := Resolve(installAction(), "httpd", ResolveOptions{AsRoot: true})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := []string{"dnf", "install", "httpd"}
	if len(in.Argv) != len(want) {
		t.Fatalf("argv = %v, want %v", in.Argv, want)
	}
	for i := range want {
		if in.Argv[i] != want[i] {
			t.Errorf("argv[%d] = %q, want %q", i, in.Argv[i], want[i])
		}
	}
	if in.Tier != risk.TierNormal {
		t.Errorf("tier = %v, want normal", in.Tier)
	}
}

func TestResolveRejectsShellMetacharacters(t *testing.T) {
	_, err := Resolve(installAction(), "httpd; rm -rf /", ResolveOptions{AsRoot: true})
	if err == nil {
		t.Fatal("Resolve accepted a shell-injection attempt")
	}
	if !validate.IsValidationError(err) {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestResolveMissingAndUnexpectedInput(t *testing.T) {
	if _, err := Resolve(installAction(), "", ResolveOptions{AsRoot: true}); err != ErrInputRequired {
		t.Errorf("missing input: err = %v, want ErrInputRequired", err)
	}

	noInput := catalog.Action{
		ID:   "upgrade",
		Argv: []string{"dnf", "upgrade", "--refresh"},
	}
	if _, err := Resolve(noInput, "stray", ResolveOptions{AsRoot: true}); err != ErrInputUnexpected {
		t.Errorf("unexpected input: err = %v, want ErrInputUnexpected", err)
	}
}

func TestSudoPrefixDependsOnPrivilege(t *testing.T) {
	// Privileged action without root gets a sudo prefix.
	in, err := Resolve(installAction(), "vim", ResolveOptions{AsRoot: false})
	if err != nil {
		t.Fatal(err)
	}
	if got := in.ExecArgv()[0]; got != "sudo" {
		t.Errorf("ExecArgv()[0] = %q, want sudo", got)
	}

	// The same action running as root does not.
	in, err = Resolve(installAction(), "vim", ResolveOptions{AsRoot: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := in.ExecArgv()[0]; got != "dnf" {
		t.Errorf("ExecArgv()[0] = %q, want dnf", got)
	}

	// Unprivileged actions never get sudo.
	in, err = Resolve(searchAction(), "httpd", ResolveOptions{AsRoot: false})
	if err != nil {
		t.Fatal(err)
	}
	if in.Sudo {
		t.Error("search resolved with sudo")
	}
}

func TestPreviewMatchesExecArgv(t *testing.T) {
	in, err := Resolve(installAction(), "1:NetworkManager", ResolveOptions{AsRoot: false})
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join(in.ExecArgv(), " ")
	if in.Preview() != want {
		t.Errorf("Preview() = %q, want %q", in.Preview(), want)
	}
	if strings.Contains(in.Preview(), catalog.Placeholder) {
		t.Error("preview still contains the placeholder")
	}
}

func TestResolveDNFOverride(t *testing.T) {
	in, err := Resolve(installAction(), "httpd", ResolveOptions{
		AsRoot: true,
		DNF:    []string{"/usr/bin/dnf5", "--color=never"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "/usr/bin/dnf5 --color=never install httpd"
	if in.Preview() != want {
		t.Errorf("Preview() = %q, want %q", in.Preview(), want)
	}
}

func TestQuotedPreview(t *testing.T) {
	in := &Intent{Argv: []string{"dnf", "search", "a b"}}
	if got := in.QuotedPreview(); got != "dnf search 'a b'" {
		t.Errorf("QuotedPreview() = %q", got)
	}
}

func TestParseArgv(t *testing.T) {
	tokens, err := ParseArgv("/usr/bin/dnf5 --color=never")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 || tokens[0] != "/usr/bin/dnf5" {
		t.Errorf("ParseArgv = %v", tokens)
	}
	if _, err := ParseArgv(""); err == nil {
		t.Error("ParseArgv accepted an empty command")
	}
	if _, err := ParseArgv("'unterminated"); err == nil {
		t.Error("ParseArgv accepted an unterminated quote")
	}
}
