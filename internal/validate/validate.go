// Package validate checks free-text user input before it is substituted
// into a command. Rejection here is an input error, not a cancellation;
// callers re-prompt instead of returning to the menu.
package validate

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Kind declares what sort of value an action expects.
type Kind string

const (
	// KindNone means the action takes no free-text input.
	KindNone Kind = ""
	// KindPackage is a package name, optionally with epoch/version syntax.
	KindPackage Kind = "package"
	// KindModule is a module stream spec; same character rules as packages.
	KindModule Kind = "module"
	// KindID is a repository identifier.
	KindID Kind = "id"
	// KindPath must resolve to an existing regular file.
	KindPath Kind = "path"
)

// Error is a validation rejection. It is a distinct type so callers can
// tell "bad input" apart from "user cancelled".
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s input: %s", e.Kind, e.Reason)
}

// IsValidationError reports whether err is a validation rejection.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

var (
	// Package names: letters, digits, dot, underscore, plus, colon (epoch),
	// hyphen. Deliberately excludes path separators and shell metacharacters.
	packageRe = regexp.MustCompile(`^[A-Za-z0-9._+:-]+$`)
	// Repository ids are stricter: no plus, no colon.
	idRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// Check validates raw input against the declared kind. A nil return means
// the input is acceptable for substitution into a command argument.
func Check(kind Kind, raw string) error {
	if raw == "" {
		return &Error{Kind: kind, Reason: "input is empty"}
	}

	switch kind {
	case KindPackage, KindModule:
		if strings.ContainsAny(raw, "/\\") {
			return &Error{Kind: kind, Reason: "path separators are not allowed"}
		}
		if !packageRe.MatchString(raw) {
			return &Error{Kind: kind, Reason: "only letters, digits and . _ + : - are allowed"}
		}
		return nil
	case KindID:
		if !idRe.MatchString(raw) {
			return &Error{Kind: kind, Reason: "only letters, digits and . _ - are allowed"}
		}
		return nil
	case KindPath:
		info, err := os.Stat(raw)
		if err != nil {
			return &Error{Kind: kind, Reason: "file does not exist"}
		}
		if !info.Mode().IsRegular() {
			return &Error{Kind: kind, Reason: "not a regular file"}
		}
		return nil
	default:
		return &Error{Kind: kind, Reason: "unsupported input kind"}
	}
}
