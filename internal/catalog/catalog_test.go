package catalog

import (
	"testing"

	"github.com/aam-007/syswiz/internal/validate"
)

func testCatalog() []Category {
	return Catalog(Options{ReleaseVer: "42"})
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, cat := range testCatalog() {
		for _, a := range cat.Actions {
			if seen[a.ID] {
				t.Errorf("duplicate action id %q", a.ID)
			}
			seen[a.ID] = true
		}
	}
}

func TestCatalogActionsWellFormed(t *testing.T) {
	for _, cat := range testCatalog() {
		if cat.Title == "" {
			t.Error("category with empty title")
		}
		for _, a := range cat.Actions {
			if a.ID == "" || a.Title == "" || a.Description == "" {
				t.Errorf("action %q missing id/title/description", a.ID)
			}
			if len(a.Argv) == 0 {
				t.Errorf("action %q has empty argv template", a.ID)
				continue
			}
			if a.Argv[0] != "dnf" {
				t.Errorf("action %q argv[0] = %q, want dnf", a.ID, a.Argv[0])
			}
		}
	}
}

func TestPlaceholderMatchesInputRequirement(t *testing.T) {
	for _, cat := range testCatalog() {
		for _, a := range cat.Actions {
			if a.NeedsInput() != a.HasPlaceholder() {
				t.Errorf("action %q: NeedsInput=%v but HasPlaceholder=%v",
					a.ID, a.NeedsInput(), a.HasPlaceholder())
			}
			if a.NeedsInput() && a.Prompt == "" {
				t.Errorf("action %q needs input but has no prompt", a.ID)
			}
		}
	}
}

func TestInputKindsSupported(t *testing.T) {
	supported := map[validate.Kind]bool{
		validate.KindNone:    true,
		validate.KindPackage: true,
		validate.KindModule:  true,
		validate.KindID:      true,
		validate.KindPath:    true,
	}
	for _, cat := range testCatalog() {
		for _, a := range cat.Actions {
			if !supported[a.Input] {
				t.Errorf("action %q declares unsupported input kind %q", a.ID, a.Input)
			}
		}
	}
}

func TestReleaseVerSubstitution(t *testing.T) {
	cats := Catalog(Options{ReleaseVer: "41"})
	a, ok := Lookup(cats, "enable-fusion")
	if !ok {
		t.Fatal("enable-fusion not found")
	}
	found := false
	for _, tok := range a.Argv {
		if tok == "https://mirrors.rpmfusion.org/free/fedora/rpmfusion-free-release-41.noarch.rpm" {
			found = true
		}
	}
	if !found {
		t.Errorf("release version not substituted into fusion URLs: %v", a.Argv)
	}
}

func TestLookup(t *testing.T) {
	cats := testCatalog()
	if _, ok := Lookup(cats, "install"); !ok {
		t.Error("Lookup(install) failed")
	}
	if _, ok := Lookup(cats, "no-such-action"); ok {
		t.Error("Lookup(no-such-action) unexpectedly succeeded")
	}
}

func TestReadOnlyActionsAreUnprivileged(t *testing.T) {
	readOnly := []string{"search", "info", "list-installed", "list-repos", "check-update", "check-broken"}
	cats := testCatalog()
	for _, id := range readOnly {
		a, ok := Lookup(cats, id)
		if !ok {
			t.Errorf("action %q not found", id)
			continue
		}
		if a.Privileged {
			t.Errorf("read-only action %q marked privileged", id)
		}
	}
}
