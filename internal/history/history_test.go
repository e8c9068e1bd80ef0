package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestAppendAndRecent(t *testing.T) {
	j := openTestJournal(t)

	rec := &Record{
		ActionID: "install",
		Command:  "sudo dnf install httpd",
		Tier:     "normal",
		ExitCode: 0,
		Outcome:  "success",
		Duration: 1500 * time.Millisecond,
	}
	if err := j.Append(rec); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if rec.ID == "" {
		t.Error("Append did not assign an id")
	}

	records, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	got := records[0]
	if got.ActionID != "install" || got.Outcome != "success" || got.Command != rec.Command {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Duration != 1500*time.Millisecond {
		t.Errorf("duration = %v, want 1.5s", got.Duration)
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	j := openTestJournal(t)

	old := &Record{ActionID: "search", Command: "dnf search vim", Tier: "info",
		Outcome: "success", StartedAt: time.Now().UTC().Add(-time.Hour)}
	recent := &Record{ActionID: "upgrade", Command: "sudo dnf upgrade --refresh", Tier: "normal",
		Outcome: "success", StartedAt: time.Now().UTC()}
	for _, r := range []*Record{old, recent} {
		if err := j.Append(r); err != nil {
			t.Fatal(err)
		}
	}

	records, err := j.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 || records[0].ActionID != "upgrade" {
		t.Errorf("expected newest first, got %+v", records)
	}
}

func TestRecentLimit(t *testing.T) {
	j := openTestJournal(t)
	for i := 0; i < 5; i++ {
		if err := j.Append(&Record{ActionID: "search", Command: "dnf search x",
			Tier: "info", Outcome: "success",
			StartedAt: time.Now().UTC().Add(time.Duration(i) * time.Second)}); err != nil {
			t.Fatal(err)
		}
	}
	records, err := j.Recent(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestPrune(t *testing.T) {
	j := openTestJournal(t)

	stale := &Record{ActionID: "search", Command: "dnf search a", Tier: "info",
		Outcome: "success", StartedAt: time.Now().UTC().AddDate(0, 0, -120)}
	fresh := &Record{ActionID: "search", Command: "dnf search b", Tier: "info",
		Outcome: "success", StartedAt: time.Now().UTC()}
	for _, r := range []*Record{stale, fresh} {
		if err := j.Append(r); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := j.Prune(90)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("pruned %d records, want 1", removed)
	}

	records, err := j.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Command != "dnf search b" {
		t.Errorf("wrong record survived: %+v", records)
	}
}

func TestPruneDisabled(t *testing.T) {
	j := openTestJournal(t)
	if err := j.Append(&Record{ActionID: "search", Command: "dnf search a",
		Tier: "info", Outcome: "success",
		StartedAt: time.Now().UTC().AddDate(-1, 0, 0)}); err != nil {
		t.Fatal(err)
	}
	removed, err := j.Prune(0)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 0 {
		t.Errorf("Prune(0) removed %d records, want 0", removed)
	}
}

func TestOpenRejectsDirectory(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Error("Open accepted a directory path")
	}
}
