package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) record(call string, args ...string) {
	f.calls = append(f.calls, call)
	f.args = append(f.args, args...)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error { f.record("whoami"); return nil }
func (f *fakeExec) List(ctx context.Context) error   { f.record("list"); return nil }
func (f *fakeExec) Stats(ctx context.Context) error  { f.record("stats"); return nil }
func (f *fakeExec) Search(ctx context.Context, text string) error {
	f.record("search", text)
	return nil
}
func (f *fakeExec) FilterGenre(ctx context.Context, genre string) error {
	f.record("genre", genre)
	return nil
}
func (f *fakeExec) FilterStatus(ctx context.Context, status string) error {
	f.record("status", status)
	return nil
}
func (f *fakeExec) ClearFilters(ctx context.Context) error { f.record("clear"); return nil }
func (f *fakeExec) Add(ctx context.Context) error          { f.record("add"); return nil }
func (f *fakeExec) Edit(ctx context.Context, id string) error {
	f.record("edit", id)
	return nil
}
func (f *fakeExec) Show(ctx context.Context, id string) error {
	f.record("show", id)
	return nil
}
func (f *fakeExec) SetStatus(ctx context.Context, id, status string) error {
	f.record("setstatus", id, status)
	return nil
}
func (f *fakeExec) Download(ctx context.Context, id string) error {
	f.record("download", id)
	return nil
}
func (f *fakeExec) Reload(ctx context.Context) error { f.record("reload"); return nil }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"list",
		"search dune messiah",
		"genre fiksi",
		"status sudah_dibaca",
		"clear",
		"setstatus 42 favorit",
		"download 42",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "list", "search", "genre", "status", "clear", "setstatus", "download"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantOrder)
	}
	for i, c := range exec.calls {
		if c != wantOrder[i] {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, c, wantOrder[i], exec.calls)
		}
	}

	wantArgs := []string{"dune messiah", "fiksi", "sudah_dibaca", "42", "favorit", "42"}
	if len(exec.args) != len(wantArgs) {
		t.Fatalf("args mismatch: got %v, want %v", exec.args, wantArgs)
	}
	for i, a := range exec.args {
		if a != wantArgs[i] {
			t.Fatalf("arg %d: got %q, want %q", i, a, wantArgs[i])
		}
	}
}

func TestRunREPL_UsageWithoutArgs(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	// every argument-taking command except search requires its argument
	input := strings.NewReader("genre\nstatus\nedit\nshow\nsetstatus 42\ndownload\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EmptySearchClearsText(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("search\nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "search" {
		t.Fatalf("expected a single search call, got %v", exec.calls)
	}
	if exec.args[0] != "" {
		t.Fatalf("expected empty search text, got %q", exec.args[0])
	}
}
