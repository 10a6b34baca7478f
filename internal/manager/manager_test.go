package manager

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/benaskins/passman/internal/console"
	"github.com/benaskins/passman/internal/genpass"
	"github.com/benaskins/passman/internal/vault"
)

// Unit tests use MemoryStore and a recording clipboard; nothing touches disk
// or the OS clipboard.

type fakeClipboard struct {
	copied []string
	err    error
}

func (c *fakeClipboard) Copy(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

type fixedGenerator string

func (g fixedGenerator) Generate() string { return string(g) }

type failingStore struct {
	loadErr error
	saveErr error
	entries []vault.Entry
}

func (s *failingStore) Load() ([]vault.Entry, error) { return s.entries, s.loadErr }
func (s *failingStore) Save([]vault.Entry) error     { return s.saveErr }

type harness struct {
	m     *Manager
	store *vault.MemoryStore
	clip  *fakeClipboard
	out   *bytes.Buffer
}

func newHarness(input string, entries ...vault.Entry) *harness {
	h := &harness{
		store: vault.NewMemoryStore(entries...),
		clip:  &fakeClipboard{},
		out:   &bytes.Buffer{},
	}
	h.m = New(Options{
		Store:     h.store,
		Prompter:  console.NewPrompter(strings.NewReader(input), h.out),
		Clipboard: h.clip,
		Generator: fixedGenerator("Gen3rated!Passw0rdXY"),
		Out:       h.out,
	})
	return h
}

func (h *harness) entries(t *testing.T) []vault.Entry {
	t.Helper()
	entries, err := h.store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return entries
}

func TestAddWithTypedPassword(t *testing.T) {
	h := newHarness("github\nalice\na@x.com\nn\np\n")

	if err := h.m.Add(); err != nil {
		t.Fatalf("Add: %v", err)
	}

	want := []vault.Entry{{Account: "github", Username: "alice", Email: "a@x.com", Password: "p"}}
	if got := h.entries(t); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if !strings.Contains(h.out.String(), "Account added successfully!") {
		t.Errorf("missing confirmation in %q", h.out.String())
	}
}

func TestAddWithGeneratedPassword(t *testing.T) {
	h := newHarness("github\nalice\na@x.com\ny\n")

	if err := h.m.Add(); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got := h.entries(t)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Password != "Gen3rated!Passw0rdXY" {
		t.Errorf("expected generated password, got %q", got[0].Password)
	}
	if strings.Contains(h.out.String(), "Please enter your password:") {
		t.Error("should not prompt for a password when generating")
	}
}

func TestAddWithRealGenerator(t *testing.T) {
	store := vault.NewMemoryStore()
	out := &bytes.Buffer{}
	m := New(Options{
		Store:     store,
		Prompter:  console.NewPrompter(strings.NewReader("a\nu\ne\nY\n"), out),
		Generator: genpass.New(nil),
		Out:       out,
	})

	if err := m.Add(); err != nil {
		t.Fatalf("Add: %v", err)
	}
	entries, _ := store.Load()
	if !genpass.Valid(entries[0].Password) {
		t.Errorf("stored password %q is not a valid generated password", entries[0].Password)
	}
}

func TestAddAppends(t *testing.T) {
	h := newHarness("second\nbob\nb@x.com\nn\nq\n", vault.Entry{Account: "first"})

	if err := h.m.Add(); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got := h.entries(t)
	if len(got) != 2 || got[0].Account != "first" || got[1].Account != "second" {
		t.Errorf("expected [first second], got %v", got)
	}
}

func TestAddThenGet(t *testing.T) {
	h := newHarness("github\nalice\na@x.com\nn\np\nGitHub\nn\n")

	if err := h.m.Add(); err != nil {
		t.Fatalf("Add: %v", err)
	}
	h.out.Reset()

	if err := h.m.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}

	out := h.out.String()
	if !strings.Contains(out, "alice") || !strings.Contains(out, "a@x.com") {
		t.Errorf("expected entry table in output:\n%s", out)
	}
	if !strings.Contains(out, "Password for account 'github': p") {
		t.Errorf("expected plain-text password disclosure:\n%s", out)
	}
}

func TestGetCopiesToClipboard(t *testing.T) {
	h := newHarness("github\ny\n",
		vault.Entry{Account: "github", Username: "alice", Email: "a@x.com", Password: "s3cret"})

	if err := h.m.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if !slices.Equal(h.clip.copied, []string{"s3cret"}) {
		t.Errorf("expected s3cret copied, got %v", h.clip.copied)
	}
	out := h.out.String()
	if !strings.Contains(out, "Password copied to clipboard!") {
		t.Errorf("missing copy confirmation:\n%s", out)
	}
	if strings.Contains(out, "s3cret") {
		t.Errorf("password printed despite clipboard copy:\n%s", out)
	}
}

func TestGetClipboardFailureIsFatal(t *testing.T) {
	h := newHarness("github\ny\n", vault.Entry{Account: "github", Password: "s3cret"})
	h.clip.err = errors.New("no display")

	if err := h.m.Get(); err == nil {
		t.Fatal("expected clipboard error")
	}
}

func TestGetNotFound(t *testing.T) {
	h := newHarness("gitlab\n", vault.Entry{Account: "github"})

	if err := h.m.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !strings.Contains(h.out.String(), "No account found with name 'gitlab'") {
		t.Errorf("expected not-found message, got:\n%s", h.out.String())
	}
	if strings.Contains(h.out.String(), "clipboard") {
		t.Error("should not offer clipboard copy for a missing account")
	}
}

func TestGetFirstMatchWins(t *testing.T) {
	h := newHarness("FOO\nn\n",
		vault.Entry{Account: "Foo", Password: "first"},
		vault.Entry{Account: "foo", Password: "second"})

	if err := h.m.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}
	out := h.out.String()
	if !strings.Contains(out, "Password for account 'Foo': first") {
		t.Errorf("expected first entry, got:\n%s", out)
	}
	if strings.Contains(out, "second") {
		t.Errorf("second entry should never be reached:\n%s", out)
	}
}

func TestListEmpty(t *testing.T) {
	h := newHarness("")

	if err := h.m.List(); err != nil {
		t.Fatalf("List: %v", err)
	}
	out := h.out.String()
	if out != "No accounts found in the database.\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestListRendersTable(t *testing.T) {
	h := newHarness("",
		vault.Entry{Account: "github", Username: "alice", Email: "a@x.com", Password: "pw1"},
		vault.Entry{Account: "mail", Username: "bob", Email: "b@x.com", Password: "pw2"})

	if err := h.m.List(); err != nil {
		t.Fatalf("List: %v", err)
	}
	out := h.out.String()
	for _, want := range []string{"github", "alice", "mail", "bob"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "pw1") || strings.Contains(out, "pw2") {
		t.Errorf("list leaked a password:\n%s", out)
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	h := newHarness("GITHUB\n",
		vault.Entry{Account: "github", Username: "alice"},
		vault.Entry{Account: "gitlab", Username: "bob"})

	if err := h.m.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got := h.entries(t)
	if len(got) != 1 || got[0].Account != "gitlab" {
		t.Errorf("expected only gitlab left, got %v", got)
	}
	if !strings.Contains(h.out.String(), "Account deleted successfully!") {
		t.Errorf("missing confirmation:\n%s", h.out.String())
	}
}

func TestDeleteNotFoundLeavesStore(t *testing.T) {
	entries := []vault.Entry{{Account: "github"}, {Account: "gitlab"}}
	h := newHarness("bitbucket\n", entries...)

	if err := h.m.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if got := h.entries(t); !slices.Equal(got, entries) {
		t.Errorf("store changed: %v", got)
	}
	if h.store.Saves() != 0 {
		t.Errorf("expected no saves, got %d", h.store.Saves())
	}
	if !strings.Contains(h.out.String(), "No account found with name 'bitbucket'") {
		t.Errorf("missing not-found message:\n%s", h.out.String())
	}
}

func TestDeleteFirstMatchWins(t *testing.T) {
	h := newHarness("FOO\n",
		vault.Entry{Account: "Foo", Username: "first"},
		vault.Entry{Account: "foo", Username: "second"})

	if err := h.m.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got := h.entries(t)
	if len(got) != 1 || got[0].Username != "second" {
		t.Errorf("expected only the second entry left, got %v", got)
	}
}

func TestDeleteEmptyStore(t *testing.T) {
	h := newHarness("github\n")

	if err := h.m.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	out := h.out.String()
	if out != "No accounts available to delete.\n" {
		t.Errorf("unexpected output %q", out)
	}
	if h.store.Saves() != 0 {
		t.Errorf("expected no saves, got %d", h.store.Saves())
	}
}

func TestLoadErrorsAreFatal(t *testing.T) {
	loadErr := errors.New("parsing vault: unexpected end of JSON input")
	store := &failingStore{loadErr: loadErr}
	m := New(Options{
		Store:    store,
		Prompter: console.NewPrompter(strings.NewReader("x\nx\nx\nn\nx\n"), &bytes.Buffer{}),
		Out:      &bytes.Buffer{},
	})

	for name, run := range map[string]func() error{
		"add":    m.Add,
		"list":   m.List,
		"get":    m.Get,
		"delete": m.Delete,
	} {
		if err := run(); !errors.Is(err, loadErr) {
			t.Errorf("%s: expected load error, got %v", name, err)
		}
	}
}

func TestSaveErrorIsFatal(t *testing.T) {
	saveErr := errors.New("writing vault: read-only file system")
	store := &failingStore{saveErr: saveErr}
	m := New(Options{
		Store:    store,
		Prompter: console.NewPrompter(strings.NewReader("a\nu\ne\nn\np\n"), &bytes.Buffer{}),
		Out:      &bytes.Buffer{},
	})

	if err := m.Add(); !errors.Is(err, saveErr) {
		t.Errorf("expected save error, got %v", err)
	}
}

func TestGenerate(t *testing.T) {
	out := &bytes.Buffer{}
	m := New(Options{Generator: genpass.New(nil), Out: out})

	if err := m.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pw := strings.TrimSpace(out.String()); !genpass.Valid(pw) {
		t.Errorf("invalid generated password %q", pw)
	}
}
