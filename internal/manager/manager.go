// Package manager implements the passman commands on top of a vault.Store.
//
// Each handler loads the full entry set, prompts as needed and, for
// mutations, saves the full set back. Lookups by account name are
// case-insensitive and stop at the first match.
package manager

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/benaskins/passman/internal/console"
	"github.com/benaskins/passman/internal/vault"
)

// PasswordGenerator produces new random passwords.
type PasswordGenerator interface {
	Generate() string
}

// Options configures a Manager.
type Options struct {
	Store     vault.Store
	Prompter  *console.Prompter
	Clipboard console.Clipboard
	Generator PasswordGenerator
	Out       io.Writer
}

// Manager runs the account commands.
type Manager struct {
	store     vault.Store
	prompt    *console.Prompter
	clipboard console.Clipboard
	generator PasswordGenerator
	out       io.Writer
}

// New creates a Manager from opts.
func New(opts Options) *Manager {
	return &Manager{
		store:     opts.Store,
		prompt:    opts.Prompter,
		clipboard: opts.Clipboard,
		generator: opts.Generator,
		out:       opts.Out,
	}
}

// Add prompts for a new entry, appends it and saves the store.
func (m *Manager) Add() error {
	entries, err := m.store.Load()
	if err != nil {
		return err
	}

	var e vault.Entry
	if e.Account, err = m.prompt.Text("Enter account:"); err != nil {
		return err
	}
	if e.Username, err = m.prompt.Text("Enter username:"); err != nil {
		return err
	}
	if e.Email, err = m.prompt.Text("Enter email:"); err != nil {
		return err
	}

	generate, err := m.prompt.YesNo("Generate password? [y/n]:")
	if err != nil {
		return err
	}
	if generate {
		e.Password = m.generator.Generate()
	} else if e.Password, err = m.prompt.Secret("Please enter your password:"); err != nil {
		return err
	}

	entries = append(entries, e)
	if err := m.store.Save(entries); err != nil {
		return err
	}
	slog.Debug("account added", "account", e.Account, "generated", generate)
	fmt.Fprintln(m.out, "Account added successfully!")
	return nil
}

// List prints every entry as a table.
func (m *Manager) List() error {
	entries, err := m.store.Load()
	if err != nil {
		return err
	}
	return m.list(entries)
}

func (m *Manager) list(entries []vault.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(m.out, "No accounts found in the database.")
		return nil
	}
	return console.RenderTable(m.out, entries)
}

// Get looks up one entry and either copies its password to the clipboard
// or prints it.
func (m *Manager) Get() error {
	name, err := m.prompt.Text("Enter your account's name:")
	if err != nil {
		return err
	}

	entries, err := m.store.Load()
	if err != nil {
		return err
	}

	i, ok := vault.Find(entries, name)
	if !ok {
		fmt.Fprintf(m.out, "No account found with name '%s'\n", name)
		return nil
	}
	e := entries[i]

	if err := console.RenderEntry(m.out, e); err != nil {
		return err
	}

	copyIt, err := m.prompt.YesNo("Do you want to copy the password to clipboard? [y/n]")
	if err != nil {
		return err
	}
	if !copyIt {
		fmt.Fprintf(m.out, "Password for account '%s': %s\n", e.Account, e.Password)
		return nil
	}

	if err := m.clipboard.Copy(e.Password); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Password copied to clipboard!")
	return nil
}

// Delete lists the entries, asks which one to remove and saves the result.
// An empty store prints a message and returns without prompting.
func (m *Manager) Delete() error {
	entries, err := m.store.Load()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(m.out, "No accounts available to delete.")
		return nil
	}

	if err := m.list(entries); err != nil {
		return err
	}

	name, err := m.prompt.Text("Which account you want to delete?")
	if err != nil {
		return err
	}

	remaining, ok := vault.Remove(entries, name)
	if !ok {
		fmt.Fprintf(m.out, "No account found with name '%s'\n", name)
		return nil
	}
	if err := m.store.Save(remaining); err != nil {
		return err
	}
	slog.Debug("account deleted", "account", name)
	fmt.Fprintln(m.out, "Account deleted successfully!")
	return nil
}

// Generate prints a fresh password without touching the store.
func (m *Manager) Generate() error {
	_, err := fmt.Fprintln(m.out, m.generator.Generate())
	return err
}
