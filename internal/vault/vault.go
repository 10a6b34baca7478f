// Package vault persists account entries to a single plaintext JSON file.
//
// The file holds a top-level JSON array of entries in insertion order:
//
//	[{"account":"github","username":"alice","email":"a@x.com","password":"..."}]
//
// Every command reloads the whole array and mutating commands rewrite it in
// full. There is no locking; concurrent invocations race and the last writer wins.
package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Entry is one saved credential.
type Entry struct {
	Account  string `json:"account"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Store is the interface for loading and saving the full entry set.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Marshal encodes entries as a compact JSON array. A nil slice encodes as [].
func Marshal(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}

// wireEntry mirrors Entry with pointer fields so missing or null fields
// can be told apart from empty strings.
type wireEntry struct {
	Account  *string `json:"account"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Unmarshal decodes a JSON array of entries. The top-level value must be an
// array and every entry must carry all four string fields.
func Unmarshal(data []byte) ([]Entry, error) {
	var raw []*wireEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("vault is not a JSON array")
	}

	entries := make([]Entry, 0, len(raw))
	for i, w := range raw {
		if w == nil {
			return nil, fmt.Errorf("entry %d: null entry", i)
		}
		fields := []struct {
			name string
			val  *string
		}{
			{"account", w.Account},
			{"username", w.Username},
			{"email", w.Email},
			{"password", w.Password},
		}
		for _, f := range fields {
			if f.val == nil {
				return nil, fmt.Errorf("entry %d: missing field %q", i, f.name)
			}
		}
		entries = append(entries, Entry{
			Account:  *w.Account,
			Username: *w.Username,
			Email:    *w.Email,
			Password: *w.Password,
		})
	}
	return entries, nil
}

// Find returns the index of the first entry whose account matches name,
// ignoring case.
func Find(entries []Entry, name string) (int, bool) {
	for i, e := range entries {
		if strings.EqualFold(e.Account, name) {
			return i, true
		}
	}
	return -1, false
}

// Remove returns a copy of entries without the first entry matching name.
// The input slice is left untouched.
func Remove(entries []Entry, name string) ([]Entry, bool) {
	i, ok := Find(entries, name)
	if !ok {
		return entries, false
	}
	return slices.Delete(slices.Clone(entries), i, i+1), true
}
