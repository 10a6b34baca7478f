// Package console handles line-oriented prompting, table output and the
// system clipboard for the passman commands.
package console
