// Package cli provides the filedesk command-line client.
//
// It wires configuration, the HTTP client, the file store and a background
// connectivity watcher. Commands run either one at a time from os.Args or
// interactively from a REPL:
//
//   - list            fetch and print the file list
//   - upload <path>   upload a file, then refresh the list
//   - label <path>    upload a label file, then refresh the list
//   - delete <id>     delete a file, then refresh the list
//   - status          probe the backend and print the connection mode
//
// After every command the store state is rendered: a loading marker, the
// error message if any, then the list.
package cli
