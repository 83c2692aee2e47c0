// Package store keeps the client-side file state: the last fetched list, a
// loading flag and the last error message.
//
// State changes only through FileStore actions. Each action clears the error,
// raises the loading flag, performs one backend call and lowers the flag again
// whatever the outcome. Readers use the accessors or Subscribe.
package store
