// Package models defines server-side data models persisted in the database.
package models

import "time"

// Kinds of uploaded files. Labels arrive on their own endpoint but are
// otherwise stored like any other file.
const (
	KindFile  = "file"
	KindLabel = "label"
)

// File describes an uploaded file. The content itself lives in blob storage
// under StorageKey.
type File struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	StorageKey  string    `json:"-"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
