// Package models defines the records exchanged with the file backend.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// FileRecord is a server-defined description of an uploaded file. The client
// does not interpret it beyond display helpers; it is passed through as
// decoded. Numbers are kept as json.Number so ids survive unchanged.
type FileRecord map[string]any

// nameKeys lists the keys known backends use for a display name, in order.
var nameKeys = []string{"name", "file_name", "filename", "original_name", "file"}

// ID returns the record's "id" as a string, or "" if absent.
func (r FileRecord) ID() string {
	return stringify(r["id"])
}

// Name returns the first present display-name field, or "".
func (r FileRecord) Name() string {
	for _, k := range nameKeys {
		if s := stringify(r[k]); s != "" {
			return s
		}
	}
	return ""
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// DecodeRecord decodes a single JSON object. An empty body yields an empty
// record.
func DecodeRecord(r io.Reader) (FileRecord, error) {
	var rec FileRecord
	if err := decode(r, &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = FileRecord{}
	}
	return rec, nil
}

// DecodeList decodes a JSON array of records, keeping server order. An empty
// body or JSON null yields an empty, non-nil slice.
func DecodeList(r io.Reader) ([]FileRecord, error) {
	var list []FileRecord
	if err := decode(r, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []FileRecord{}
	}
	return list, nil
}

func decode(r io.Reader, v any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
