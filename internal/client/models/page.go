// Package models holds the records exchanged with the portal REST API. The
// client treats them as read-mostly documents keyed by numeric id; the server
// owns their consistency.
package models

import (
	"bytes"
	"encoding/json"
)

// Page is one page of a paginated collection.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
}

// UnmarshalJSON accepts both the paginated envelope and a bare array; for the
// latter TotalElements is the array length.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		p.Content = items
		p.TotalElements = int64(len(items))
		return nil
	}

	var envelope struct {
		Content       []T    `json:"content"`
		TotalElements *int64 `json:"totalElements"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return err
	}
	p.Content = envelope.Content
	if envelope.TotalElements != nil {
		p.TotalElements = *envelope.TotalElements
	} else {
		p.TotalElements = int64(len(envelope.Content))
	}
	return nil
}

// Items returns Content, never nil.
func (p Page[T]) Items() []T {
	if p.Content == nil {
		return []T{}
	}
	return p.Content
}
