// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotesFieldID is the identifier of the plain-text notes field inside a
// Secure Note template, as reported by the 1Password CLI.
const NotesFieldID = "notesPlain"

// NoteTemplate is a Secure Note item template as returned by
// `op item template get`. Templates are arbitrary-shape JSON documents;
// only the "fields" sequence is ever inspected, everything else is carried
// through to `op item create` untouched.
type NoteTemplate map[string]any

// Clone returns a deep copy of the template. Mutating the copy never
// affects the original document.
func (t NoteTemplate) Clone() NoteTemplate {
	if t == nil {
		return nil
	}

	return deepCopyMap(t)
}

// SetNotesPlain sets the "value" key of every entry in the "fields"
// sequence whose "id" equals [NotesFieldID]. It reports whether at least
// one field was updated; a template without such a field is left unchanged.
func (t NoteTemplate) SetNotesPlain(value string) bool {
	fields, ok := t["fields"].([]any)
	if !ok {
		return false
	}

	updated := false
	for _, entry := range fields {
		field, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		if id, ok := field["id"].(string); ok && id == NotesFieldID {
			field["value"] = value
			updated = true
		}
	}

	return updated
}

func deepCopyMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = deepCopyValue(value)
	}

	return dst
}

func deepCopyValue(src any) any {
	switch value := src.(type) {
	case map[string]any:
		return deepCopyMap(value)
	case []any:
		dst := make([]any, len(value))
		for i, item := range value {
			dst[i] = deepCopyValue(item)
		}
		return dst
	default:
		// JSON scalars (string, float64, bool, nil) are immutable.
		return value
	}
}
