// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// ItemIDFromJSON extracts the identifier of a freshly created item from the
// raw `op item create --format=json` response.
//
// The CLI has reported the identifier under "id" or "uuid" depending on its
// version, so both keys are probed, "id" first. The first key present in
// the document wins; if its value is not a string the identifier is
// considered missing and an empty string is returned. A response that is
// valid JSON but not an object has no identifier either. An empty result is
// not an error here — callers decide how to report it.
//
// A response that is not valid JSON is a contract violation and returns an
// error.
func ItemIDFromJSON(data []byte) (string, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("decode item create response: %w", err)
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		return "", nil
	}

	for _, key := range []string{"id", "uuid"} {
		value, ok := doc[key]
		if !ok {
			continue
		}

		id, _ := value.(string)
		return id, nil
	}

	return "", nil
}
