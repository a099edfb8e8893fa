package storage

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ReadJSON reads the record for key and unmarshals it into v. Returns
// ErrNotFound when the record is absent; a malformed record surfaces as a
// wrapped unmarshal error so callers can decide to treat it as empty state.
func ReadJSON(s Store, key string, v any) error {
	data, err := s.Read(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "malformed record %q", key)
	}
	return nil
}

// WriteJSON marshals v as indented JSON and writes it under key. Indented
// output keeps the persisted records human-readable and round-trippable.
func WriteJSON(s Store, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "marshal record %q", key)
	}
	return s.Write(key, data)
}
