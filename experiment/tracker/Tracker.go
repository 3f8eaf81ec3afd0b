// Package tracker defines Trackers, which track data generated during
// an experiment and save it to a Store once the experiment finishes
package tracker

import (
	"bytes"
	"encoding/gob"
	"fmt"

	ts "github.com/samuelfneumann/fallingtrash/timestep"
)

// Interface Tracker keeps track of experiment data and saves the data
// after the experiment has finished
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error
}

// Encode gob-encodes data and saves it to s under key
func Encode(s Store, key string, data interface{}) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return fmt.Errorf("encode: could not encode %v: %v", key, err)
	}
	return s.Save(key, buf.Bytes())
}

// Decode loads the data saved under key in s and gob-decodes it into
// data, which must be a pointer
func Decode(s Store, key string, data interface{}) error {
	raw, err := s.Load(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("decode: no data saved under %v", key)
	}
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(data); err != nil {
		return fmt.Errorf("decode: could not decode %v: %v", key, err)
	}
	return nil
}
