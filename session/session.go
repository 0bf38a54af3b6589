package session

import (
	"encoding/json"
	"fmt"

	"github.com/Scalingo/github-gazer/model"
	log "github.com/sirupsen/logrus"
)

// Key is the fixed storage key of the signed in identity
const Key = "currentUser"

// Load returns nil when nobody is signed in.
// A blob that can't be decoded is logged and treated as signed out.
func Load(storage Storage) (*model.Identity, error) {
	data, found, err := storage.Get(Key)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	var identity model.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		log.WithError(err).Warning("ignoring unreadable session identity")
		return nil, nil
	}

	return &identity, nil
}

// Save persists the identity, replacing any previous one
func Save(storage Storage, identity model.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal session identity: %w", err)
	}

	return storage.Set(Key, data)
}

// Clear forgets the signed in identity
func Clear(storage Storage) error {
	return storage.Remove(Key)
}
