// Package snapshot persists the signed-in identity across reloads.
//
// A single key per session holds one flat record (id, email, name, role).
// It is written on login/register/profile-update, removed on logout, and
// read once when a session's stores are first built.
//
// Three drivers are available via SNAPSHOT_DRIVER: memory (default), redis
// and database. Records can additionally be AES-GCM encrypted at rest with
// SNAPSHOT_ENCRYPT=true.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/htoohtoo/storefront/config"
	"github.com/htoohtoo/storefront/pkg/crypt"
)

// Record is the flat identity snapshot. String/enum fields only — no nested
// collections, so any key-value backend can hold it.
type Record struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Store saves, loads and deletes identity snapshots keyed by session id.
type Store interface {
	Save(sessionID string, rec Record) error
	Load(sessionID string) (Record, bool, error)
	Delete(sessionID string) error
}

// driver is the raw string key-value layer beneath a Store.
type driver interface {
	put(key, value string) error
	get(key string) (string, bool, error)
	del(key string) error
}

type store struct {
	d       driver
	encrypt bool
}

// Open builds the Store selected by SNAPSHOT_DRIVER.
func Open() (Store, error) {
	var d driver
	switch config.SnapshotDriver() {
	case "redis":
		d = redisDriver{}
	case "database":
		db, err := newDBDriver()
		if err != nil {
			return nil, err
		}
		d = db
	default:
		d = newMemoryDriver()
	}
	return &store{d: d, encrypt: config.SnapshotEncrypt()}, nil
}

// NewMemory returns a Store backed by the in-process map driver.
// Used directly in tests and as the zero-dependency default.
func NewMemory() Store {
	return &store{d: newMemoryDriver()}
}

func snapshotKey(sessionID string) string {
	return "storefront:identity:" + sessionID
}

func (s *store) Save(sessionID string, rec Record) error {
	var payload string

	if s.encrypt {
		enc, err := crypt.EncryptJSON(rec)
		if err != nil {
			return fmt.Errorf("snapshot: encrypt: %w", err)
		}
		payload = enc
	} else {
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("snapshot: marshal: %w", err)
		}
		payload = string(raw)
	}

	return s.d.put(snapshotKey(sessionID), payload)
}

func (s *store) Load(sessionID string) (Record, bool, error) {
	var rec Record

	payload, ok, err := s.d.get(snapshotKey(sessionID))
	if err != nil || !ok {
		return rec, false, err
	}

	if s.encrypt {
		if err := crypt.DecryptJSON(payload, &rec); err != nil {
			return rec, false, fmt.Errorf("snapshot: decrypt: %w", err)
		}
	} else if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return rec, false, fmt.Errorf("snapshot: unmarshal: %w", err)
	}

	return rec, true, nil
}

func (s *store) Delete(sessionID string) error {
	return s.d.del(snapshotKey(sessionID))
}
