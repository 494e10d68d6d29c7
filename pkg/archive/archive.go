// Package archive persists serialized dynamic messages in an embedded
// pebble store so captured wire buffers can be listed and re-inspected
// later. Captures are keyed by "<message name>/<ksuid>"; ksuid keys carry
// a coarse creation timestamp, so listings come back roughly in capture
// order.
package archive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/DimitriosDimakos/libcerializer/pkg/logging"
	"github.com/DimitriosDimakos/libcerializer/pkg/message"
	"github.com/DimitriosDimakos/libcerializer/pkg/wire"
)

// Errors
var (
	ErrNotFound     = &ArchiveError{"capture not found"}
	ErrEmptyMessage = &ArchiveError{"message has no serializable fields"}
	ErrCorrupt      = &ArchiveError{"stored capture failed verification"}
)

// ArchiveError represents an archive error
type ArchiveError struct {
	Message string
}

func (e *ArchiveError) Error() string {
	return e.Message
}

// Archive is a capture store for serialized dynamic messages.
type Archive struct {
	db *pebble.DB
}

// Open opens (or creates) an archive at the given path.
func Open(path string) (*Archive, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return &Archive{db: db}, nil
}

// Put serializes the message and stores it under a fresh capture key,
// returning the key. Messages without fields produce no wire buffer and
// are rejected with ErrEmptyMessage.
func (a *Archive) Put(m *message.DynamicMessage) (string, error) {
	data := wire.Serialize(m)
	if data == nil {
		return "", ErrEmptyMessage
	}
	key := m.Name + "/" + ksuid.New().String()
	if err := a.db.Set([]byte(key), data, pebble.NoSync); err != nil {
		return "", fmt.Errorf("failed to store capture %s: %w", key, err)
	}
	return key, nil
}

// PutRaw stores an already-serialized buffer. The buffer must pass wire
// verification; the capture is keyed under the encoded message's name.
func (a *Archive) PutRaw(data []byte) (string, error) {
	m := wire.Deserialize(data)
	if m == nil {
		return "", ErrCorrupt
	}
	key := m.Name + "/" + ksuid.New().String()
	if err := a.db.Set([]byte(key), data, pebble.NoSync); err != nil {
		return "", fmt.Errorf("failed to store capture %s: %w", key, err)
	}
	return key, nil
}

// Get loads and parses the capture stored under key.
func (a *Archive) Get(key string) (*message.DynamicMessage, error) {
	data, closer, err := a.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read capture %s: %w", key, err)
	}
	defer closer.Close()

	m := wire.Deserialize(data)
	if m == nil {
		logging.FunctionError("archive.Get", "capture "+key+" failed wire verification")
		return nil, ErrCorrupt
	}
	return m, nil
}

// GetRaw loads the stored wire buffer under key without parsing it.
func (a *Archive) GetRaw(key string) ([]byte, error) {
	data, closer, err := a.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read capture %s: %w", key, err)
	}
	defer closer.Close()

	// copy: pebble reuses the returned buffer after the closer runs
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// List returns the capture keys stored for a message name in key order.
// An empty name lists every capture in the archive.
func (a *Archive) List(name string) ([]string, error) {
	opts := &pebble.IterOptions{}
	if name != "" {
		prefix := name + "/"
		opts.LowerBound = []byte(prefix)
		opts.UpperBound = upperBound([]byte(prefix))
	}
	iter, err := a.db.NewIter(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate archive: %w", err)
	}
	defer iter.Close()

	keys := []string{}
	for iter.First(); iter.Valid(); iter.Next() {
		key := string(iter.Key())
		if name == "" && !strings.Contains(key, "/") {
			continue
		}
		keys = append(keys, key)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate archive: %w", err)
	}
	return keys, nil
}

// Delete removes the capture stored under key.
func (a *Archive) Delete(key string) error {
	return a.db.Delete([]byte(key), pebble.NoSync)
}

// Close closes the underlying store.
func (a *Archive) Close() error {
	return a.db.Close()
}

// upperBound returns the smallest key strictly greater than every key with
// the given prefix.
func upperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
