package outbox

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const defaultBucket = "outbox"

// Store persists integration requests in BoltDB until a processor delivers them.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(defaultBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, bucket: []byte(defaultBucket)}, nil
}

// Enqueue stores msg; keys sort by enqueue time so batches come out oldest first.
func (s *Store) Enqueue(msg Message) (Message, error) {
	if s == nil || s.db == nil {
		return msg, bolt.ErrDatabaseNotOpen
	}
	msg.normalize()
	msg.key = buildKey(msg)

	payload, err := json.Marshal(msg)
	if err != nil {
		return msg, err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put(msg.key, payload)
	})
	return msg, err
}

// Batch returns up to limit messages without removing them.
func (s *Store) Batch(limit int) ([]Message, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if limit <= 0 {
		limit = 50
	}

	var msgs []Message
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(s.bucket).Cursor()
		for k, v := c.First(); k != nil && len(msgs) < limit; k, v = c.Next() {
			var msg Message
			if err := json.Unmarshal(v, &msg); err != nil {
				continue
			}
			msg.key = append([]byte(nil), k...)
			msgs = append(msgs, msg)
		}
		return nil
	})
	return msgs, err
}

// Ack removes a delivered (or abandoned) message.
func (s *Store) Ack(msg Message) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	key := msg.key
	if len(key) == 0 {
		key = buildKey(msg)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete(key)
	})
}

// Retry records a failed attempt and moves the message to the back of the
// queue. The delete and the re-insert share one transaction.
func (s *Store) Retry(msg Message, cause error) (Message, error) {
	if s == nil || s.db == nil {
		return msg, bolt.ErrDatabaseNotOpen
	}
	oldKey := msg.key
	if len(oldKey) == 0 {
		oldKey = buildKey(msg)
	}

	next := msg
	next.Attempts++
	if cause != nil {
		next.LastError = cause.Error()
	}
	next.EnqueuedAt = time.Now()
	next.key = buildKey(next)

	payload, err := json.Marshal(next)
	if err != nil {
		return msg, err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		if err := bucket.Delete(oldKey); err != nil {
			return err
		}
		return bucket.Put(next.key, payload)
	})
	if err != nil {
		return msg, err
	}
	return next, nil
}

// Size returns the number of pending messages.
func (s *Store) Size() (int, error) {
	if s == nil || s.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(s.bucket).Stats().KeyN
		return nil
	})
	return count, err
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Stats exposes Bolt statistics for the health endpoint.
func (s *Store) Stats() bolt.Stats {
	if s == nil || s.db == nil {
		return bolt.Stats{}
	}
	return s.db.Stats()
}

func buildKey(msg Message) []byte {
	return []byte(fmt.Sprintf("%020d_%s", msg.EnqueuedAt.UnixNano(), msg.ID))
}
