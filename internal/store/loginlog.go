package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/profile/internal/models"
)

// loginLogCap bounds the audit log: only the most recent entries are
// kept, oldest evicted first.
const loginLogCap = 50

// LoginLog records successful admin logins in its own JSON document,
// separate from the content store. Same discipline: whole-file
// read-modify-write behind a mutex.
type LoginLog struct {
	path string
	mu   sync.Mutex
}

// NewLoginLog returns a login log backed by the JSON document at
// path. A missing file reads as an empty log and is only created on
// the first append.
func NewLoginLog(path string) *LoginLog {
	return &LoginLog{path: path}
}

// Append stamps rec with an id and timestamp and prepends it,
// trimming the log to its cap.
func (l *LoginLog) Append(rec models.LoginRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	doc, err := l.load()
	if err != nil {
		return err
	}

	rec.ID = uuid.NewString()
	rec.Timestamp = time.Now().UTC().Format(time.RFC3339)

	doc.Entries = append([]models.LoginRecord{rec}, doc.Entries...)
	if len(doc.Entries) > loginLogCap {
		doc.Entries = doc.Entries[:loginLogCap]
	}
	return l.save(&doc)
}

// List returns the logged entries, newest first.
func (l *LoginLog) List() ([]models.LoginRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	doc, err := l.load()
	if err != nil {
		return nil, err
	}
	return doc.Entries, nil
}

func (l *LoginLog) load() (models.LoginLogDocument, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.LoginLogDocument{Entries: []models.LoginRecord{}}, nil
	}
	if err != nil {
		return models.LoginLogDocument{}, &PersistenceError{Op: "read", Path: l.path, Err: err}
	}

	var doc models.LoginLogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.LoginLogDocument{}, &PersistenceError{
			Op:   "read",
			Path: l.path,
			Err:  fmt.Errorf("%w: %v", ErrCorruptDocument, err),
		}
	}
	if doc.Entries == nil {
		doc.Entries = []models.LoginRecord{}
	}
	return doc, nil
}

func (l *LoginLog) save(doc *models.LoginLogDocument) error {
	doc.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "write", Path: l.path, Err: err}
	}

	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &PersistenceError{Op: "write", Path: l.path, Err: err}
	}
	if err := os.Rename(tmp, l.path); err != nil {
		return &PersistenceError{Op: "write", Path: l.path, Err: err}
	}
	return nil
}
