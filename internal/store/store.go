package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/example/profile/internal/models"
)

// Collection names accepted by the item-level operations.
const (
	CollectionProjects  = "projects"
	CollectionServices  = "services"
	CollectionFeedbacks = "feedbacks"
)

// Store owns the admin content document: one JSON file holding the
// settings record and the projects, services, and feedbacks
// collections. Every mutation is a full read-modify-write of the
// document behind one mutex, so concurrent writers cannot lose each
// other's updates.
type Store struct {
	path string

	mu     sync.Mutex
	lastID int64
}

// New returns a store backed by the JSON document at path. The file
// is created lazily with defaults on first read.
func New(path string) *Store {
	return &Store{path: path}
}

// Read returns the current document. A missing backing file is
// answered by persisting and returning the default document; a file
// that exists but does not parse fails with ErrCorruptDocument.
func (s *Store) Read() (models.AdminDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// UpdateSettings shallow-merges patch into the settings record and
// returns the merged result. Fields absent from the patch keep their
// stored values.
func (s *Store) UpdateSettings(patch map[string]json.RawMessage) (models.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return models.SiteSettings{}, err
	}
	if err := mergePatch(&doc.Settings, patch); err != nil {
		return models.SiteSettings{}, err
	}
	if err := s.save(&doc); err != nil {
		return models.SiteSettings{}, err
	}
	return doc.Settings, nil
}

// ReplaceProjects overwrites the projects collection wholesale,
// preserving the supplied order.
func (s *Store) ReplaceProjects(items []models.Project) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Project{}
	}
	doc.Projects = items
	if err := s.save(&doc); err != nil {
		return nil, err
	}
	return doc.Projects, nil
}

// ReplaceServices overwrites the services collection wholesale.
func (s *Store) ReplaceServices(items []models.Service) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Service{}
	}
	doc.Services = items
	if err := s.save(&doc); err != nil {
		return nil, err
	}
	return doc.Services, nil
}

// ReplaceFeedbacks overwrites the feedbacks collection wholesale.
func (s *Store) ReplaceFeedbacks(items []models.Feedback) ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Feedback{}
	}
	doc.Feedbacks = items
	if err := s.save(&doc); err != nil {
		return nil, err
	}
	return doc.Feedbacks, nil
}

// AddFeedback stamps fb with a fresh timestamp-derived id, a creation
// time, and the initial moderation state, then prepends it so the
// collection stays newest first. Returns the stored entry.
func (s *Store) AddFeedback(fb models.Feedback) (models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return models.Feedback{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	fb.ID = s.nextFeedbackID(doc.Feedbacks)
	fb.CreatedAt = now
	fb.Timestamp = now
	fb.Status = models.FeedbackStatusNew
	fb.Visible = false

	doc.Feedbacks = append([]models.Feedback{fb}, doc.Feedbacks...)
	if err := s.save(&doc); err != nil {
		return models.Feedback{}, err
	}
	return fb, nil
}

// UpdateItemByID shallow-merges patch into the item with the matching
// id. A missing id is a silent no-op: found reports whether anything
// changed, and callers that need confirmation must check it. The id
// field itself cannot be patched away.
func (s *Store) UpdateItemByID(collection, id string, patch map[string]json.RawMessage) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}

	found := false
	switch collection {
	case CollectionProjects:
		for i := range doc.Projects {
			if doc.Projects[i].ID == id {
				if err := mergePatch(&doc.Projects[i], patch); err != nil {
					return false, err
				}
				doc.Projects[i].ID = id
				found = true
				break
			}
		}
	case CollectionServices:
		for i := range doc.Services {
			if doc.Services[i].ID == id {
				if err := mergePatch(&doc.Services[i], patch); err != nil {
					return false, err
				}
				doc.Services[i].ID = id
				found = true
				break
			}
		}
	case CollectionFeedbacks:
		for i := range doc.Feedbacks {
			if doc.Feedbacks[i].ID == id {
				if err := mergePatch(&doc.Feedbacks[i], patch); err != nil {
					return false, err
				}
				doc.Feedbacks[i].ID = id
				found = true
				break
			}
		}
	default:
		return false, ErrUnknownCollection
	}

	if !found {
		return false, nil
	}
	if err := s.save(&doc); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteItemByID removes the first item with the matching id. A
// missing id is a no-op; found reports whether anything was removed.
func (s *Store) DeleteItemByID(collection, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}

	found := false
	switch collection {
	case CollectionProjects:
		for i := range doc.Projects {
			if doc.Projects[i].ID == id {
				doc.Projects = append(doc.Projects[:i], doc.Projects[i+1:]...)
				found = true
				break
			}
		}
	case CollectionServices:
		for i := range doc.Services {
			if doc.Services[i].ID == id {
				doc.Services = append(doc.Services[:i], doc.Services[i+1:]...)
				found = true
				break
			}
		}
	case CollectionFeedbacks:
		for i := range doc.Feedbacks {
			if doc.Feedbacks[i].ID == id {
				doc.Feedbacks = append(doc.Feedbacks[:i], doc.Feedbacks[i+1:]...)
				found = true
				break
			}
		}
	default:
		return false, ErrUnknownCollection
	}

	if !found {
		return false, nil
	}
	if err := s.save(&doc); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) load() (models.AdminDocument, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := models.DefaultAdminDocument()
		if err := s.save(&doc); err != nil {
			return models.AdminDocument{}, err
		}
		return doc, nil
	}
	if err != nil {
		return models.AdminDocument{}, &PersistenceError{Op: "read", Path: s.path, Err: err}
	}

	var doc models.AdminDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.AdminDocument{}, &PersistenceError{
			Op:   "read",
			Path: s.path,
			Err:  fmt.Errorf("%w: %v", ErrCorruptDocument, err),
		}
	}
	return doc, nil
}

// save stamps lastUpdated and rewrites the whole document atomically
// via a temp file and rename.
func (s *Store) save(doc *models.AdminDocument) error {
	doc.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// nextFeedbackID derives an id from the current millisecond clock,
// bumped past the last issued id and past any id already in the
// collection so ids stay unique and strictly increasing even when the
// clock stalls or the process restarts.
func (s *Store) nextFeedbackID(existing []models.Feedback) string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	for taken(existing, id) {
		id++
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func taken(items []models.Feedback, id int64) bool {
	want := strconv.FormatInt(id, 10)
	for i := range items {
		if items[i].ID == want {
			return true
		}
	}
	return false
}

// mergePatch overlays patch onto dst at the JSON level: present
// fields overwrite, absent fields keep their current value. The store
// stays schema-agnostic here; structural correctness is the caller's
// job.
func mergePatch(dst any, patch map[string]json.RawMessage) error {
	base, err := json.Marshal(dst)
	if err != nil {
		return err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return err
	}
	for k, v := range patch {
		fields[k] = v
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(merged, dst)
}
