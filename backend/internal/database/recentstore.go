package database

import (
	"time"

	"github.com/upper/db/v4"
	"vincit.fi/slideshow/api"
	"vincit.fi/slideshow/common/logger"
)

// RecentStore remembers slideshow files that were saved or opened.
type RecentStore struct {
	database   *Database
	collection db.Collection
	now        func() time.Time

	api.RecentStore
}

func NewRecentStore(database *Database) *RecentStore {
	return &RecentStore{
		database: database,
		now:      time.Now,
	}
}

func (s *RecentStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("recent_slideshow")
	}
	return s.collection
}

func (s *RecentStore) Add(path string) error {
	logger.Debug.Printf("Adding '%s' to recent slideshows", path)
	result := s.getCollection().Find(db.Cond{"path": path})
	if exists, err := result.Exists(); err != nil {
		return err
	} else if exists {
		return result.Update(map[string]interface{}{"opened_timestamp": s.now()})
	}

	_, err := s.getCollection().Insert(&RecentSlideshow{
		Path:   path,
		Opened: s.now(),
	})
	return err
}

// GetRecent returns at most limit paths, most recently opened first.
func (s *RecentStore) GetRecent(limit int) ([]string, error) {
	var recent []RecentSlideshow
	if err := s.getCollection().Find().
		OrderBy("-opened_timestamp", "-id").
		Limit(limit).
		All(&recent); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(recent))
	for _, r := range recent {
		paths = append(paths, r.Path)
	}
	return paths, nil
}

func (s *RecentStore) Remove(path string) error {
	return s.getCollection().Find(db.Cond{"path": path}).Delete()
}
