package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("entity not found")

// Store bundles the repositories of every entity collection.
type Store struct {
	Candidates    *CachedCandidates
	JobRoles      *CachedJobRoles
	Presentations *Presentations
	Employers     *Employers
	Messages      *Messages
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Candidates:    NewCachedCandidates(NewCandidatesRepository(db)),
		JobRoles:      NewCachedJobRoles(NewJobRolesRepository(db)),
		Presentations: NewPresentationsRepository(db),
		Employers:     NewEmployersRepository(db),
		Messages:      NewMessagesRepository(db),
	}
}
