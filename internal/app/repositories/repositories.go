package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	WordBookRepository *WordBookRepository
	WordRepository     *WordRepository
	ClassRepository    *ClassRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		WordBookRepository: NewWordBookRepository(db),
		WordRepository:     NewWordRepository(db),
		ClassRepository:    NewClassRepository(db),
	}
}
