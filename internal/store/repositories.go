package store

import "github.com/MKhiriev/go-city-guide/internal/logger"

// Repositories groups every repository built on top of a single [DB].
type Repositories struct {
	UserRepository     UserRepository
	FavoriteRepository FavoriteRepository
	ReviewRepository   ReviewRepository
	EventRepository    EventRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, log),
		FavoriteRepository: NewFavoriteRepository(db, log),
		ReviewRepository:   NewReviewRepository(db, log),
		EventRepository:    NewEventRepository(db, log),
	}
}
