package repository

import (
	"fmt"

	meetingRepo "smartmeet/database/repository/meeting"
	userRepo "smartmeet/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the MeetingRepository interface and constructors.
type MeetingRepository = meetingRepo.MeetingRepository

var (
	NewMemoryMeetingRepo = meetingRepo.NewMemoryMeetingRepo
	NewMongoMeetingRepo  = meetingRepo.NewMongoMeetingRepo
	ErrMeetingNotFound   = meetingRepo.ErrMeetingNotFound
)

// Re-export the UserRepository interface and constructors.
type UserRepository = userRepo.UserRepository

var (
	NewMemoryUserRepo = userRepo.NewMemoryUserRepo
	NewMongoUserRepo  = userRepo.NewMongoUserRepo
)

const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Stores groups the repositories selected by STORE_BACKEND.
type Stores struct {
	Meetings MeetingRepository
	Users    UserRepository
}

// NewStores builds the repositories for backend. db is only used by the mongo backend.
func NewStores(backend string, db *mongo.Database) (*Stores, error) {
	switch backend {
	case "", BackendMemory:
		return &Stores{Meetings: NewMemoryMeetingRepo(), Users: NewMemoryUserRepo()}, nil
	case BackendMongo:
		if db == nil {
			return nil, fmt.Errorf("store backend %q requires a database connection", backend)
		}
		return &Stores{Meetings: NewMongoMeetingRepo(db), Users: NewMongoUserRepo(db)}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
