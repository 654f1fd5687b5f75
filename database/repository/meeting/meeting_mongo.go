package meetingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartmeet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMeetingRepo implements MeetingRepository using MongoDB.
type MongoMeetingRepo struct {
	meetings *mongo.Collection
	logs     *mongo.Collection
}

// NewMongoMeetingRepo uses the meetings and email_logs collections of db.
func NewMongoMeetingRepo(db *mongo.Database) *MongoMeetingRepo {
	repo := &MongoMeetingRepo{
		meetings: db.Collection("meetings"),
		logs:     db.Collection("email_logs"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoMeetingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.meetings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create meeting indexes: %w", err)
	}
	_, err = r.logs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "meeting_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create email log indexes: %w", err)
	}
	return nil
}

func (r *MongoMeetingRepo) SaveMeeting(ctx context.Context, meeting *models.Meeting) error {
	if _, err := r.meetings.InsertOne(ctx, meeting); err != nil {
		return fmt.Errorf("failed to save meeting %s: %w", meeting.ID, err)
	}
	return nil
}

func (r *MongoMeetingRepo) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	cursor, err := r.meetings.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer cursor.Close(ctx)

	meetings := []models.Meeting{}
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("failed to decode meetings: %w", err)
	}
	return meetings, nil
}

func (r *MongoMeetingRepo) GetMeeting(ctx context.Context, id string) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := r.meetings.FindOne(ctx, bson.M{"id": id}).Decode(&meeting); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to fetch meeting %s: %w", id, err)
	}
	return &meeting, nil
}

func (r *MongoMeetingRepo) AttachCalendarEvent(ctx context.Context, id string, ref models.CalendarEventRef) error {
	result, err := r.meetings.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"calendar_event": ref}})
	if err != nil {
		return fmt.Errorf("failed to attach calendar event to meeting %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrMeetingNotFound
	}
	return nil
}

func (r *MongoMeetingRepo) AppendEmailLog(ctx context.Context, entry models.EmailLog) error {
	if _, err := r.logs.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to append email log: %w", err)
	}
	return nil
}

func (r *MongoMeetingRepo) ListEmailLogs(ctx context.Context) ([]models.EmailLog, error) {
	cursor, err := r.logs.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list email logs: %w", err)
	}
	defer cursor.Close(ctx)

	logs := []models.EmailLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode email logs: %w", err)
	}
	return logs, nil
}

func (r *MongoMeetingRepo) Stats(ctx context.Context) (models.Stats, error) {
	count, err := r.meetings.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to count meetings: %w", err)
	}
	logs, err := r.ListEmailLogs(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	return computeStats(int(count), logs), nil
}
