package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

const (
	authEventsCollection = "auth_events"
	authEventRetention   = 90 * 24 * time.Hour
	writeTimeout         = 5 * time.Second
)

type authEventDoc struct {
	ID         string    `bson:"_id"`
	Identifier string    `bson:"identifier"`
	Username   string    `bson:"username,omitempty"`
	Role       string    `bson:"role,omitempty"`
	Outcome    string    `bson:"outcome"`
	RemoteIP   string    `bson:"remote_ip,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
}

// AuthEventRepository implements ports.AuthEventRepository using MongoDB.
type AuthEventRepository struct {
	col *mongo.Collection
}

func NewAuthEventRepository(db *mongo.Database) *AuthEventRepository {
	return &AuthEventRepository{col: db.Collection(authEventsCollection)}
}

var _ ports.AuthEventRepository = (*AuthEventRepository)(nil)

// InsertAuthEvent appends one login outcome to the audit collection.
func (r *AuthEventRepository) InsertAuthEvent(ctx context.Context, event *domain.AuthEvent) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, authEventDoc{
		ID:         event.ID,
		Identifier: event.Identifier,
		Username:   event.Username,
		Role:       event.Role,
		Outcome:    string(event.Outcome),
		RemoteIP:   event.RemoteIP,
		OccurredAt: event.OccurredAt.UTC(),
	})
	return err
}

// EnsureIndexes creates the lookup indexes and the retention TTL index.
func (r *AuthEventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "occurred_at", Value: -1}}},
		{Keys: bson.D{{Key: "outcome", Value: 1}}},
		{
			Keys:    bson.D{{Key: "occurred_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(authEventRetention.Seconds())),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
