package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quickride/ride-api/internal/core/domain"
)

const (
	usersCollection    = "users"
	captainsCollection = "captains"
)

// PrincipalRepository is the Mongo-backed credential store. One instance per
// collection: riders live in "users", drivers in "captains".
type PrincipalRepository struct {
	coll *mongo.Collection
	kind domain.PrincipalKind
}

func NewUserRepository(db *mongo.Database) *PrincipalRepository {
	return &PrincipalRepository{coll: db.Collection(usersCollection), kind: domain.KindUser}
}

func NewCaptainRepository(db *mongo.Database) *PrincipalRepository {
	return &PrincipalRepository{coll: db.Collection(captainsCollection), kind: domain.KindCaptain}
}

type mongoFullname struct {
	Firstname string `bson:"firstname"`
	Lastname  string `bson:"lastname,omitempty"`
}

type mongoVehicle struct {
	Color    string `bson:"color"`
	Plate    string `bson:"plate"`
	Capacity int    `bson:"capacity"`
	Type     string `bson:"vehicle_type"`
}

type mongoPrincipal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Fullname  mongoFullname      `bson:"fullname"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password,omitempty"`
	SocketID  string             `bson:"socket_id,omitempty"`
	Status    string             `bson:"status,omitempty"`
	Vehicle   *mongoVehicle      `bson:"vehicle,omitempty"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *PrincipalRepository) Create(ctx context.Context, p *domain.Principal) (*domain.Principal, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := mongoPrincipal{
		Fullname:  mongoFullname{Firstname: p.Fullname.Firstname, Lastname: p.Fullname.Lastname},
		Email:     p.Email,
		Password:  p.PasswordHash,
		SocketID:  p.SocketID,
		Status:    p.Status,
		CreatedAt: p.CreatedAt.Unix(),
		UpdatedAt: p.UpdatedAt.Unix(),
	}
	if p.Vehicle != nil {
		doc.Vehicle = &mongoVehicle{
			Color:    p.Vehicle.Color,
			Plate:    p.Vehicle.Plate,
			Capacity: p.Vehicle.Capacity,
			Type:     string(p.Vehicle.Type),
		}
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, storeErr("insert principal", err)
	}

	created := *p
	created.PasswordHash = ""
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PrincipalRepository) FindByEmail(ctx context.Context, email string, withPassword bool) (*domain.Principal, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.FindOne()
	if !withPassword {
		opts.SetProjection(bson.M{"password": 0})
	}

	var doc mongoPrincipal
	if err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, storeErr("find principal by email", err)
	}
	return r.toDomain(&doc), nil
}

func (r *PrincipalRepository) FindByID(ctx context.Context, id string) (*domain.Principal, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPrincipalNotFound
	}

	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	var doc mongoPrincipal
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, storeErr("find principal by id", err)
	}
	return r.toDomain(&doc), nil
}

func (r *PrincipalRepository) toDomain(doc *mongoPrincipal) *domain.Principal {
	p := &domain.Principal{
		ID:           doc.ID.Hex(),
		Kind:         r.kind,
		Fullname:     domain.Fullname{Firstname: doc.Fullname.Firstname, Lastname: doc.Fullname.Lastname},
		Email:        doc.Email,
		PasswordHash: doc.Password,
		SocketID:     doc.SocketID,
		Status:       doc.Status,
		CreatedAt:    unixToTime(doc.CreatedAt),
		UpdatedAt:    unixToTime(doc.UpdatedAt),
	}
	if doc.Vehicle != nil {
		p.Vehicle = &domain.Vehicle{
			Color:    doc.Vehicle.Color,
			Plate:    doc.Vehicle.Plate,
			Capacity: doc.Vehicle.Capacity,
			Type:     domain.VehicleType(doc.Vehicle.Type),
		}
	}
	return p
}

// storeErr collapses timeouts and connectivity failures into the domain's
// store-unavailable sentinel while keeping the driver error in the chain.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
