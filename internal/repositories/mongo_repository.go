package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"travelstar/internal/models/db_models"
)

// One collection holds everything: a document per user keyed by username,
// with that user's plans embedded in travel_history, newest first.
type accountDocument struct {
	Username      string         `bson:"_id"`
	Password      string         `bson:"password"`
	CreatedAt     time.Time      `bson:"created_at"`
	TravelHistory []planDocument `bson:"travel_history"`
}

type planDocument struct {
	ID          string    `bson:"id"`
	CreatedAt   historyDate `bson:"date"`
	Destination string    `bson:"destination"`
	Days        int       `bson:"days"`
	Budget      float64   `bson:"budget"`
	Currency    string    `bson:"currency"`
	Interests   []string  `bson:"interests"`
	Season      string    `bson:"season,omitempty"`
	TravelStyle string    `bson:"travel_style,omitempty"`
	GroupSize   string    `bson:"group_size,omitempty"`
	Notes       string    `bson:"notes,omitempty"`
	Model       string    `bson:"model"`
	RawResponse string    `bson:"raw_response"`
	Itinerary   planBody  `bson:"itinerary"`
}

type planBody struct {
	Title           string   `bson:"itinerary_title"`
	Daily           flexText `bson:"daily_itinerary"`
	Budget          string   `bson:"budget"`
	Tips            flexText `bson:"travel_tips"`
	PackingList     string   `bson:"packing_list"`
	TotalBudget     string   `bson:"total_budget,omitempty"`
	BudgetBreakdown flexText `bson:"budget_breakdown,omitempty"`
}

func (b planBody) budgetText() string {
	if b.Budget != "" || (b.TotalBudget == "" && b.BudgetBreakdown == "") {
		return b.Budget
	}
	var lines []string
	if b.TotalBudget != "" {
		lines = append(lines, "Total: "+b.TotalBudget)
	}
	if b.BudgetBreakdown != "" {
		lines = append(lines, string(b.BudgetBreakdown))
	}
	return strings.Join(lines, "\n")
}

func toPlanDocument(p *db_models.TripPlan) planDocument {
	return planDocument{
		ID:          p.ID.String(),
		CreatedAt:   historyDate(p.CreatedAt),
		Destination: p.Destination,
		Days:        p.Days,
		Budget:      p.Budget,
		Currency:    p.Currency,
		Interests:   p.Interests,
		Season:      p.Season,
		TravelStyle: p.TravelStyle,
		GroupSize:   p.GroupSize,
		Notes:       p.Notes,
		Model:       p.Model,
		RawResponse: p.RawResponse,
		Itinerary: planBody{
			Title:       p.Title,
			Daily:       flexText(p.Itinerary),
			Budget:      p.BudgetText,
			Tips:        flexText(p.Tips),
			PackingList: p.PackingList,
		},
	}
}

func (d planDocument) toModel(username string) db_models.TripPlan {
	id, _ := uuid.Parse(d.ID)
	return db_models.TripPlan{
		BaseModel:   db_models.BaseModel{ID: id, CreatedAt: time.Time(d.CreatedAt)},
		Username:    username,
		Destination: d.Destination,
		Days:        d.Days,
		Budget:      d.Budget,
		Currency:    d.Currency,
		Interests:   d.Interests,
		Season:      d.Season,
		TravelStyle: d.TravelStyle,
		GroupSize:   d.GroupSize,
		Notes:       d.Notes,
		Model:       d.Model,
		RawResponse: d.RawResponse,
		Title:       d.Itinerary.Title,
		Itinerary:   string(d.Itinerary.Daily),
		BudgetText:  d.Itinerary.budgetText(),
		Tips:        string(d.Itinerary.Tips),
		PackingList: d.Itinerary.PackingList,
	}
}

type mongoAccountRepository struct {
	coll *mongo.Collection
}

func NewMongoAccountRepository(coll *mongo.Collection) AccountRepository {
	return &mongoAccountRepository{coll: coll}
}

func (r *mongoAccountRepository) Create(ctx context.Context, account *db_models.Account) error {
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, accountDocument{
		Username:      account.Username,
		Password:      account.PasswordHash,
		CreatedAt:     account.CreatedAt,
		TravelHistory: []planDocument{},
	})
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

func (r *mongoAccountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	var doc accountDocument
	opts := options.FindOne().SetProjection(bson.M{"travel_history": 0})
	err := r.coll.FindOne(ctx, bson.M{"_id": username}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &db_models.Account{
		Username:     doc.Username,
		PasswordHash: doc.Password,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

type mongoTripPlanRepository struct {
	coll *mongo.Collection
}

func NewMongoTripPlanRepository(coll *mongo.Collection) TripPlanRepository {
	return &mongoTripPlanRepository{coll: coll}
}

func (r *mongoTripPlanRepository) Insert(ctx context.Context, plan *db_models.TripPlan) error {
	plan.Stamp()

	update := bson.M{
		"$push": bson.M{
			"travel_history": bson.M{
				"$each":     []planDocument{toPlanDocument(plan)},
				"$position": 0,
			},
		},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": plan.Username}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *mongoTripPlanRepository) ListByUsername(ctx context.Context, username string) ([]db_models.TripPlan, error) {
	var doc accountDocument
	opts := options.FindOne().SetProjection(bson.M{"travel_history": 1})
	err := r.coll.FindOne(ctx, bson.M{"_id": username}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []db_models.TripPlan{}, nil
		}
		return nil, err
	}

	plans := make([]db_models.TripPlan, 0, len(doc.TravelHistory))
	for _, d := range doc.TravelHistory {
		plans = append(plans, d.toModel(username))
	}
	sortNewestFirst(plans)
	return plans, nil
}

func (r *mongoTripPlanRepository) FindByID(ctx context.Context, username string, id uuid.UUID) (*db_models.TripPlan, error) {
	var doc accountDocument
	filter := bson.M{"_id": username, "travel_history.id": id.String()}
	opts := options.FindOne().SetProjection(bson.M{"travel_history.$": 1})
	err := r.coll.FindOne(ctx, filter, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	if len(doc.TravelHistory) == 0 {
		return nil, nil
	}

	plan := doc.TravelHistory[0].toModel(username)
	return &plan, nil
}
