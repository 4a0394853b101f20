package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/bennington-rising/bennington-rising-api/api"
	"github.com/bennington-rising/bennington-rising-api/config"
	"github.com/bennington-rising/bennington-rising-api/databases"
	"github.com/bennington-rising/bennington-rising-api/models"
)

var (
	// Page denotes the starting Page for pagination results
	Page = 0
)

// Mentor exported for testing purposes
type Mentor struct {
	DB databases.MentorDatabase
}

// MentorsHandler returns the mentor directory. Pass available=true to only
// list mentors who still have room for a mentee.
func (m Mentor) MentorsHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	filter := bson.M{}
	if r.URL.Query().Get("available") == "true" {
		filter["$or"] = []bson.M{
			{"mentor.approvedMentees": bson.M{"$size": 0}},
			{"mentor.approvedMentees": nil},
		}
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := m.DB.Find(ctx, filter, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get mentors", http.StatusNotFound, w, err)
		return
	}
	// The frontend directory expects a data array even when nothing matched
	if len(dbResp) == 0 {
		dbResp = []models.Mentor{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// MentorByIDHandler returns a mentor by ID
func (m Mentor) MentorByIDHandler(w http.ResponseWriter, r *http.Request) {
	mentorID := mux.Vars(r)["mentor_id"]

	zap.S().Debugf("mentor_id: %v", mentorID)

	mID, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := m.DB.FindOne(ctx, bson.M{"_id": mID})
	if err != nil {
		config.ErrorStatus("failed to get mentor by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func getPage(Page int, r *http.Request) int {
	if r.URL.Query().Get("page") == "" {
		zap.S().Warnf("page not set, using default of %v", Page)
	} else {
		var err error
		Page, err = strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			zap.S().Errorf(fmt.Sprintf("error parsing page number: %v", err))
		}
		if Page < 0 {
			zap.S().Warnf(fmt.Sprintf("cannot process page number less than 1. Got: %v", Page))
			return 0
		}
	}
	return Page
}
