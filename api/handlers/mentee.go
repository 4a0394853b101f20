package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bennington-rising/bennington-rising-api/api"
	"github.com/bennington-rising/bennington-rising-api/config"
	"github.com/bennington-rising/bennington-rising-api/databases"
)

// Mentee exported for testing purposes
type Mentee struct {
	DB databases.MenteeDatabase
}

// MenteeByIDHandler returns a mentee by ID
func (m Mentee) MenteeByIDHandler(w http.ResponseWriter, r *http.Request) {
	menteeID := mux.Vars(r)["mentee_id"]

	zap.S().Debugf("mentee_id: %v", menteeID)

	mID, err := primitive.ObjectIDFromHex(menteeID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := m.DB.FindOne(ctx, bson.M{"_id": mID})
	if err != nil {
		config.ErrorStatus("failed to get mentee by ID", http.StatusNotFound, w, err)
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
