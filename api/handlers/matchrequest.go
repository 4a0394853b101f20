package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bennington-rising/bennington-rising-api/config"
	"github.com/bennington-rising/bennington-rising-api/databases"
	"github.com/bennington-rising/bennington-rising-api/matchflow"
	"github.com/bennington-rising/bennington-rising-api/models"
)

// MatchRequest exported for testing purposes
type MatchRequest struct {
	Engine   *matchflow.Engine
	DB       databases.MatchRequestDatabase
	AnswerDB databases.AnswerDatabase
	MentorDB databases.MentorDatabase
}

// CreateMatchRequestBody is the expected payload for creating a match request
type CreateMatchRequestBody struct {
	MenteeID      string `json:"menteeID"`
	MentorID      string `json:"mentorID"`
	MentorAnswer  string `json:"mentorAnswer"`
	ProgramAnswer string `json:"programAnswer"`
}

// GuardianConsentBody is the expected payload for recording a guardian decision
type GuardianConsentBody struct {
	Approved bool                `json:"approved"`
	Guardian models.GuardianInfo `json:"guardian"`
}

// MentorDecisionBody is the expected payload for recording a mentor decision
type MentorDecisionBody struct {
	Approved bool `json:"approved"`
}

// CreateMatchRequestHandler opens a new match request between a mentee and a mentor
func (m MatchRequest) CreateMatchRequestHandler(w http.ResponseWriter, r *http.Request) {
	var body CreateMatchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	id, err := m.Engine.CreateMatchRequest(r.Context(), body.MenteeID, body.MentorID, body.MentorAnswer, body.ProgramAnswer)
	if err != nil {
		matchflowErrorStatus("failed to create match request", w, err)
		return
	}

	b, err := json.Marshal(map[string]interface{}{"matchRequestID": id})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// MatchRequestByIDHandler returns a match request by ID, with its answers attached.
// The consent form loads from this route, so it stays unauthenticated.
func (m MatchRequest) MatchRequestByIDHandler(w http.ResponseWriter, r *http.Request) {
	mrID := mux.Vars(r)["match_request_id"]

	zap.S().Debugf("match_request_id: %v", mrID)

	dbResp, err := m.Engine.GetMatchRequest(r.Context(), mrID)
	if err != nil {
		matchflowErrorStatus("failed to get match request by ID", w, err)
		return
	}

	resp := map[string]interface{}{"matchRequest": dbResp}
	if aID, err := primitive.ObjectIDFromHex(dbResp.Details.AnswerID); err == nil {
		answer, err := m.AnswerDB.FindOne(r.Context(), bson.M{"_id": aID})
		if err != nil {
			zap.S().Errorf("failed to get answers for match request %v: %v", mrID, err)
		} else {
			resp["answer"] = answer
		}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// GuardianConsentHandler records the guardian decision on a pending match request
func (m MatchRequest) GuardianConsentHandler(w http.ResponseWriter, r *http.Request) {
	mrID := mux.Vars(r)["match_request_id"]

	var body GuardianConsentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	err := m.Engine.SubmitGuardianConsent(r.Context(), mrID, body.Approved, body.Guardian)
	if err != nil {
		matchflowErrorStatus("failed to record guardian consent", w, err)
		return
	}

	b, _ := json.Marshal(map[string]interface{}{"matchRequestID": mrID, "approved": body.Approved})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// MentorDecisionHandler records the mentor decision on a guardian-approved match request
func (m MatchRequest) MentorDecisionHandler(w http.ResponseWriter, r *http.Request) {
	mrID := mux.Vars(r)["match_request_id"]

	var body MentorDecisionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	err := m.Engine.SubmitMentorDecision(r.Context(), mrID, body.Approved)
	if err != nil {
		matchflowErrorStatus("failed to record mentor decision", w, err)
		return
	}

	b, _ := json.Marshal(map[string]interface{}{"matchRequestID": mrID, "approved": body.Approved})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SweepHandler runs the reminder and expiry sweep on demand. The scheduler runs
// the same sweep on an interval, this route exists for ops and for testing.
func (m MatchRequest) SweepHandler(w http.ResponseWriter, r *http.Request) {
	result := m.Engine.Sweep(r.Context())

	b, err := json.Marshal(result)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// matchflowErrorStatus maps workflow errors onto HTTP statuses
func matchflowErrorStatus(msg string, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, matchflow.ErrValidation):
		config.ErrorStatus(msg, http.StatusBadRequest, w, err)
	case errors.Is(err, matchflow.ErrNotFound):
		config.ErrorStatus(msg, http.StatusNotFound, w, err)
	case errors.Is(err, matchflow.ErrDuplicateRequest):
		config.ErrorStatus(msg, http.StatusConflict, w, err)
	case errors.Is(err, matchflow.ErrInvalidStateTransition):
		config.ErrorStatus(msg, http.StatusConflict, w, err)
	case errors.Is(err, matchflow.ErrWindowExpired):
		config.ErrorStatus(msg, http.StatusGone, w, err)
	default:
		config.ErrorStatus(msg, http.StatusInternalServerError, w, err)
	}
}
