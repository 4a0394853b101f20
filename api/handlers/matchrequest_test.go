package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bennington-rising/bennington-rising-api/api/handlers"
	dbmocks "github.com/bennington-rising/bennington-rising-api/databases/mocks"
	"github.com/bennington-rising/bennington-rising-api/matchflow"
	"github.com/bennington-rising/bennington-rising-api/models"
	notifmocks "github.com/bennington-rising/bennington-rising-api/notifications/mocks"
)

const (
	menteeHex = "5fc51f58c72ff10004e7cdd1"
	mentorHex = "5fc51f58c72ff10004e7cdd2"
	matchHex  = "5fc51f58c72ff10004e7cdd3"
)

type handlerMocks struct {
	matchDB  *dbmocks.MatchRequestDatabase
	answerDB *dbmocks.AnswerDatabase
	menteeDB *dbmocks.MenteeDatabase
	mentorDB *dbmocks.MentorDatabase
	notifier *notifmocks.Gateway
}

func newMatchRequestHandler() (handlers.MatchRequest, *handlerMocks) {
	m := &handlerMocks{
		matchDB:  &dbmocks.MatchRequestDatabase{},
		answerDB: &dbmocks.AnswerDatabase{},
		menteeDB: &dbmocks.MenteeDatabase{},
		mentorDB: &dbmocks.MentorDatabase{},
		notifier: &notifmocks.Gateway{},
	}
	engine := &matchflow.Engine{
		MatchDB:         m.matchDB,
		AnswerDB:        m.answerDB,
		MenteeDB:        m.menteeDB,
		MentorDB:        m.mentorDB,
		Notifier:        m.notifier,
		FrontendBaseURL: "https://app.benningtonrising.org",
	}
	return handlers.MatchRequest{Engine: engine, DB: m.matchDB, AnswerDB: m.answerDB, MentorDB: m.mentorDB}, m
}

func pendingRequest(status string, deadline time.Time) *models.MatchRequest {
	oid, _ := primitive.ObjectIDFromHex(matchHex)
	return &models.MatchRequest{
		ID: oid,
		Details: models.MatchRequestDetails{
			MenteeID:        menteeHex,
			MentorID:        mentorHex,
			AnswerID:        "5fc51f58c72ff10004e7cdd4",
			Status:          status,
			RequestedAt:     primitive.NewDateTimeFromTime(deadline.Add(-matchflow.ConsentWindow)),
			ConsentDeadline: primitive.NewDateTimeFromTime(deadline),
		},
	}
}

func directoryFixtures(m *handlerMocks) {
	menteeOID, _ := primitive.ObjectIDFromHex(menteeHex)
	mentorOID, _ := primitive.ObjectIDFromHex(mentorHex)
	m.menteeDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.Mentee{
		ID: menteeOID,
		Details: models.MenteeDetails{
			FirstName: "Avery", LastName: "Lane", Email: "avery@example.com",
			GuardianName: "Dana Lane", GuardianEmail: "dana@example.com",
		},
	}, nil)
	m.mentorDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.Mentor{
		ID: mentorOID,
		Details: models.MentorDetails{
			FirstName: "Sam", LastName: "Ortiz", Email: "sam@example.com",
			ProjectTitle: "Community Garden Build", CustomQuestion: "What would you plant first?",
		},
	}, nil)
}

func TestMatchRequest_CreateHandlerBadBody(t *testing.T) {
	h, _ := newMatchRequestHandler()

	req, _ := http.NewRequest("POST", "/api/v1/match-requests", strings.NewReader("{"))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.CreateMatchRequestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp models.ErrorMessageResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Response, "failed to decode request body")
}

func TestMatchRequest_CreateHandlerValidationError(t *testing.T) {
	h, _ := newMatchRequestHandler()

	body := `{"menteeID":"` + menteeHex + `","mentorID":"` + mentorHex + `","mentorAnswer":"","programAnswer":"x"}`
	req, _ := http.NewRequest("POST", "/api/v1/match-requests", strings.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.CreateMatchRequestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to create match request")
}

func TestMatchRequest_CreateHandlerDuplicate(t *testing.T) {
	h, m := newMatchRequestHandler()
	directoryFixtures(m)
	m.matchDB.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(1), nil)

	body := `{"menteeID":"` + menteeHex + `","mentorID":"` + mentorHex + `","mentorAnswer":"a","programAnswer":"b"}`
	req, _ := http.NewRequest("POST", "/api/v1/match-requests", strings.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.CreateMatchRequestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestMatchRequest_CreateHandlerSuccess(t *testing.T) {
	h, m := newMatchRequestHandler()
	directoryFixtures(m)
	m.matchDB.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)
	m.answerDB.On("InsertOne", mock.Anything, mock.Anything).Return(nil, nil)
	m.matchDB.On("InsertOne", mock.Anything, mock.Anything).Return(nil, nil)
	m.menteeDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
	m.mentorDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
	m.matchDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
	m.notifier.On("SendMatchUnderReview", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.notifier.On("SendConsentNeeded", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.notifier.On("SendConsentRequest", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	body := `{"menteeID":"` + menteeHex + `","mentorID":"` + mentorHex + `","mentorAnswer":"Tomatoes.","programAnswer":"Mentorship."}`
	req, _ := http.NewRequest("POST", "/api/v1/match-requests", strings.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.CreateMatchRequestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "matchRequestID")
}

func TestMatchRequest_ByIDHandlerNotFound(t *testing.T) {
	h, _ := newMatchRequestHandler()

	req, _ := http.NewRequest("GET", "/api/v1/match-requests/1234", nil)
	req = mux.SetURLVars(req, map[string]string{"match_request_id": "1234"})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.MatchRequestByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to get match request by ID")
}

func TestMatchRequest_ByIDHandlerSuccess(t *testing.T) {
	h, m := newMatchRequestHandler()

	mr := pendingRequest(models.StatusPendingGuardianConsent, time.Now().Add(24*time.Hour))
	m.matchDB.On("FindOne", mock.Anything, mock.Anything).Return(mr, nil)
	answerOID, _ := primitive.ObjectIDFromHex(mr.Details.AnswerID)
	m.answerDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.Answer{
		ID:      answerOID,
		Details: models.AnswerDetails{MenteeAnswer: "Tomatoes."},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/match-requests/"+matchHex, nil)
	req = mux.SetURLVars(req, map[string]string{"match_request_id": matchHex})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.MatchRequestByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "pending_guardian_consent")
	assert.Contains(t, rr.Body.String(), "Tomatoes.")
}

func TestMatchRequest_GuardianConsentHandlerApproved(t *testing.T) {
	h, m := newMatchRequestHandler()
	directoryFixtures(m)

	mr := pendingRequest(models.StatusPendingGuardianConsent, time.Now().Add(24*time.Hour))
	m.matchDB.On("FindOne", mock.Anything, mock.Anything).Return(mr, nil)
	m.matchDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
	m.answerDB.On("FindOne", mock.Anything, mock.Anything).Return(&models.Answer{}, nil)
	m.notifier.On("SendConsentApproved", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.notifier.On("SendMatchRequest", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	body := `{"approved":true,"guardian":{"name":"Dana Lane","email":"dana@example.com","phone":"802-555-0101","relationship":"parent"}}`
	req, _ := http.NewRequest("POST", "/api/v1/match-requests/"+matchHex+"/consent", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"match_request_id": matchHex})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.GuardianConsentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"approved":true`)
}

func TestMatchRequest_GuardianConsentHandlerExpired(t *testing.T) {
	h, m := newMatchRequestHandler()
	directoryFixtures(m)

	// deadline already passed, the handler surfaces 410 Gone
	mr := pendingRequest(models.StatusPendingGuardianConsent, time.Now().Add(-time.Hour))
	m.matchDB.On("FindOne", mock.Anything, mock.Anything).Return(mr, nil)
	m.matchDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
	m.menteeDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
	m.mentorDB.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
	m.notifier.On("SendConsentWindowClosed", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	body := `{"approved":true,"guardian":{"name":"Dana Lane"}}`
	req, _ := http.NewRequest("POST", "/api/v1/match-requests/"+matchHex+"/consent", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"match_request_id": matchHex})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.GuardianConsentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusGone, rr.Code)

	var resp models.ErrorMessageResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Response, "failed to record guardian consent")
}

func TestMatchRequest_MentorDecisionHandlerConflict(t *testing.T) {
	h, m := newMatchRequestHandler()

	// the guardian has not consented yet, so a mentor decision is premature
	mr := pendingRequest(models.StatusPendingGuardianConsent, time.Now().Add(24*time.Hour))
	m.matchDB.On("FindOne", mock.Anything, mock.Anything).Return(mr, nil)

	body := `{"approved":true}`
	req, _ := http.NewRequest("POST", "/api/v1/match-requests/"+matchHex+"/decision", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"match_request_id": matchHex})
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.MentorDecisionHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to record mentor decision")
}

func TestMatchRequest_SweepHandler(t *testing.T) {
	h, m := newMatchRequestHandler()
	m.matchDB.On("Find", mock.Anything, mock.Anything).Return([]models.MatchRequest{}, nil)

	req, _ := http.NewRequest("POST", "/api/v1/match-requests/sweep", nil)
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.SweepHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"resends":0,"reminders":0,"expired":0}`, rr.Body.String())
}
