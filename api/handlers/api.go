package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/bennington-rising/bennington-rising-api/api"
	"github.com/bennington-rising/bennington-rising-api/api/scheduler"
	"github.com/bennington-rising/bennington-rising-api/config"
	"github.com/bennington-rising/bennington-rising-api/databases"
	"github.com/bennington-rising/bennington-rising-api/matchflow"
	"github.com/bennington-rising/bennington-rising-api/models"
	"github.com/bennington-rising/bennington-rising-api/notifications"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
	engine    *matchflow.Engine
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	matchDB := databases.NewMatchRequestDatabase(a.dbHelper)
	answerDB := databases.NewAnswerDatabase(a.dbHelper)
	menteeDB := databases.NewMenteeDatabase(a.dbHelper)
	mentorDB := databases.NewMentorDatabase(a.dbHelper)

	a.engine = &matchflow.Engine{
		MatchDB:         matchDB,
		AnswerDB:        answerDB,
		MenteeDB:        menteeDB,
		MentorDB:        mentorDB,
		Notifier:        notifications.NewSendgridGateway(a.Config.SendgridAPIKey),
		FrontendBaseURL: a.Config.FrontendBaseURL,
	}

	m := MatchRequest{Engine: a.engine, DB: matchDB, AnswerDB: answerDB, MentorDB: mentorDB}
	mentee := Mentee{DB: menteeDB}
	mentor := Mentor{DB: mentorDB}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(api.RequestTimeout))

	apiCreate.Handle("/match-requests", http.HandlerFunc(m.CreateMatchRequestHandler)).Methods("POST")
	apiCreate.Handle("/match-requests/sweep", http.HandlerFunc(m.SweepHandler)).Methods("POST")
	apiCreate.Handle("/match-requests/{match_request_id}", http.HandlerFunc(m.MatchRequestByIDHandler)).Methods("GET")
	apiCreate.Handle("/match-requests/{match_request_id}/consent", http.HandlerFunc(m.GuardianConsentHandler)).Methods("POST")
	apiCreate.Handle("/match-requests/{match_request_id}/decision", http.HandlerFunc(m.MentorDecisionHandler)).Methods("POST")

	apiCreate.Handle("/mentors", http.HandlerFunc(mentor.MentorsHandler)).Methods("GET")
	apiCreate.Handle("/mentors/{mentor_id}", http.HandlerFunc(mentor.MentorByIDHandler)).Methods("GET")
	apiCreate.Handle("/mentees/{mentee_id}", http.HandlerFunc(mentee.MenteeByIDHandler)).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("bennington-rising-api has connected to the database")

	a.initializeRoutes()

	a.Scheduler = scheduler.NewScheduler(a.engine, databases.NewSchedulerLockDatabase(a.dbHelper))

	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
