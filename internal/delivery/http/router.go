package http

import (
	"net/http"

	"go-hospital-resource-management/internal/delivery/http/handler"
	"go-hospital-resource-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	patientHandler    *handler.PatientHandler
	doctorHandler     *handler.DoctorHandler
	bedHandler        *handler.BedHandler
	assignmentHandler *handler.AssignmentHandler
	searchHandler     *handler.SearchHandler
	sessionMiddleware *middleware.SessionMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	bedHandler *handler.BedHandler,
	assignmentHandler *handler.AssignmentHandler,
	searchHandler *handler.SearchHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		patientHandler:    patientHandler,
		doctorHandler:     doctorHandler,
		bedHandler:        bedHandler,
		assignmentHandler: assignmentHandler,
		searchHandler:     searchHandler,
		sessionMiddleware: sessionMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(r.corsMiddleware.Handle)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/security-question", r.authHandler.GetSecurityQuestion).Methods(http.MethodGet)
	auth.HandleFunc("/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)

	// Auth routes (session required)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.sessionMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Resource routes (session required)
	resources := api.NewRoute().Subrouter()
	resources.Use(r.sessionMiddleware.Authenticate)

	resources.HandleFunc("/patients", r.patientHandler.AddPatient).Methods(http.MethodPost)
	resources.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	resources.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	resources.HandleFunc("/doctors", r.doctorHandler.AddDoctor).Methods(http.MethodPost)
	resources.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	resources.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	resources.HandleFunc("/beds", r.bedHandler.AddBed).Methods(http.MethodPost)
	resources.HandleFunc("/beds", r.bedHandler.GetAllBeds).Methods(http.MethodGet)
	resources.HandleFunc("/beds/available", r.bedHandler.GetAvailableBeds).Methods(http.MethodGet)
	resources.HandleFunc("/beds/{id}", r.bedHandler.DeleteBed).Methods(http.MethodDelete)

	resources.HandleFunc("/assignments", r.assignmentHandler.CreateAssignment).Methods(http.MethodPost)
	resources.HandleFunc("/assignments", r.assignmentHandler.GetAllAssignments).Methods(http.MethodGet)
	resources.HandleFunc("/assignments/{id}", r.assignmentHandler.DeleteAssignment).Methods(http.MethodDelete)

	resources.HandleFunc("/search", r.searchHandler.Search).Methods(http.MethodGet)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
