package handlers

import (
	"net/http"
	"time"

	"college-feedback-backend/internal/logger"
	customMiddleware "college-feedback-backend/internal/middleware"
	"college-feedback-backend/internal/models"
	"college-feedback-backend/internal/notify"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig carries everything the HTTP layer depends on.
type RouterConfig struct {
	Feedback    FeedbackStore
	Users       UserStore
	Timetables  TimetableStore
	Faculty     FacultyStore
	Notifier    notify.Notifier
	Log         logger.Logger
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	authHandler := NewAuthHandler(cfg.Users, cfg.JWTSecret, cfg.TokenTTL, cfg.Log)
	feedbackHandler := NewFeedbackHandler(cfg.Feedback, cfg.Log)
	analysisHandler := NewAnalysisHandler(cfg.Feedback, cfg.Log)
	timetableHandler := NewTimetableHandler(cfg.Timetables, cfg.Users, cfg.Log)
	userHandler := NewUserHandler(cfg.Users, cfg.Notifier, cfg.Log)
	facultyHandler := NewFacultyHandler(cfg.Faculty, cfg.Log)

	staff := customMiddleware.RequireRole(models.RoleAdmin, models.RoleFaculty, models.RoleClassTeacher)
	admin := customMiddleware.RequireRole(models.RoleAdmin)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "college-feedback-backend"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes (no auth required)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected routes (JWT required)
		r.Group(func(r chi.Router) {
			r.Use(customMiddleware.JWTAuth(cfg.JWTSecret))

			r.Route("/feedback", func(r chi.Router) {
				r.Post("/theory/submit", feedbackHandler.SubmitTheory)
				r.Post("/practical/submit", feedbackHandler.SubmitPractical)

				r.Route("/feedbacks", func(r chi.Router) {
					r.Use(staff)
					r.Get("/", feedbackHandler.All)
					r.Get("/all", feedbackHandler.All)
					r.Get("/filtered", feedbackHandler.Filtered)
					r.Get("/analysis", feedbackHandler.Analysis)
					for path, lookup := range FeedbackLookups {
						r.Get("/"+path, feedbackHandler.Distinct(lookup))
					}
					r.With(admin).Delete("/{feedbackId}", feedbackHandler.Delete)
				})

				r.Get("/{studentId}", feedbackHandler.ByStudent)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(staff)
				r.Get("/feedback-analysis", analysisHandler.FacultySummary)
				r.Get("/by-same-subject", analysisHandler.BySubject)
				r.Get("/by-faculty", analysisHandler.ByFaculty)
				r.Get("/feedback-analysis-by-branch", analysisHandler.ByDepartment)
			})

			r.Route("/timetables", func(r chi.Router) {
				r.Get("/", timetableHandler.List)
				r.Get("/criteria", timetableHandler.List)
				r.Get("/{id}", timetableHandler.Get)
				r.Group(func(r chi.Router) {
					r.Use(staff)
					r.Post("/", timetableHandler.Create)
					r.Put("/update/{id}", timetableHandler.Update)
					r.Delete("/delete", timetableHandler.Delete)
				})
			})
			r.Get("/electives", timetableHandler.Electives)

			r.Route("/users", func(r chi.Router) {
				r.With(admin).Get("/", userHandler.List)
				r.Get("/me", userHandler.Me)
				r.Put("/me", userHandler.UpdateMe)
				r.Get("/user/{id}", userHandler.Get)
				r.Put("/user/{id}/select-elective", userHandler.SelectElectives)
				r.Put("/user/{id}/remove-elective", userHandler.RemoveElective)
			})
			r.Get("/students", userHandler.Students)

			r.Route("/faculty", func(r chi.Router) {
				r.Use(admin)
				r.Post("/approve-user/{id}", userHandler.Approve)
				r.Post("/reject-user/{id}", userHandler.Reject)
			})

			r.Route("/facultyregister", func(r chi.Router) {
				r.Use(staff)
				r.Get("/faculty", facultyHandler.List)
				for path, field := range FacultyLookups {
					r.Get("/"+path, facultyHandler.Distinct(field))
				}
				r.Group(func(r chi.Router) {
					r.Use(admin)
					r.Post("/create/faculty", facultyHandler.Create)
					r.Put("/faculty/edit/{id}", facultyHandler.Update)
					r.Delete("/faculty/delete/{id}", facultyHandler.Delete)
				})
			})
		})
	})

	return r
}
