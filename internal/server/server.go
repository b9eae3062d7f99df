package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mentorbridge/dashboard/internal/api"
	"github.com/mentorbridge/dashboard/internal/config"
	"github.com/mentorbridge/dashboard/internal/handlers"
	"github.com/mentorbridge/dashboard/internal/logger"
	"github.com/mentorbridge/dashboard/internal/session"
)

type Server struct {
	router      *chi.Mux
	config      *config.Config
	corsConfigs *config.CORSConfigs
	logger      *slog.Logger
	authService *session.AuthService
	apiClient   *api.Client
}

// NewServer wires the dashboard's middleware stack and routes onto a fresh router.
// The API client is shared; handlers bind it to the caller's token per request.
func NewServer(cfg *config.Config, corsConfigs *config.CORSConfigs, serverLogger *slog.Logger, apiClient *api.Client, authService *session.AuthService) *Server {
	s := &Server{
		router:      chi.NewRouter(),
		config:      cfg,
		corsConfigs: corsConfigs,
		logger:      serverLogger,
		authService: authService,
		apiClient:   apiClient,
	}

	s.setupMiddleware()
	s.registerRoutes()
	return s
}

// setupMiddleware sets up the middleware that applies to all requests.
// Request body size limits are set per route group (see registerRoutes).
func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Timeout(60 * time.Second))
	s.router.Use(SecurityHeaders(s.config.Environment))
	s.router.Use(RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
}

func (s *Server) registerRoutes() {
	handlerService := &handlers.HandlerService{
		ApiClient:   s.apiClient,
		AuthService: s.authService,
		Environment: s.config.Environment,
	}

	// Public routes
	s.router.Group(func(r chi.Router) {
		r.Use(CORS(s.corsConfigs.Public))
		r.Use(RequestSizeLimit(s.config.MaxAPIRequestSize))

		r.Get("/healthz", handlerService.HandleHealthz)
		r.Get("/version", handlerService.HandleVersion)
	})

	// Login needs the credentialed CORS policy (it sets the session cookies) but no session
	s.router.Group(func(r chi.Router) {
		r.Use(CORS(s.corsConfigs.Protected))
		r.Use(RequestSizeLimit(s.config.MaxAPIRequestSize))

		r.Post("/login", handlerService.HandleLogin)
	})

	// Protected ui-api routes (require a valid session)
	s.router.Group(func(r chi.Router) {
		r.Use(CORS(s.corsConfigs.Protected))
		r.Use(s.authService.RequireAuth)

		// Routes that accept file uploads get the larger body limit
		r.Group(func(r chi.Router) {
			r.Use(RequestSizeLimit(s.config.MaxUploadSize))

			r.Put("/ui-api/profile", handlerService.HandleUpdateProfile)
			r.Post("/ui-api/chat/{conversationID}/messages", handlerService.HandleSendChatMessage)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequestSizeLimit(s.config.MaxAPIRequestSize))

			r.Post("/logout", handlerService.HandleLogout)

			r.Get("/ui-api/profile", handlerService.HandleGetProfile)

			// events (all roles can browse and register)
			r.Get("/ui-api/events", handlerService.HandleListEvents)
			r.Get("/ui-api/events/{eventID}", handlerService.HandleGetEvent)
			r.Post("/ui-api/events/{eventID}/register", handlerService.HandleRegisterForEvent)

			// bookings
			r.Get("/ui-api/bookings", handlerService.HandleListBookings)
			r.Get("/ui-api/bookings/stats", handlerService.HandleBookingStats)
			r.Get("/ui-api/bookings/{bookingID}", handlerService.HandleGetBooking)
			r.Post("/ui-api/bookings", handlerService.HandleCreateBooking)
			r.Patch("/ui-api/bookings/{bookingID}", handlerService.HandleUpdateBooking)
			r.Delete("/ui-api/bookings/{bookingID}", handlerService.HandleCancelBooking)
			r.Get("/ui-api/bookings/{bookingID}/receipt", handlerService.HandleDownloadReceipt)

			// chat
			r.Get("/ui-api/chat", handlerService.HandleListConversations)
			r.Get("/ui-api/chat/{conversationID}/messages", handlerService.HandleChatHistory)
			r.Delete("/ui-api/chat/{conversationID}/messages", handlerService.HandleClearConversation)
			r.Patch("/ui-api/chat/{conversationID}", handlerService.HandleRenameConversation)

			// dashboard summaries
			r.Get("/ui-api/dashboard/overview", handlerService.HandleDashboardOverview)
			r.Get("/ui-api/dashboard/courses", handlerService.HandleCourses)
			r.Get("/ui-api/dashboard/mentorships", handlerService.HandleMentorships)
		})
	})

	// Routes for professionals and institutions only
	s.router.Group(func(r chi.Router) {
		r.Use(CORS(s.corsConfigs.Protected))
		r.Use(s.authService.RequireAuth)
		r.Use(s.authService.RequireRole("professional", "institution"))

		r.Group(func(r chi.Router) {
			r.Use(RequestSizeLimit(s.config.MaxUploadSize))

			r.Post("/ui-api/events", handlerService.HandleCreateEvent)
			r.Put("/ui-api/events/{eventID}", handlerService.HandleUpdateEvent)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequestSizeLimit(s.config.MaxAPIRequestSize))

			// event management
			r.Delete("/ui-api/events/{eventID}", handlerService.HandleDeleteEvent)
			r.Post("/ui-api/events/{eventID}/tags", handlerService.HandleAddEventTag)
			r.Get("/ui-api/events/{eventID}/attendees", handlerService.HandleListAttendees)
			r.Patch("/ui-api/events/{eventID}/attendees/{attendeeID}", handlerService.HandleUpdateAttendeeStatus)

			// job applications
			r.Get("/ui-api/applications", handlerService.HandleListApplications)
			r.Patch("/ui-api/applications/{applicationID}/status", handlerService.HandleUpdateApplicationStatus)
			r.Post("/ui-api/applications/{applicationID}/send-email", handlerService.HandleSendApplicantEmail)

			// earnings
			r.Get("/ui-api/earnings/summary", handlerService.HandleEarningsSummary)
			r.Get("/ui-api/earnings/transactions", handlerService.HandleTransactions)

			// analytics and export
			r.Get("/ui-api/dashboard/students", handlerService.HandleStudents)
			r.Get("/ui-api/dashboard/exams", handlerService.HandleDashboardExams)
			r.Get("/ui-api/dashboard/finances", handlerService.HandleFinances)
			r.Get("/ui-api/dashboard/analytics", handlerService.HandleAnalytics)
			r.Get("/ui-api/dashboard/export", handlerService.HandleExportAnalytics)
		})
	})

	// Routes for institutions only
	s.router.Group(func(r chi.Router) {
		r.Use(CORS(s.corsConfigs.Protected))
		r.Use(s.authService.RequireAuth)
		r.Use(s.authService.RequireRole("institution"))

		r.Group(func(r chi.Router) {
			r.Use(RequestSizeLimit(s.config.MaxUploadSize))

			r.Post("/ui-api/exams", handlerService.HandleCreateExam)
			r.Put("/ui-api/exams/{examID}", handlerService.HandleUpdateExam)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequestSizeLimit(s.config.MaxAPIRequestSize))

			r.Get("/ui-api/exams", handlerService.HandleListExams)
			r.Get("/ui-api/exams/{examID}", handlerService.HandleGetExam)
			r.Delete("/ui-api/exams/{examID}", handlerService.HandleDeleteExam)
			r.Get("/ui-api/exams/{examID}/stats", handlerService.HandleExamStatistics)
			r.Get("/ui-api/exams/{examID}/results", handlerService.HandleExamResults)
		})
	})
}

// Start runs the server until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard server listening", slog.String("address", addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down dashboard server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server forced to shutdown", slog.String("error", err.Error()))
			return err
		}
	}

	return nil
}
