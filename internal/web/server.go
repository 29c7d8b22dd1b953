package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/verdantly/wellspring/internal/adapters/notify"
	"github.com/verdantly/wellspring/internal/auth"
	"github.com/verdantly/wellspring/internal/ports"
	"github.com/verdantly/wellspring/internal/tracker"
)

type Server struct {
	router        *http.ServeMux
	port          int
	auth          *auth.Service
	tracker       *tracker.Service
	reminderRepo  ports.ReminderRepository
	recommendRepo ports.RecommendationRepository
	chat          ports.ChatTransport
	events        *notify.SSEBroker
	log           ports.Logger
}

func NewServer(
	port int,
	authSvc *auth.Service,
	trackerSvc *tracker.Service,
	rr ports.ReminderRepository,
	recr ports.RecommendationRepository,
	chat ports.ChatTransport,
	events *notify.SSEBroker,
	log ports.Logger,
) *Server {
	s := &Server{
		router:        http.NewServeMux(),
		port:          port,
		auth:          authSvc,
		tracker:       trackerSvc,
		reminderRepo:  rr,
		recommendRepo: recr,
		chat:          chat,
		events:        events,
		log:           log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Accounts
	s.router.HandleFunc("POST /api/auth/signup", s.handleSignUp)
	s.router.HandleFunc("POST /api/auth/signin", s.handleSignIn)
	s.router.HandleFunc("POST /api/auth/signout", s.handleSignOut)

	// Session log and derived views
	s.router.HandleFunc("POST /api/sessions", s.handleRecordSession)
	s.router.HandleFunc("GET /api/sessions", s.handleHistory)
	s.router.HandleFunc("GET /api/stats", s.handleStats)
	s.router.HandleFunc("GET /api/streaks", s.handleStreaks)
	s.router.HandleFunc("GET /api/streaks/calendar", s.handleCalendar)
	s.router.HandleFunc("GET /api/dashboard", s.handleDashboard)

	// Reminders
	s.router.HandleFunc("GET /api/reminders", s.handleListReminders)
	s.router.HandleFunc("POST /api/reminders", s.handleSaveReminders)

	// Recommendations
	s.router.HandleFunc("POST /api/recommendations", s.handleGenerateRecommendation)
	s.router.HandleFunc("GET /api/recommendations", s.handleListRecommendations)
	s.router.HandleFunc("GET /api/recommendations/{id}", s.handleGetRecommendation)

	// Chatbot proxy
	s.router.HandleFunc("POST /api/chatbot", s.handleChat)

	// Reminder notifications as server-sent events
	s.router.Handle("GET /api/events", s.events)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // SSE connections stay open
		IdleTimeout:  60 * time.Second,
	}

	fmt.Printf("Starting server at http://localhost:%d\n", s.port)

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
