// Package httpapi exposes the server's REST surface: account registration,
// the session-token lifecycle, and the file document endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ivolkov/filecab/internal/logging"
	"github.com/ivolkov/filecab/internal/server/models"
	"github.com/ivolkov/filecab/internal/server/services"
)

// UserService is the slice of the user service the transport needs.
type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, authHeader string) (string, error)
	Logout(ctx context.Context, token string) error
	ResolveUser(ctx context.Context, token string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

// FileService is the slice of the file service the transport needs.
type FileService interface {
	Create(ctx context.Context, owner *models.User, req services.CreateRequest) (*models.File, error)
	GetByID(ctx context.Context, owner *models.User, fileID string) (*models.File, error)
	List(ctx context.Context, owner *models.User, parent models.ParentRef, page int) ([]*models.File, error)
	SetPublic(ctx context.Context, owner *models.User, fileID string, isPublic bool) (*models.File, error)
	ReadContent(ctx context.Context, caller *models.User, fileID string) ([]byte, string, error)
	Count(ctx context.Context) (int64, error)
}

// Pinger reports database liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// AliveChecker reports session-store liveness.
type AliveChecker interface {
	Alive(ctx context.Context) bool
}

type HTTPServer struct {
	address  string
	logger   logging.Logger
	users    UserService
	files    FileService
	db       Pinger
	sessions AliveChecker
}

func NewHTTPServer(a string, l logging.Logger, us UserService, fs FileService, db Pinger, sessions AliveChecker) *HTTPServer {
	return &HTTPServer{
		address:  a,
		logger:   l.With("module", "http_server"),
		users:    us,
		files:    fs,
		db:       db,
		sessions: sessions,
	}
}

// Handler returns the root http.Handler with all routes registered.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("GET /stats", s.handleStats)

	mux.HandleFunc("POST /users", s.handleRegister)
	mux.HandleFunc("GET /connect", s.handleConnect)
	mux.HandleFunc("GET /disconnect", s.handleDisconnect)
	mux.HandleFunc("GET /users/me", s.handleMe)

	mux.HandleFunc("POST /files", s.handleUpload)
	mux.HandleFunc("GET /files", s.handleList)
	mux.HandleFunc("GET /files/{id}", s.handleGet)
	mux.HandleFunc("PUT /files/{id}/publish", s.handlePublish)
	mux.HandleFunc("PUT /files/{id}/unpublish", s.handleUnpublish)
	mux.HandleFunc("GET /files/{id}/data", s.handleData)

	return s.loggingMiddleware(mux)
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
