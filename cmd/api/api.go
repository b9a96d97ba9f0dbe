package api

import (
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/toplistapp/toplist-server/core"
	"github.com/toplistapp/toplist-server/service/community"
	"github.com/toplistapp/toplist-server/service/media"
	"github.com/toplistapp/toplist-server/service/timeline"
	"github.com/toplistapp/toplist-server/service/user"
)

type APIServer struct {
	address string
	core    *core.Core
}

func NewApiServer(address string, c *core.Core) *APIServer {
	return &APIServer{
		address: address,
		core:    c,
	}
}

func (s *APIServer) Run() error {
	return http.ListenAndServe(s.address, s.Router())
}

// Router wires every service handler under /api.
func (s *APIServer) Router() http.Handler {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware)
	subrouter := router.PathPrefix("/api").Subrouter()

	userHandler := user.NewHandler(s.core)
	userHandler.RegisterRoutes(subrouter)

	mediaHandler := media.NewHandler(s.core)
	mediaHandler.RegisterRoutes(subrouter)

	communityHandler := community.NewHandler(s.core)
	communityHandler.RegisterRoutes(subrouter)

	timelineHandler := timeline.NewHandler(s.core)
	timelineHandler.RegisterRoutes(subrouter)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
	)
	return handlers.CombinedLoggingHandler(os.Stdout, cors(router))
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
