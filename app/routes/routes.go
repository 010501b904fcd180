package routes

import (
	"net/http"
	"time"

	"estatehub/app/controllers"
	"estatehub/app/errs"
	"estatehub/app/middleware"
	"estatehub/app/repositories"
	"estatehub/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Dependencies holds everything the router needs to build its controllers.
type Dependencies struct {
	Stores         repositories.Stores
	Auth           *middleware.Auth
	Logger         zerolog.Logger
	Env            string
	RequestTimeout time.Duration
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(deps Dependencies) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	global := []mux.MiddlewareFunc{
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.Recoverer,
		middleware.ContentTypeJSON,
	}
	router.Use(global...)

	// mux skips middleware for unmatched routes, so wrap those handlers directly.
	router.NotFoundHandler = chain(http.HandlerFunc(notFound), global)
	router.MethodNotAllowedHandler = chain(http.HandlerFunc(methodNotAllowed), global)

	postService := services.NewPostService(deps.Stores.Posts, deps.Stores.SavedPosts, deps.Stores.Users)
	savedService := services.NewSavedPostService(deps.Stores.SavedPosts, deps.Stores.Posts)

	postController := controllers.NewPostController(postService, deps.RequestTimeout)
	savedController := controllers.NewSavedPostController(savedService, deps.RequestTimeout)
	healthController := controllers.NewHealthController(deps.Env, map[string]repositories.Pinger{
		"database": deps.Stores.Health,
	})

	router.HandleFunc("/health", healthController.Check).Methods("GET")

	// Posts endpoints. Registered on the root router so a wrong method
	// reaches MethodNotAllowedHandler; a subrouter reports it as not found.
	router.HandleFunc("/posts", postController.Index).Methods("GET")
	router.Handle("/posts", deps.Auth.RequireAuth(http.HandlerFunc(postController.Create))).Methods("POST")
	router.Handle("/posts/{id}", deps.Auth.OptionalAuth(http.HandlerFunc(postController.Show))).Methods("GET")
	router.Handle("/posts/{id}", deps.Auth.RequireAuth(http.HandlerFunc(postController.Edit))).Methods("PUT")
	router.Handle("/posts/{id}", deps.Auth.RequireAuth(http.HandlerFunc(postController.Delete))).Methods("DELETE")
	router.Handle("/posts/{id}/save", deps.Auth.RequireAuth(http.HandlerFunc(savedController.Toggle))).Methods("POST")

	return router
}

func chain(h http.Handler, mws []mux.MiddlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func notFound(w http.ResponseWriter, r *http.Request) {
	errs.NewNotFoundError("Route not found").Write(w)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	errs.NewMethodNotAllowedError().Write(w)
}
