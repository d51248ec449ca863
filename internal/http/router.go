package http

import (
	"net/http"

	"mnemo/internal/auth"
	"mnemo/internal/config"
	"mnemo/internal/http/handler"
	mw "mnemo/internal/http/middleware"
	"mnemo/internal/repo"
	"mnemo/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	me := &handler.MeHandler{DB: db}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	decks := &repo.DeckRepo{DB: db}
	noteTypes := &repo.NoteTypeRepo{DB: db}
	notes := &repo.NoteRepo{DB: db}
	cards := &repo.CardRepo{DB: db}

	deckH := &handler.DeckHandler{Repo: decks}
	noteTypeH := &handler.NoteTypeHandler{
		Repo: noteTypes,
		Svc:  &service.NoteTypeService{Repo: noteTypes},
	}
	noteH := &handler.NoteHandler{
		Repo: notes,
		Svc:  &service.NoteService{DB: db, Notes: notes, NoteTypes: noteTypes},
	}
	cardH := &handler.CardHandler{Repo: cards}

	r.Route("/decks", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/", deckH.List)
		r.Post("/", deckH.Create)
		r.Get("/{id}", deckH.Get)
		r.Put("/{id}", deckH.Update)
		r.Delete("/{id}", deckH.Delete)
		r.Post("/{id}/restore", deckH.Restore)
	})

	r.Route("/note-types", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/", noteTypeH.List)
		r.Post("/", noteTypeH.Create)
		r.Get("/{id}", noteTypeH.Get)
		r.Put("/{id}", noteTypeH.Update)
		r.Delete("/{id}", noteTypeH.Delete)
		r.Post("/{id}/restore", noteTypeH.Restore)
	})

	r.Route("/notes", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/", noteH.List)
		r.Post("/", noteH.Create)
		r.Get("/{id}", noteH.Get)
		r.Put("/{id}", noteH.Update)
		r.Delete("/{id}", noteH.Delete)
		r.Post("/{id}/restore", noteH.Restore)
	})

	r.Route("/cards", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/", cardH.List)
		r.Post("/", cardH.Create)
		r.Get("/{id}", cardH.Get)
		r.Patch("/{id}/suspend", cardH.Suspend)
		r.Patch("/{id}/schedule", cardH.Schedule)
		r.Delete("/{id}", cardH.Delete)
		r.Post("/{id}/restore", cardH.Restore)
	})

	return r
}
