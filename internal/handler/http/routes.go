package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/register", h.register)
	router.Post("/login", h.login)

	router.Route("/despesas", func(r chi.Router) {
		r.Post("/", h.createExpense)
		r.Get("/", h.listExpenses)
		// chi allows a single wildcard name per path position, so {id}
		// doubles as the ano of the month listing one level deeper.
		r.Route("/{id}", func(r chi.Router) {
			r.Put("/", h.updateExpense)
			r.Delete("/", h.deleteExpense)
			r.Get("/{mes}", h.listMonthExpenses)
		})
	})

	router.Route("/metas", func(r chi.Router) {
		r.Post("/", h.upsertGoal)
		r.Get("/", h.listGoals)
		r.Get("/{ano}/{mes}", h.getGoal)
	})

	router.Get("/api/version", h.getServerVersion)

	return router
}
