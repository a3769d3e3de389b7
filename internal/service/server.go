package service

import (
	"shadow_system/internal/app"
	"shadow_system/internal/pkg/auth"
	"shadow_system/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Service encapsulates the HTTP server configuration, including the application's business logic,
// HTTP handlers, the server's run address, and a logger for event and error logging.
type Service struct {
	handlers   *handlers
	app        *app.App
	runAddress string
	log        *logger.Logger
}

// NewService creates and initializes a new Service instance.
// It sets up the handlers using the provided application and logger,
// and configures the server's run address.
func NewService(app *app.App, runAddress string, l *logger.Logger) *Service {
	handlers := newHandlers(app, l)
	return &Service{handlers: handlers, app: app, runAddress: runAddress, log: l}
}

// NewRouter sets up and returns a new chi.Router instance with the necessary middleware and routes.
// It applies logging middleware globally, and JWT authentication middleware for protected routes.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(service.log.WithLogging())

	router.Post("/api/auth/register", service.handlers.registerHandler)
	router.Post("/api/auth/login", service.handlers.loginHandler)

	router.Route("/", func(r chi.Router) {
		r.Use(auth.CheckJWTMiddleware())

		r.Route("/api/user", func(r chi.Router) {
			r.Get("/profile", service.handlers.profileHandler)
			r.Put("/profile", service.handlers.updateProfileHandler)
			r.Delete("/titles/{name}", service.handlers.deleteTitleHandler)
			r.Get("/inventory", service.handlers.inventoryHandler)
			r.Post("/purchase", service.handlers.purchaseHandler)
			r.Patch("/inventory/{id}/use", service.handlers.useItemHandler)
			r.Delete("/inventory/{id}", service.handlers.deleteInventoryItemHandler)
			r.Get("/daily-quest-status", service.handlers.dailyStatusHandler)
			r.Post("/toggle-quest-completion", service.handlers.toggleQuestHandler)
			r.Post("/complete-daily-quests", service.handlers.completeDailyQuestsHandler)
		})

		r.Route("/api/daily-quests", func(r chi.Router) {
			r.Get("/", service.handlers.listDailyQuestsHandler)
			r.Post("/", service.handlers.createDailyQuestHandler)
			r.Put("/{id}", service.handlers.updateDailyQuestHandler)
			r.Delete("/{id}", service.handlers.deleteDailyQuestHandler)
		})

		r.Route("/api/dungeon-quests", func(r chi.Router) {
			r.Get("/", service.handlers.listDungeonQuestsHandler)
			r.Post("/", service.handlers.createDungeonQuestHandler)
			r.Put("/{id}", service.handlers.updateDungeonQuestHandler)
			r.Delete("/{id}", service.handlers.deleteDungeonQuestHandler)
			r.Patch("/{id}/complete", service.handlers.completeDungeonQuestHandler)
		})

		r.Route("/api/penalty-quests", func(r chi.Router) {
			r.Get("/", service.handlers.listPenaltyQuestsHandler)
			r.Post("/", service.handlers.createPenaltyQuestHandler)
			r.Delete("/{id}", service.handlers.deletePenaltyQuestHandler)
			r.Patch("/{id}/accept", service.handlers.acceptPenaltyQuestHandler)
			r.Post("/cleanup", service.handlers.penaltyCleanupHandler)
		})

		r.Route("/api/skills", func(r chi.Router) {
			r.Get("/", service.handlers.listSkillsHandler)
			r.Post("/", service.handlers.createSkillHandler)
			r.Post("/update-multiple", service.handlers.skillBatchHandler)
			r.Put("/{id}", service.handlers.updateSkillHandler)
			r.Delete("/{id}", service.handlers.deleteSkillHandler)
		})

		r.Route("/api/shop", func(r chi.Router) {
			r.Get("/", service.handlers.listShopItemsHandler)
			r.Post("/", service.handlers.createShopItemHandler)
			r.Put("/{id}", service.handlers.updateShopItemHandler)
			r.Delete("/{id}", service.handlers.deleteShopItemHandler)
		})

		r.Route("/api/daily-rewards", func(r chi.Router) {
			r.Get("/", service.handlers.listDailyRewardsHandler)
			r.Post("/", service.handlers.createDailyRewardHandler)
			r.Put("/{id}", service.handlers.updateDailyRewardHandler)
			r.Delete("/{id}", service.handlers.deleteDailyRewardHandler)
		})
	})
	return router
}
