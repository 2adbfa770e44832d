package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/forkful/forkful-go/internal/config"
	"github.com/forkful/forkful-go/internal/handler"
	"github.com/forkful/forkful-go/internal/middleware"
	"github.com/forkful/forkful-go/internal/repository"
	"github.com/forkful/forkful-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	tagRepo := repository.NewTagRepository(db)
	socialRepo := repository.NewSocialRepository(db, recipeRepo)
	inventoryRepo := repository.NewItemRepository(db, repository.TableInventory)
	shoppingRepo := repository.NewItemRepository(db, repository.TableShoppingList)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.ResetTokenTTL))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo))
	recipeHandler := handler.NewRecipeHandler(service.NewRecipeService(recipeRepo, commentRepo, tagRepo))
	commentHandler := handler.NewCommentHandler(service.NewCommentService(commentRepo))
	tagHandler := handler.NewTagHandler(service.NewTagService(tagRepo))
	socialHandler := handler.NewSocialHandler(service.NewSocialService(socialRepo))
	inventoryHandler := handler.NewItemHandler(service.NewItemService(inventoryRepo), "inventoryId")
	shoppingHandler := handler.NewItemHandler(service.NewItemService(shoppingRepo), "shoppingListId")

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		// Credential endpoints, rate limited against password guessing.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/admin/login", authHandler.HandleAdminLogin)
			r.Post("/user/loginWithPassword", authHandler.HandleLogin)
			r.Post("/user/register", authHandler.HandleRegister)
			r.Post("/user/forgotPassword", authHandler.HandleForgotPassword)
			r.Post("/user/resetPassword", authHandler.HandleResetPassword)
		})

		// Public browsing.
		r.Get("/recipes/popular", recipeHandler.HandlePopular)
		r.Get("/recipes/all", recipeHandler.HandleAll)
		r.Get("/recipes/search", recipeHandler.HandleSearch)
		r.Get("/recipes/tag/popular", recipeHandler.HandlePopularByTag)
		r.Get("/recipes/{id:[0-9]+}", recipeHandler.HandleGet)
		r.Get("/comments/getRecipeComments", commentHandler.HandleForRecipe)
		r.Get("/likes/count", socialHandler.HandleLikeCount)
		r.Get("/tags/getAllMyTags", tagHandler.HandleAll)

		// Everything below requires a session token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))

			r.Get("/recipes/getAllMyRecipes", recipeHandler.HandleMine)
			r.Post("/recipes/publish", recipeHandler.HandlePublish)
			r.Post("/recipes/edit", recipeHandler.HandleEdit)
			r.Delete("/recipes/delete", recipeHandler.HandleDelete)

			r.Post("/comments/postRecipeComment", commentHandler.HandlePost)
			r.Delete("/comments/deleteComment", commentHandler.HandleDelete)

			r.Post("/favorites/add", socialHandler.HandleAddFavorite)
			r.Delete("/favorites/remove", socialHandler.HandleRemoveFavorite)
			r.Get("/favorites/getAllMyFavorites", socialHandler.HandleMyFavorites)

			r.Post("/likes/likeRecipes", socialHandler.HandleLike)
			r.Delete("/likes/UnlikeRecipe", socialHandler.HandleUnlike)
			r.Get("/likes/getAllMyLikes", socialHandler.HandleMyLikes)

			r.Post("/tags/addNewTag", tagHandler.HandleAdd)
			r.Delete("/tags/{id:[0-9]+}", tagHandler.HandleDelete)

			r.Get("/inventory/getAllMyInventory", inventoryHandler.HandleMine)
			r.Get("/inventory/{id:[0-9]+}", inventoryHandler.HandleGet)
			r.Post("/inventory/add", inventoryHandler.HandleAdd)
			r.Put("/inventory/edit", inventoryHandler.HandleUpdate)
			r.Delete("/inventory/delete", inventoryHandler.HandleDelete)

			r.Get("/list/getAllMyShoppingList", shoppingHandler.HandleMine)
			r.Get("/list/edit/{id:[0-9]+}", shoppingHandler.HandleGet)
			r.Post("/list/add", shoppingHandler.HandleAdd)
			r.Put("/list/edit", shoppingHandler.HandleUpdate)
			r.Delete("/list/delete", shoppingHandler.HandleDelete)

			r.Get("/user/getUserProfile", userHandler.HandleGetProfile)
			r.Put("/user/updateUserProfile", userHandler.HandleUpdateProfile)
		})
	})

	// The browser client runs on another origin during development.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", middleware.TokenHeader},
		AllowCredentials: true,
	}).Handler(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsHandler,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
