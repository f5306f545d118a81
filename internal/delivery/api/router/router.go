// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	BlogHandler    *handler.BlogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	blogHandler    *handler.BlogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		blogHandler:    params.BlogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Static segments such as /users/profile take precedence over /users/:id.
func (r *router) RegisterRoutes(e *echo.Echo) {
	requireUser := r.authMiddleware.RequireUser
	requireAdmin := r.authMiddleware.RequireAdmin

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	e.POST("/login", r.userHandler.Login)
	e.GET("/logout", r.userHandler.Logout)

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("", r.userHandler.Signup)
		usersGroup.GET("", r.userHandler.ListUsers, requireAdmin)
		usersGroup.GET("/search", r.userHandler.SearchUsers, requireAdmin)
		usersGroup.GET("/profile", r.userHandler.Profile, requireUser)
		usersGroup.DELETE("/delete", r.userHandler.DeleteAccount, requireUser)
		usersGroup.GET("/:id", r.userHandler.GetUser, requireUser)
		usersGroup.PATCH("/:id", r.userHandler.UpdateUser, requireUser)
	}

	blogsGroup := e.Group("/blogs")
	{
		blogsGroup.GET("", r.blogHandler.ListBlogs)
		blogsGroup.GET("/search", r.blogHandler.SearchBlogs)
		blogsGroup.GET("/mine", r.blogHandler.MyBlogs, requireUser)
		blogsGroup.GET("/:id", r.blogHandler.GetBlog)
		blogsGroup.GET("/:id/qrcode", r.blogHandler.ShareCode)
		blogsGroup.POST("", r.blogHandler.CreateBlog, requireUser)
		blogsGroup.PATCH("/:id", r.blogHandler.UpdateBlog, requireUser)
		blogsGroup.DELETE("/:id", r.blogHandler.DeleteBlog, requireUser)
	}
}
