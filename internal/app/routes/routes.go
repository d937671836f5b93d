// Package routes wires controllers to URL paths.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okutan/lexbook/internal/app/controllers"
	"github.com/okutan/lexbook/internal/app/models"
	"github.com/okutan/lexbook/internal/middleware"
)

// RegisterRoutes mounts the full API surface on the router
func RegisterRoutes(router *gin.Engine, ctrl *controllers.Controllers, authMW *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authenticated := authMW.Authenticate()
	teacherOnly := middleware.RequireRole(models.RoleTeacher)

	auth := router.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.GET("/profile", authenticated, ctrl.Auth.Profile)
		auth.POST("/refresh", authenticated, ctrl.Auth.Refresh)
	}

	wordbooks := router.Group("/wordbooks")
	{
		// Reading books and words is open. Mutation needs a teacher
		// session; the route gate mirrors the check the services run.
		wordbooks.GET("", ctrl.WordBook.List)
		wordbooks.GET("/:id", ctrl.WordBook.Get)
		wordbooks.GET("/:id/words", ctrl.Word.ListByWordBook)

		wordbooks.POST("", authenticated, teacherOnly, ctrl.WordBook.Create)
		wordbooks.POST("/crawl", authenticated, teacherOnly, ctrl.WordBook.Crawl)
		wordbooks.PUT("/:id", authenticated, teacherOnly, ctrl.WordBook.Update)
		wordbooks.DELETE("/:id", authenticated, teacherOnly, ctrl.WordBook.Delete)
		wordbooks.POST("/:id/words", authenticated, teacherOnly, ctrl.Word.Create)
		wordbooks.POST("/:id/words/import", authenticated, teacherOnly, ctrl.Word.Import)
	}

	words := router.Group("/words")
	{
		words.GET("/:id", ctrl.Word.Get)
		words.PUT("/:id", authenticated, teacherOnly, ctrl.Word.Update)
		words.DELETE("/:id", authenticated, teacherOnly, ctrl.Word.Delete)
	}

	classes := router.Group("/classes", authenticated)
	{
		classes.GET("", ctrl.Class.List)
		classes.POST("", ctrl.Class.Create)
		classes.GET("/:id", ctrl.Class.Get)
		classes.PUT("/:id", ctrl.Class.Update)
		classes.DELETE("/:id", ctrl.Class.Delete)
		classes.POST("/:id/students", ctrl.Class.AddStudent)
		classes.DELETE("/:id/students/:studentId", ctrl.Class.RemoveStudent)
	}
}
