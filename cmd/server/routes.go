package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feastly.backend/internal/interfaces/http/handlers"
	"feastly.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	graphqlHandler *handlers.GraphQLHandler
	uploadsHandler *handlers.UploadsHandler
}

// newRouter assembles the gin engine. The token middleware only copies
// the x-jwt header onto the context; authorization happens per GraphQL
// operation inside the access guard.
func newRouter(d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.TokenMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/graphql", d.graphqlHandler.Handle)
	r.POST("/uploads", d.uploadsHandler.Upload)

	return r
}
