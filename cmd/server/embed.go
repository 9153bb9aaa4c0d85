//go:build embed
// +build embed

package main

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed web/dist
var webDist embed.FS

// setupStaticFiles configures the static file serving with embedded frontend
func setupStaticFiles(router *gin.Engine, logger *zap.Logger) {
	logger.Info("using embedded frontend assets")

	distFS, err := fs.Sub(webDist, "web/dist")
	if err != nil {
		logger.Fatal("failed to get dist subdirectory", zap.Error(err))
	}

	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path

		// API routes are handled elsewhere
		if len(urlPath) >= 4 && urlPath[:4] == "/api" {
			c.JSON(404, gin.H{"error": "API endpoint not found"})
			return
		}

		cleanPath := path.Clean(urlPath)
		if cleanPath == "/" {
			cleanPath = "/index.html"
		} else {
			cleanPath = cleanPath[1:]
		}

		file, err := distFS.Open(cleanPath)
		if err == nil {
			defer file.Close()
			stat, err := file.Stat()
			if err == nil && !stat.IsDir() {
				content, err := io.ReadAll(file)
				if err == nil {
					contentType := "text/html; charset=utf-8"
					switch path.Ext(cleanPath) {
					case ".js":
						contentType = "application/javascript"
					case ".css":
						contentType = "text/css"
					case ".json":
						contentType = "application/json"
					case ".png":
						contentType = "image/png"
					case ".svg":
						contentType = "image/svg+xml"
					case ".ico":
						contentType = "image/x-icon"
					}
					c.Data(http.StatusOK, contentType, content)
					return
				}
			}
		}

		// SPA fallback: serve index.html for client-side routes
		index, err := distFS.Open("index.html")
		if err != nil {
			c.JSON(404, gin.H{"error": "Not found"})
			return
		}
		defer index.Close()
		content, err := io.ReadAll(index)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to read index.html"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})
}
