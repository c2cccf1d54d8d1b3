package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/example/color-analyzer/internal/imaging"
	"github.com/example/color-analyzer/internal/palette"
	"github.com/example/color-analyzer/internal/undertone"
	"github.com/example/color-analyzer/internal/usecase"
)

// MaxUploadSize bounds the accepted photo payload.
const MaxUploadSize = 8 << 20

// RegisterRoutes wires the HTTP handlers to the Gin router. The supplied
// middleware guards the analyze endpoint only; health and palette browsing
// stay open.
func RegisterRoutes(router *gin.Engine, uc *usecase.AnalysisUseCase, middleware ...gin.HandlerFunc) {
	// The browser frontend lives on another origin, so every endpoint
	// answers cross-origin requests and preflights.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Color Analyzer API"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/palettes/:undertone", paletteHandler)

	analyze := router.Group("/", middleware...)
	analyze.POST("/analyze", analyzeHandler(uc))
}

func analyzeHandler(uc *usecase.AnalysisUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize)

		file, err := c.FormFile("image")
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}

		if !acceptableContentType(file.Header.Get("Content-Type")) {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "image content type required"})
			return
		}

		style := c.DefaultPostForm("style", string(palette.StyleSubtle))
		formality := c.DefaultPostForm("formality", string(palette.FormalityCasual))

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open image"})
			return
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
			return
		}

		requestID, result, err := uc.Analyze(c.Request.Context(), style, formality, data)
		if err != nil {
			respondAnalysisError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"request_id": requestID,
			"undertone":  result.Undertone,
			"colors":     result.Colors,
			"outfits":    result.Outfits,
		})
	}
}

func paletteHandler(c *gin.Context) {
	tone := undertone.Undertone(c.Param("undertone"))
	style := palette.Style(c.DefaultQuery("style", string(palette.StyleSubtle)))

	// Unknown values use the documented neutral/subtle fallback.
	c.JSON(http.StatusOK, gin.H{
		"undertone": tone,
		"style":     style,
		"colors":    palette.ForUndertone(tone, style),
	})
}

func respondAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidSelector):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, imaging.ErrDecode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot load image"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
	}
}

func acceptableContentType(contentType string) bool {
	if contentType == "" || contentType == "application/octet-stream" {
		// Some clients omit or generalize the part type; the decoder is the
		// real gate.
		return true
	}
	return strings.HasPrefix(contentType, "image/")
}
