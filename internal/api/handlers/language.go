package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/isday/compound-calculator/internal/api/models"
	"github.com/isday/compound-calculator/internal/i18n"
)

// LanguageHandler resolves the display language of each request
type LanguageHandler struct {
	bundle   *i18n.Bundle
	fallback language.Tag
}

// NewLanguageHandler creates a language handler; fallback applies when the
// request names no supported language.
func NewLanguageHandler(bundle *i18n.Bundle, fallback language.Tag) *LanguageHandler {
	if bundle == nil {
		bundle = i18n.Default()
	}
	return &LanguageHandler{bundle: bundle, fallback: fallback}
}

// Localizer picks the request language and persists an explicit ?lang= choice
// in a cookie.
func (h *LanguageHandler) Localizer(c *gin.Context) *i18n.Localizer {
	tag, persist := i18n.ResolveTagOr(c.Request, h.fallback)
	if persist {
		i18n.SetLanguageCookie(c.Writer, tag)
	}
	return h.bundle.Localizer(tag)
}

// ListLanguages handles GET /api/v1/languages
func (h *LanguageHandler) ListLanguages(c *gin.Context) {
	l := h.Localizer(c)
	c.JSON(http.StatusOK, models.LanguagesResponse{
		Active:    l.Code(),
		Languages: h.bundle.Options(l.Tag()),
	})
}
