package web

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	homeTemplate     = "/index.tmpl"
	notFoundTemplate = "/404.tmpl"
)

func (s *server) RenderHomePage(c *gin.Context) {
	c.HTML(http.StatusOK, homeTemplate, gin.H{
		"Title": "Calculator",
	})
}

// renderNotFound is self-guarding: if the 404 template is missing or fails to
// execute, it falls back to an inline plain-text body instead of escalating
// to a 500.
func (s *server) renderNotFound(c *gin.Context) {
	tmpl := s.templates.Lookup(notFoundTemplate)
	if tmpl == nil {
		c.String(http.StatusNotFound, "Page Not Found")
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, gin.H{"Title": "Page Not Found"}); err != nil {
		s.logger.Warn("Failed to render not found page", zap.Error(err))
		c.String(http.StatusNotFound, "Page Not Found")
		return
	}
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", buf.Bytes())
}
