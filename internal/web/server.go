package web

import (
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"calcweb/internal/config"
)

type server struct {
	config *config.Config
	logger *zap.Logger

	templates *template.Template
	staticDir string
}

func newServer(config *config.Config, logger *zap.Logger) (*server, error) {
	staticDir, templatesDir, err := resolveDirs(config)
	if err != nil {
		return nil, err
	}

	s := &server{
		config:    config,
		logger:    logger,
		staticDir: staticDir,
	}
	s.templates = s.buildHTMLTemplates(os.DirFS(templatesDir))
	return s, nil
}

// buildHTMLTemplates parses every file under the templates directory into a
// single template set keyed by /-prefixed path. Missing or unreadable
// templates are tolerated: rendering degrades at request time instead of
// failing startup.
func (s *server) buildHTMLTemplates(fsys fs.FS) *template.Template {
	tmpl := template.New("")
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		bytes, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if _, err := tmpl.New("/" + p).Parse(string(bytes)); err != nil {
			return errors.Wrapf(err, "Failed to parse template %s", p)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to load html templates", zap.Error(err))
	}
	return tmpl
}

func (s *server) router() *gin.Engine {
	r := gin.New()

	r.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	r.Use(s.recovery())

	r.SetHTMLTemplate(s.templates)

	r.GET("/", s.RenderHomePage)
	r.GET("/static/*filepath", s.serveStaticAsset)
	r.NoRoute(s.renderNotFound)

	return r
}

// serveStaticAsset streams a file from the assets root. The requested path is
// cleaned rooted at / before joining, so traversal segments cannot resolve
// outside the root.
func (s *server) serveStaticAsset(c *gin.Context) {
	rel := path.Clean("/" + c.Param("filepath"))
	name := filepath.Join(s.staticDir, filepath.FromSlash(rel))

	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		s.renderNotFound(c)
		return
	}
	c.File(name)
}

// recovery terminates any handler panic at the request boundary with a fixed
// plain-text 500. It must not render templates or touch the filesystem.
func (s *server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("Recovered from handler panic",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path))
				c.Abort()
				if !c.Writer.Written() {
					c.String(http.StatusInternalServerError, "Internal Server Error")
				}
			}
		}()
		c.Next()
	}
}

func (s *server) run() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := s.router()

	s.logger.Info("Starting server", zap.String("bind_address", s.config.ListenAddress()))
	return r.Run(s.config.ListenAddress())
}
