package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	t.Run("defaults to v1", func(t *testing.T) {
		r := NewRouter(gin.New())

		assert.NotNil(t, r)
		assert.Equal(t, "v1", r.apiVersion)
		assert.Empty(t, r.registrars)
	})

	t.Run("WithAPIVersion overrides prefix", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine, WithAPIVersion("v2"))
		assert.Equal(t, "v2", r.apiVersion)

		g := NewDomainGroup("stores", "/stores")
		g.GET("", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		r.Register(g).Setup()

		assert.Equal(t, http.StatusOK, perform(engine, "GET", "/api/v2/stores").Code)
		assert.Equal(t, http.StatusNotFound, perform(engine, "GET", "/api/v1/stores").Code)
	})
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	communities := NewDomainGroup("communities", "/communities")
	communities.GET("/code/:code", func(c *gin.Context) {
		c.String(http.StatusOK, c.Param("code"))
	})

	sync := NewDomainGroup("sync", "/sync")
	sync.POST("/run", func(c *gin.Context) {
		c.String(http.StatusOK, "started")
	})

	r.Register(communities).Register(sync)
	r.Setup()

	w := perform(engine, "GET", "/api/v1/communities/code/villa-crespo")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "villa-crespo", w.Body.String())

	w = perform(engine, "POST", "/api/v1/sync/run")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "started", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("exposes name and prefix", func(t *testing.T) {
		g := NewDomainGroup("catalog", "/catalog")
		assert.Equal(t, "catalog", g.Name())
		assert.Equal(t, "/catalog", g.Prefix())
	})

	t.Run("records all verbs", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("catalog", "/catalog")
		ok := func(c *gin.Context) { c.Status(http.StatusOK) }

		g.GET("/products", ok).
			POST("/products", ok).
			PUT("/products/:id", ok).
			PATCH("/products/:id", ok).
			DELETE("/products/:id", ok)

		g.RegisterRoutes(engine.Group("/api/v1"))

		for _, tt := range []struct {
			method string
			path   string
		}{
			{"GET", "/api/v1/catalog/products"},
			{"POST", "/api/v1/catalog/products"},
			{"PUT", "/api/v1/catalog/products/123"},
			{"PATCH", "/api/v1/catalog/products/123"},
			{"DELETE", "/api/v1/catalog/products/123"},
		} {
			w := perform(engine, tt.method, tt.path)
			assert.Equal(t, http.StatusOK, w.Code, "%s %s", tt.method, tt.path)
		}
	})

	t.Run("middleware runs for every route", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("stores", "/stores")

		g.Use(func(c *gin.Context) {
			c.Header("X-Group", "stores")
			c.Next()
		})
		g.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

		g.RegisterRoutes(engine.Group("/api/v1"))

		w := perform(engine, "GET", "/api/v1/stores")
		assert.Equal(t, "stores", w.Header().Get("X-Group"))
	})

	t.Run("subgroups nest under the parent prefix", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("catalog", "/catalog")

		products := g.Group("products", "/products")
		products.GET("", func(c *gin.Context) { c.String(http.StatusOK, "products") })

		categories := g.Group("categories", "/categories")
		categories.GET("", func(c *gin.Context) { c.String(http.StatusOK, "categories") })

		g.RegisterRoutes(engine.Group("/api/v1"))

		w := perform(engine, "GET", "/api/v1/catalog/products")
		assert.Equal(t, "products", w.Body.String())

		w = perform(engine, "GET", "/api/v1/catalog/categories")
		assert.Equal(t, "categories", w.Body.String())
	})
}
