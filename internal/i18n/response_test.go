package i18n

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestSuccessResponseChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/chain", func(c *gin.Context) {
		Success(SuccessProductCreated).With("k", "v").WithPayload(gin.H{"page": "products"}).Send(c)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chain", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Product added", gjson.Get(w.Body.String(), "message").String())
	assert.Equal(t, "products", gjson.Get(w.Body.String(), "page").String())
}

func TestSuccessWithoutNotice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/plain", func(c *gin.Context) {
		Success("").WithPayload([]int{1, 2}).Send(c)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))

	assert.False(t, gjson.Get(w.Body.String(), "message").Exists())
	assert.Equal(t, int64(2), gjson.Get(w.Body.String(), "data.1").Int())
}

func TestRespondWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/conflict", func(c *gin.Context) { RespondWithError(c, ErrorEntityInUse) })
	r.GET("/plain", func(c *gin.Context) { RespondWithError(c, errors.New("db down")) })
	r.GET("/nil", func(c *gin.Context) {
		RespondWithError(c, nil)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/conflict", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Record is still referenced by other records", gjson.Get(w.Body.String(), "error").String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", gjson.Get(w.Body.String(), "error").String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nil", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
