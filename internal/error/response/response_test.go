package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, handler gin.HandlerFunc, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.GET("/test", handler)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccessDefaultsToJSON(t *testing.T) {
	w := serve(t, func(c *gin.Context) { Success(c, map[string]int{"number": 1}) }, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	body := decode(t, w)
	assert.EqualValues(t, code.ErrSuccess, body["code"])
}

func TestSuccessRendersXMLOnRequest(t *testing.T) {
	type view struct {
		Number int `xml:"number"`
	}
	w := serve(t, func(c *gin.Context) { Success(c, view{Number: 7}) }, map[string]string{"Accept": "application/xml"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.True(t, strings.HasPrefix(w.Body.String(), "<response>"))
	assert.Contains(t, w.Body.String(), "<number>7</number>")
}

func TestFaultBusinessErrorIsLocalized(t *testing.T) {
	handler := func(c *gin.Context) { Fault(c, intranet.NewBusinessError(code.ErrAccountNotFound, "KASSE")) }

	w := serve(t, handler, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, code.ErrAccountNotFound, body["code"])
	assert.Equal(t, "Kontoen findes ikke: KASSE", body["message"])
	assert.Equal(t, "business", body["data"].(map[string]any)["kind"])

	w = serve(t, handler, map[string]string{"Accept-Language": "en-US,en;q=0.9"})
	assert.Equal(t, "Account not found: KASSE", decode(t, w)["message"])
}

func TestFaultHidesRepositoryDetails(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		Fault(c, intranet.NewRepositoryError(code.ErrDatabase, errors.New("dial tcp: refused"), "postings"))
	}, map[string]string{"Accept-Language": "en"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, code.ErrRepository, body["code"])
	assert.Equal(t, "Data access failed", body["message"])
}

func TestFaultUnknownError(t *testing.T) {
	w := serve(t, func(c *gin.Context) { Fault(c, errors.New("boom")) }, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, code.ErrUnknown, body["code"])
	assert.Equal(t, "system", body["data"].(map[string]any)["kind"])
}

func TestLanguage(t *testing.T) {
	tests := map[string]code.Language{
		"":                  code.Danish,
		"da":                code.Danish,
		"en-GB":             code.English,
		"de-DE,en;q=0.5":    code.English,
		"fr":                code.Danish,
		"da-DK,en;q=0.8":    code.Danish,
		"not a language!!!": code.Danish,
	}
	for header, want := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Accept-Language", header)
		assert.Equal(t, want, Language(c), header)
	}
}
