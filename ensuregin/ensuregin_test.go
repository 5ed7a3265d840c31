package ensuregin

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/banglin/go-ensure/ensure"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type createListRequest struct {
	Title ensure.String `json:"title" binding:"nonempty"`
	Owner string        `json:"owner" binding:"required"`
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidation(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.POST("/todolists", func(c *gin.Context) {
		var req createListRequest
		if err := BindJSON(c, &req); err != nil {
			Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"title": req.Title})
	})
	return r
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		description  string
		body         string
		responseCode int
		responseBody string
	}{
		{
			description:  "Present title",
			body:         `{"title":"groceries","owner":"alice"}`,
			responseCode: http.StatusOK,
			responseBody: `{"title":"groceries"}`,
		},
		{
			description:  "Whitespace title",
			body:         `{"title":" ","owner":"alice"}`,
			responseCode: http.StatusOK,
			responseBody: `{"title":" "}`,
		},
		{
			description:  "Missing title",
			body:         `{"owner":"alice"}`,
			responseCode: http.StatusBadRequest,
			responseBody: `{"error":"Title: expected string to be defined"}`,
		},
		{
			description:  "Null title",
			body:         `{"title":null,"owner":"alice"}`,
			responseCode: http.StatusBadRequest,
			responseBody: `{"error":"Title: expected string to be not null"}`,
		},
		{
			description:  "Empty title",
			body:         `{"title":"","owner":"alice"}`,
			responseCode: http.StatusBadRequest,
			responseBody: `{"error":"Title: expected string to be not empty"}`,
		},
		{
			description:  "Only non-presence failure",
			body:         `{"title":"groceries"}`,
			responseCode: http.StatusBadRequest,
			responseBody: `{"error":"Owner: failed \"required\" validation"}`,
		},
	}

	router := newRouter()
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/todolists", strings.NewReader(tt.body))
			request.Header.Set("Content-Type", "application/json")
			writer := httptest.NewRecorder()

			router.ServeHTTP(writer, request)

			assert.Equal(t, tt.responseCode, writer.Code)
			assert.JSONEq(t, tt.responseBody, writer.Body.String())
		})
	}
}

func TestBindJSON_MalformedBody(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "/todolists", strings.NewReader(`{"title":`))
	request.Header.Set("Content-Type", "application/json")
	writer := httptest.NewRecorder()

	newRouter().ServeHTTP(writer, request)

	assert.Equal(t, http.StatusBadRequest, writer.Code)
	assert.Contains(t, writer.Body.String(), `"error"`)
}
