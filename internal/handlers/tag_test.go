package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/todolist-api/internal/dto"
	"github.com/yukikurage/todolist-api/internal/models"
	"github.com/yukikurage/todolist-api/internal/repository"
	"github.com/yukikurage/todolist-api/internal/services"
	"github.com/yukikurage/todolist-api/internal/testutil"
	"gorm.io/gorm"
)

// TagHandlerTestSuite drives TagHandler through a router like the real one
type TagHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	signer *testutil.Signer
	router *gin.Engine
}

func (suite *TagHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.db = testutil.NewTestDB(suite.T())
	suite.signer = testutil.NewSigner(suite.T())

	handler := NewTagHandler(services.NewTagService(repository.NewTagRepository(suite.db)), discardLogger())

	suite.router = gin.New()
	tags := suite.router.Group("/api/tags")
	{
		tags.GET("", handler.ListTags)
		tags.POST("", handler.CreateTag)
		tags.GET("/:id", handler.GetTag)
		tags.PUT("/:id", handler.UpdateTag)
		tags.DELETE("/:id", handler.DeleteTag)
	}
}

func (suite *TagHandlerTestSuite) do(method, path string, body any, subject string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if subject != "" {
		req.Header.Set("Authorization", suite.signer.Bearer(suite.T(), subject))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TagHandlerTestSuite) createTag(subject, name string) dto.TagResponse {
	w := suite.do(http.MethodPost, "/api/tags", map[string]string{"tagName": name}, subject)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var tag dto.TagResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tag))
	suite.Equal(fmt.Sprintf("/api/tags/%d", tag.ID), w.Header().Get("Location"))
	return tag
}

func (suite *TagHandlerTestSuite) TestCreateAndList() {
	suite.createTag(alice, "work")
	suite.createTag(bob, "play")

	w := suite.do(http.MethodGet, "/api/tags", nil, alice)

	suite.Equal(http.StatusOK, w.Code)
	var tags []dto.TagResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tags))
	suite.Require().Len(tags, 1)
	suite.Equal("work", tags[0].Name)
}

func (suite *TagHandlerTestSuite) TestCreate_Validation() {
	w := suite.do(http.MethodPost, "/api/tags", map[string]string{"tagName": strings.Repeat("x", 51)}, alice)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "tagName")

	w = suite.do(http.MethodPost, "/api/tags", map[string]string{}, alice)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TagHandlerTestSuite) TestUnauthenticated() {
	w := suite.do(http.MethodPost, "/api/tags", map[string]string{"tagName": "x"}, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	var count int64
	suite.db.Model(&models.Tag{}).Count(&count)
	suite.Zero(count)
}

func (suite *TagHandlerTestSuite) TestForeignTagIsNotFound() {
	tag := suite.createTag(alice, "mine")
	path := fmt.Sprintf("/api/tags/%d", tag.ID)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, path, nil, bob).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodPut, path, map[string]string{"tagName": "stolen"}, bob).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, path, nil, bob).Code)

	w := suite.do(http.MethodGet, path, nil, alice)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"tagName":"mine"`)
}

func (suite *TagHandlerTestSuite) TestUpdateAndDelete() {
	tag := suite.createTag(alice, "old")
	path := fmt.Sprintf("/api/tags/%d", tag.ID)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodPut, path, map[string]string{"tagName": "new"}, alice).Code)
	suite.Contains(suite.do(http.MethodGet, path, nil, alice).Body.String(), `"tagName":"new"`)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, path, nil, alice).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, path, nil, alice).Code)
}

func (suite *TagHandlerTestSuite) TestInvalidID() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/tags/abc", nil, alice).Code)
}

func TestTagHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TagHandlerTestSuite))
}
