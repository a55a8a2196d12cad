//go:build integration
// +build integration

package tests

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/pine007/pi-todo/internal/adapter/db"
	httpadapter "github.com/pine007/pi-todo/internal/adapter/http"
	"github.com/pine007/pi-todo/internal/adapter/http/dto"
	"github.com/pine007/pi-todo/internal/adapter/http/handlers"
	appservice "github.com/pine007/pi-todo/internal/app/service"
	"github.com/pine007/pi-todo/internal/auth"
	"github.com/pine007/pi-todo/pkg/apierrors"
)

type TodoIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestTodoIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TodoIntegrationSuite))
}

func (s *TodoIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	tokens := auth.NewManager(auth.Config{Secret: []byte("integration-secret")})

	userRepository := dbadapter.NewUserRepository(s.DB)
	taskRepository := dbadapter.NewTaskRepository(s.DB)
	categoryRepository := dbadapter.NewCategoryRepository(s.DB)
	statsRepository := dbadapter.NewStatsRepository(s.DB)

	authService := appservice.NewAuthService(userRepository, tokens)
	taskService := appservice.NewTaskService(taskRepository, categoryRepository)
	categoryService := appservice.NewCategoryService(categoryRepository)
	statsService := appservice.NewStatsService(statsRepository)

	router := gin.New()
	httpadapter.RegisterRoutes(
		router,
		tokens,
		handlers.NewHealthHandler(s.DB),
		handlers.NewAuthHandler(authService),
		handlers.NewTaskHandler(taskService),
		handlers.NewCategoryHandler(categoryService),
		handlers.NewStatsHandler(statsService),
	)
	s.router = router
}

func (s *TodoIntegrationSuite) registerUser(username, email string) string {
	rec := s.request(http.MethodPost, "/api/auth/register", "",
		fmt.Sprintf(`{"username":%q,"email":%q,"password":"secret123"}`, username, email))
	s.Require().Equal(http.StatusCreated, rec.Code)

	var got dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().NotEmpty(got.Token)
	return got.Token
}

func (s *TodoIntegrationSuite) request(method, target, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TodoIntegrationSuite) TestRegisterAndLogin() {
	s.registerUser("alice", "alice@example.com")

	// Same username again must hit the unique key.
	rec := s.request(http.MethodPost, "/api/auth/register", "",
		`{"username":"alice","email":"other@example.com","password":"secret123"}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var dup apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &dup))
	s.Require().Equal("Username or email already exists", dup.Message)

	rec = s.request(http.MethodPost, "/api/auth/login", "",
		`{"email":"alice@example.com","password":"secret123"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var login dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &login))
	s.Require().NotEmpty(login.Token)
	s.Require().Equal("alice", login.User.Username)

	rec = s.request(http.MethodPost, "/api/auth/login", "",
		`{"email":"alice@example.com","password":"wrong-password"}`)
	s.Require().Equal(http.StatusUnauthorized, rec.Code)

	var bad apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &bad))
	s.Require().Equal("Invalid credentials", bad.Message)
}

func (s *TodoIntegrationSuite) TestProtectedRoutesRequireToken() {
	rec := s.request(http.MethodGet, "/api/tasks", "", "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("Please authenticate", got.Message)
}

func (s *TodoIntegrationSuite) TestTaskLifecycle() {
	token := s.registerUser("alice", "alice@example.com")

	rec := s.request(http.MethodPost, "/api/tasks", token, `{"title":"buy milk"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Require().NotZero(created.ID)
	s.Require().Equal("pending", created.Status)
	s.Require().Nil(created.CategoryID)

	rec = s.request(http.MethodGet, fmt.Sprintf("/api/tasks/%d", created.ID), token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodPut, fmt.Sprintf("/api/tasks/%d", created.ID), token, `{"status":"completed"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Equal("completed", updated.Status)
	s.Require().Equal("buy milk", updated.Title)

	rec = s.request(http.MethodGet, "/api/tasks?status=completed", token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var completed []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &completed))
	s.Require().Len(completed, 1)

	rec = s.request(http.MethodGet, "/api/tasks?status=pending", token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var pending []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &pending))
	s.Require().Len(pending, 0)

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", created.ID), token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	// Second delete must 404, the row is gone.
	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", created.ID), token, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("Task not found", got.Message)
}

func (s *TodoIntegrationSuite) TestTaskPartialUpdate() {
	token := s.registerUser("alice", "alice@example.com")

	rec := s.request(http.MethodPost, "/api/tasks", token,
		`{"title":"file taxes","description":"before april","due_date":"2026-04-15"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Require().NotNil(created.DueDate)
	s.Require().Equal("2026-04-15", *created.DueDate)

	// Explicit null clears the due date, the omitted fields stay untouched.
	rec = s.request(http.MethodPut, fmt.Sprintf("/api/tasks/%d", created.ID), token, `{"due_date":null}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Nil(updated.DueDate)
	s.Require().NotNil(updated.Description)
	s.Require().Equal("before april", *updated.Description)
	s.Require().Equal("file taxes", updated.Title)
}

func (s *TodoIntegrationSuite) TestTasksAreInvisibleAcrossUsers() {
	aliceToken := s.registerUser("alice", "alice@example.com")
	bobToken := s.registerUser("bob", "bob@example.com")

	rec := s.request(http.MethodPost, "/api/tasks", aliceToken, `{"title":"alice task"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))

	// Bob sees a 404, not a 403: the task does not exist for him.
	rec = s.request(http.MethodGet, fmt.Sprintf("/api/tasks/%d", created.ID), bobToken, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)

	rec = s.request(http.MethodPut, fmt.Sprintf("/api/tasks/%d", created.ID), bobToken, `{"status":"completed"}`)
	s.Require().Equal(http.StatusNotFound, rec.Code)

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", created.ID), bobToken, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)

	rec = s.request(http.MethodGet, "/api/tasks", bobToken, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var bobTasks []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &bobTasks))
	s.Require().Len(bobTasks, 0)
}

func (s *TodoIntegrationSuite) TestCategoryLifecycle() {
	token := s.registerUser("alice", "alice@example.com")

	rec := s.request(http.MethodPost, "/api/categories", token, `{"name":"Work"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.CategoryItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Require().NotZero(created.ID)

	rec = s.request(http.MethodPost, "/api/categories", token, `{"name":"Work"}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var dup apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &dup))
	s.Require().Equal("Category with this name already exists", dup.Message)

	// A different user may reuse the name, uniqueness is per owner.
	bobToken := s.registerUser("bob", "bob@example.com")
	rec = s.request(http.MethodPost, "/api/categories", bobToken, `{"name":"Work"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.request(http.MethodPut, fmt.Sprintf("/api/categories/%d", created.ID), token, `{"name":"Office"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var renamed dto.CategoryItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &renamed))
	s.Require().Equal("Office", renamed.Name)

	rec = s.request(http.MethodGet, "/api/categories", token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var list []dto.CategoryItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Require().Len(list, 1)
	s.Require().NotNil(list[0].TaskCount)
	s.Require().Equal(0, *list[0].TaskCount)
}

func (s *TodoIntegrationSuite) TestDeleteCategoryDetachesTasks() {
	token := s.registerUser("alice", "alice@example.com")

	rec := s.request(http.MethodPost, "/api/categories", token, `{"name":"Work"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var category dto.CategoryItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &category))

	rec = s.request(http.MethodPost, "/api/tasks", token,
		fmt.Sprintf(`{"title":"review report","category_id":%d}`, category.ID))
	s.Require().Equal(http.StatusCreated, rec.Code)

	var task dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &task))
	s.Require().NotNil(task.CategoryID)

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	// The task survives with its category detached.
	var categoryID sql.NullInt64
	s.Require().NoError(s.DB.Get(&categoryID, "SELECT category_id FROM tasks WHERE id = ?", task.ID))
	s.Require().False(categoryID.Valid)

	rec = s.request(http.MethodGet, fmt.Sprintf("/api/tasks/%d", task.ID), token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var detached dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &detached))
	s.Require().Nil(detached.CategoryID)
}

func (s *TodoIntegrationSuite) TestAssigningForeignCategoryFails() {
	aliceToken := s.registerUser("alice", "alice@example.com")
	bobToken := s.registerUser("bob", "bob@example.com")

	rec := s.request(http.MethodPost, "/api/categories", aliceToken, `{"name":"Work"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var category dto.CategoryItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &category))

	rec = s.request(http.MethodPost, "/api/tasks", bobToken,
		fmt.Sprintf(`{"title":"bob task","category_id":%d}`, category.ID))
	s.Require().Equal(http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("Category not found", got.Message)
}

func (s *TodoIntegrationSuite) TestStatsOverview() {
	token := s.registerUser("alice", "alice@example.com")

	rec := s.request(http.MethodPost, "/api/categories", token, `{"name":"Work"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var category dto.CategoryItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &category))

	for _, body := range []string{
		fmt.Sprintf(`{"title":"one","category_id":%d}`, category.ID),
		fmt.Sprintf(`{"title":"two","status":"completed","category_id":%d}`, category.ID),
		`{"title":"three","status":"in_progress"}`,
	} {
		rec = s.request(http.MethodPost, "/api/tasks", token, body)
		s.Require().Equal(http.StatusCreated, rec.Code)
	}

	rec = s.request(http.MethodGet, "/api/stats", token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.StatsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(3, got.TasksByStatus.TotalTasks)
	s.Require().Equal(1, got.TasksByStatus.PendingTasks)
	s.Require().Equal(1, got.TasksByStatus.InProgressTasks)
	s.Require().Equal(1, got.TasksByStatus.CompletedTasks)

	s.Require().Len(got.TasksByCategory, 1)
	s.Require().Equal(category.ID, got.TasksByCategory[0].ID)
	s.Require().Equal(2, got.TasksByCategory[0].TaskCount)
	s.Require().Equal(1, got.TasksByCategory[0].CompletedCount)

	// All three were created just now, so today's bucket holds them all.
	s.Require().NotEmpty(got.TasksByDate)
	s.Require().Equal(0, got.OverdueTasks)
}
