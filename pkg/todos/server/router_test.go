package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ndjamen/todos/cmd/todos/config"
	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_health(t *testing.T) {
	server, _ := newTestServer(t, nil)

	status, _ := call(t, "GET", server.URL+"/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
}

func Test_greet(t *testing.T) {
	server, _ := newTestServer(t, nil)

	status, body := call(t, "GET", server.URL+"/greet?firstName=Jane&lastName=Doe", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hello Jane Doe", body)

	status, body = call(t, "GET", server.URL+"/greet?firstName=Jane", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "Please provide a first and last name")

	status, _ = call(t, "GET", server.URL+"/greet", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func Test_MustUser(t *testing.T) {
	server, _ := newTestServer(t, nil)

	status, _ := call(t, "GET", server.URL+"/todo/all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status, "should return 401 without an api secret")

	status, body := call(t, "GET", server.URL+"/todo/all", "", map[string]string{"api-secret": "gibberish"})
	assert.Equal(t, http.StatusUnauthorized, status, "should return 401 with a gibberish secret")
	assert.NotContains(t, body, "gibberish", "should not echo the presented secret")

	status, body = call(t, "POST", server.URL+"/register", `{"email":"a@x.com","password":"p"}`, nil)
	require.Equal(t, http.StatusCreated, status)
	var user model.User
	require.Nil(t, json.Unmarshal([]byte(body), &user))

	status, body = call(t, "GET", server.URL+"/todo/all", "", map[string]string{"api-secret": user.Secret})
	assert.Equal(t, http.StatusOK, status, "should authorize a user with the secret")
	assert.Equal(t, "[]", body)
}

// register, validate, create a to-do, then list: create does not associate the caller
func Test_registerAndList(t *testing.T) {
	server, _ := newTestServer(t, nil)

	status, body := call(t, "POST", server.URL+"/register", `{"email":"a@x.com","password":"p"}`, nil)
	require.Equal(t, http.StatusCreated, status)
	var user model.User
	require.Nil(t, json.Unmarshal([]byte(body), &user))
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, user.Secret)
	assert.NotContains(t, body, `"p"`, "should not expose the password")

	status, _ = call(t, "GET", server.URL+"/user/validate?email=a@x.com&password=wrong", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = call(t, "GET", server.URL+"/user/validate?email=a@x.com&password=p", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "API Secret: "+user.Secret, body)

	status, body = call(t, "POST", server.URL+"/todo", `{"description":"buy milk"}`, nil)
	require.Equal(t, http.StatusCreated, status)
	var todo model.ToDo
	require.Nil(t, json.Unmarshal([]byte(body), &todo))
	assert.Equal(t, int64(1), todo.ID)

	status, body = call(t, "GET", server.URL+"/todo/all", "", map[string]string{"api-secret": user.Secret})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "[]", body)
}

func Test_listOnlyCallersToDos(t *testing.T) {
	server, _ := newTestServer(t, nil)

	var users []model.User
	for _, email := range []string{"a@x.com", "b@x.com"} {
		status, body := call(t, "POST", server.URL+"/register", fmt.Sprintf(`{"email":"%s","password":"p"}`, email), nil)
		require.Equal(t, http.StatusCreated, status)
		var user model.User
		require.Nil(t, json.Unmarshal([]byte(body), &user))
		users = append(users, user)
	}
	alice, bob := users[0], users[1]

	for i := 0; i < 3; i++ {
		status, _ := call(t, "POST", server.URL+"/todo", fmt.Sprintf(`{"description":"alice %d","isDone":%t,"userId":%d}`, i, i == 0, alice.ID), nil)
		require.Equal(t, http.StatusCreated, status)
	}
	status, _ := call(t, "POST", server.URL+"/todo", fmt.Sprintf(`{"description":"bob","userId":%d}`, bob.ID), nil)
	require.Equal(t, http.StatusCreated, status)
	status, _ = call(t, "POST", server.URL+"/todo", `{"description":"nobody's"}`, nil)
	require.Equal(t, http.StatusCreated, status)

	status, body := call(t, "GET", server.URL+"/todo/all", "", map[string]string{"api-secret": alice.Secret})
	require.Equal(t, http.StatusOK, status)
	var todos []*model.ToDo
	require.Nil(t, json.Unmarshal([]byte(body), &todos))
	assert.Equal(t, 3, len(todos))
	for _, todo := range todos {
		assert.Equal(t, alice.ID, *todo.UserID)
		assert.True(t, strings.HasPrefix(todo.Description, "alice"))
	}

	status, body = call(t, "GET", server.URL+"/todo/all?isDone=true", "", map[string]string{"api-secret": alice.Secret})
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, json.Unmarshal([]byte(body), &todos))
	assert.Equal(t, 1, len(todos))
	assert.Equal(t, "alice 0", todos[0].Description)

	status, _ = call(t, "GET", server.URL+"/todo/all?isDone=maybe", "", map[string]string{"api-secret": alice.Secret})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = call(t, "GET", server.URL+"/todo/all", "", map[string]string{"api-secret": bob.Secret})
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, json.Unmarshal([]byte(body), &todos))
	assert.Equal(t, 1, len(todos))
	assert.Equal(t, "bob", todos[0].Description)
}

func Test_metrics(t *testing.T) {
	metrics := &Metrics{
		Perf: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "test_perf",
		}, []string{"method", "route", "status"}),
		UsersRegistered: prometheus.NewCounter(prometheus.CounterOpts{Name: "test_registered"}),
		ToDosCreated:    prometheus.NewCounter(prometheus.CounterOpts{Name: "test_created"}),
	}
	server, _ := newTestServer(t, metrics)

	call(t, "POST", server.URL+"/register", `{"email":"a@x.com","password":"p"}`, nil)
	call(t, "POST", server.URL+"/todo", `{"description":"buy milk"}`, nil)
	call(t, "GET", server.URL+"/todo/1", "", nil)
	call(t, "GET", server.URL+"/todo/2", "", nil)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.UsersRegistered))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ToDosCreated))
	assert.Equal(t, 4, testutil.CollectAndCount(metrics.Perf))
}

func Test_storeFailures(t *testing.T) {
	router := SetupRouter(&config.Config{}, brokenStore{}, brokenStore{}, nil)
	server := httptest.NewServer(router)
	defer server.Close()

	requests := []struct {
		method, path, body string
		headers            map[string]string
	}{
		{"POST", "/todo", `{"description":"buy milk"}`, nil},
		{"GET", "/todo/1", "", nil},
		{"PUT", "/todo/1", `{"description":"buy milk"}`, nil},
		{"PATCH", "/todo/1?isDone=true", "", nil},
		{"DELETE", "/todo/1", "", nil},
		{"GET", "/todo/all", "", map[string]string{"api-secret": "aSecret"}},
		{"POST", "/register", `{"email":"a@x.com","password":"p"}`, nil},
		{"GET", "/users/1", "", nil},
		{"GET", "/user/validate?email=a@x.com&password=p", "", nil},
	}
	for _, r := range requests {
		status, body := call(t, r.method, server.URL+r.path, r.body, r.headers)
		assert.Equal(t, http.StatusInternalServerError, status, "%s %s", r.method, r.path)
		assert.NotContains(t, body, errBroken.Error(), "should not leak store errors")
	}
}
