package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndjamen/todos/cmd/todos/config"
	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/ndjamen/todos/pkg/todos/server"
	"github.com/ndjamen/todos/pkg/todos/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T) *httptest.Server {
	store := store.NewTest()
	router := server.SetupRouter(&config.Config{BcryptCost: bcrypt.MinCost}, store, store, nil)
	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func Test_user(t *testing.T) {
	server := newTestServer(t)
	client := New(server.URL)

	greeting, err := client.Greet("Jane", "Doe")
	assert.Nil(t, err)
	assert.Equal(t, "Hello Jane Doe", greeting)

	user, err := client.Register("jane+todos@x.com", "p&ss")
	require.Nil(t, err)
	assert.NotEmpty(t, user.Secret)

	secret, err := client.Validate("jane+todos@x.com", "p&ss")
	assert.Nil(t, err)
	assert.Equal(t, user.Secret, secret)

	_, err = client.Validate("jane+todos@x.com", "wrong")
	var clientErr *Error
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
	assert.Equal(t, "Wrong credentials provided", clientErr.Message)

	fetched, err := client.UserGet(user.ID)
	assert.Nil(t, err)
	assert.Equal(t, "jane+todos@x.com", fetched.Email)
	assert.Empty(t, fetched.Secret)

	_, err = client.UserGet(42)
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}

func Test_todo(t *testing.T) {
	server := newTestServer(t)
	client := New(server.URL)

	user, err := client.Register("a@x.com", "p")
	require.Nil(t, err)

	_, err = client.ToDosGet(nil)
	var clientErr *Error
	require.True(t, errors.As(err, &clientErr), "should need a secret")
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)

	client.SetSecret(user.Secret)

	todos, err := client.ToDosGet(nil)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(todos))

	saved, err := client.ToDoPost(&model.ToDo{Description: "buy milk", UserID: &user.ID})
	require.Nil(t, err)
	assert.Equal(t, "buy milk", saved.Description)

	saved.Description = "buy bread"
	updated, err := client.ToDoPut(saved)
	assert.Nil(t, err)
	assert.Equal(t, "buy bread", updated.Description)

	done, err := client.ToDoPatch(saved.ID, true)
	assert.Nil(t, err)
	assert.True(t, *done.IsDone)

	fetched, err := client.ToDoGet(saved.ID)
	assert.Nil(t, err)
	assert.Equal(t, "buy bread", fetched.Description)
	assert.True(t, *fetched.IsDone)

	isDone := false
	todos, err = client.ToDosGet(&isDone)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(todos))

	todos, err = client.ToDosGet(nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(todos))

	err = client.ToDoDelete(saved.ID)
	assert.Nil(t, err)

	_, err = client.ToDoGet(saved.ID)
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}
