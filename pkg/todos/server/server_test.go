package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ndjamen/todos/cmd/todos/config"
	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/ndjamen/todos/pkg/todos/store"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T, metrics *Metrics) (*httptest.Server, *store.Store) {
	s := store.NewTest()
	router := SetupRouter(
		&config.Config{BcryptCost: bcrypt.MinCost},
		s,
		s,
		metrics,
	)
	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		s.Close()
	})
	return server, s
}

func call(t *testing.T, method, url, body string, headers map[string]string) (int, string) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.Nil(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.Nil(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	return resp.StatusCode, string(out)
}

var errBroken = errors.New("database is gone")

// brokenStore fails every call
type brokenStore struct{}

func (brokenStore) User(int64) (*model.User, error) { return nil, errBroken }
func (brokenStore) UserByEmail(string) (*model.User, error) { return nil, errBroken }
func (brokenStore) UserBySecret(string) (*model.User, error) { return nil, errBroken }
func (brokenStore) CreateUser(*model.User) error { return errBroken }
func (brokenStore) ToDo(int64) (*model.ToDo, error) { return nil, errBroken }
func (brokenStore) ToDoExists(int64) (bool, error) { return false, errBroken }
func (brokenStore) SaveToDo(*model.ToDo) error { return errBroken }
func (brokenStore) DeleteToDo(int64) error { return errBroken }
func (brokenStore) ToDosByUser(int64, *bool) ([]*model.ToDo, error) {
	return nil, errBroken
}
