// Copyright 2021 Laszlo Fogas
// Original structure Copyright 2018 Drone.IO Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ndjamen/todos/pkg/todos/model"
)

const (
	pathGreet    = "%s/greet"
	pathRegister = "%s/register"
	pathUser     = "%s/users/%d"
	pathValidate = "%s/user/validate"
	pathToDo     = "%s/todo"
	pathToDoID   = "%s/todo/%d"
	pathToDos    = "%s/todo/all"

	secretHeader = "api-secret"
	secretPrefix = "API Secret: "
)

type client struct {
	client *http.Client
	addr   string
	secret string
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// New returns a client at the specified url.
func New(uri string) Client {
	return &client{client: http.DefaultClient, addr: strings.TrimSuffix(uri, "/")}
}

// NewClient returns a client at the specified url authenticating with the api secret.
func NewClient(uri string, secret string) Client {
	return &client{client: http.DefaultClient, addr: strings.TrimSuffix(uri, "/"), secret: secret}
}

// SetClient sets the http.Client.
func (c *client) SetClient(client *http.Client) {
	c.client = client
}

// SetAddress sets the server address.
func (c *client) SetAddress(addr string) {
	c.addr = addr
}

// SetSecret sets the api secret.
func (c *client) SetSecret(secret string) {
	c.secret = secret
}

// Greet returns the greeting of the server
func (c *client) Greet(firstName, lastName string) (string, error) {
	params := url.Values{}
	params.Set("firstName", firstName)
	params.Set("lastName", lastName)
	uri := fmt.Sprintf(pathGreet, c.addr) + "?" + params.Encode()
	return c.text(uri)
}

// Register creates a user
func (c *client) Register(email, password string) (*model.User, error) {
	uri := fmt.Sprintf(pathRegister, c.addr)
	user := new(model.User)
	err := c.post(uri, &credentials{Email: email, Password: password}, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UserGet returns the user with the given id
func (c *client) UserGet(id int64) (*model.User, error) {
	uri := fmt.Sprintf(pathUser, c.addr, id)
	user := new(model.User)
	err := c.get(uri, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Validate returns the api secret of the user
func (c *client) Validate(email, password string) (string, error) {
	params := url.Values{}
	params.Set("email", email)
	params.Set("password", password)
	uri := fmt.Sprintf(pathValidate, c.addr) + "?" + params.Encode()

	text, err := c.text(uri)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(text, secretPrefix), nil
}

// ToDoPost creates a to-do
func (c *client) ToDoPost(in *model.ToDo) (*model.ToDo, error) {
	uri := fmt.Sprintf(pathToDo, c.addr)
	out := new(model.ToDo)
	err := c.post(uri, in, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToDoGet returns the to-do with the given id
func (c *client) ToDoGet(id int64) (*model.ToDo, error) {
	uri := fmt.Sprintf(pathToDoID, c.addr, id)
	out := new(model.ToDo)
	err := c.get(uri, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToDosGet returns the to-dos of the caller
func (c *client) ToDosGet(isDone *bool) ([]*model.ToDo, error) {
	uri := fmt.Sprintf(pathToDos, c.addr)
	if isDone != nil {
		uri = uri + "?isDone=" + strconv.FormatBool(*isDone)
	}

	var out []*model.ToDo
	err := c.get(uri, &out)
	if err != nil {
		return nil, err
	}

	if out == nil {
		return []*model.ToDo{}, nil
	}
	return out, nil
}

// ToDoPut overwrites a to-do
func (c *client) ToDoPut(in *model.ToDo) (*model.ToDo, error) {
	uri := fmt.Sprintf(pathToDoID, c.addr, in.ID)
	out := new(model.ToDo)
	err := c.put(uri, in, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToDoPatch sets the done flag of a to-do
func (c *client) ToDoPatch(id int64, isDone bool) (*model.ToDo, error) {
	uri := fmt.Sprintf(pathToDoID+"?isDone=%t", c.addr, id, isDone)
	out := new(model.ToDo)
	err := c.patch(uri, nil, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToDoDelete deletes a to-do
func (c *client) ToDoDelete(id int64) error {
	uri := fmt.Sprintf(pathToDoID, c.addr, id)
	return c.delete(uri)
}

func (c *client) get(rawURL string, out interface{}) error {
	return c.do(rawURL, "GET", nil, out)
}

func (c *client) post(rawURL string, in, out interface{}) error {
	return c.do(rawURL, "POST", in, out)
}

func (c *client) put(rawURL string, in, out interface{}) error {
	return c.do(rawURL, "PUT", in, out)
}

func (c *client) patch(rawURL string, in, out interface{}) error {
	return c.do(rawURL, "PATCH", in, out)
}

func (c *client) delete(rawURL string) error {
	return c.do(rawURL, "DELETE", nil, nil)
}

// text returns the plain text body of a GET request
func (c *client) text(rawURL string) (string, error) {
	body, err := c.open(rawURL, "GET", nil)
	if err != nil {
		return "", err
	}
	defer body.Close()

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(bodyBytes), nil
}

func (c *client) do(rawURL, method string, in, out interface{}) error {
	body, err := c.open(rawURL, method, in)
	if err != nil {
		return err
	}
	defer body.Close()

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	return json.Unmarshal(bodyBytes, out)
}

func (c *client) open(rawURL, method string, in interface{}) (io.ReadCloser, error) {
	uri, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(method, uri.String(), nil)
	if err != nil {
		return nil, err
	}
	if c.secret != "" {
		req.Header.Set(secretHeader, c.secret)
	}
	if in != nil {
		decoded, decodeErr := json.Marshal(in)
		if decodeErr != nil {
			return nil, decodeErr
		}
		buf := bytes.NewBuffer(decoded)
		req.Body = io.NopCloser(buf)
		req.ContentLength = int64(len(decoded))
		req.Header.Set("Content-Length", strconv.Itoa(len(decoded)))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode > http.StatusPartialContent {
		defer resp.Body.Close()
		out, _ := io.ReadAll(resp.Body)
		return nil, &Error{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(out))}
	}
	return resp.Body, nil
}

// Error is returned when the server answers with a non-successful status
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("client error %d: %s", e.StatusCode, e.Message)
}
