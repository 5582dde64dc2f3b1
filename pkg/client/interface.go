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
	"net/http"

	"github.com/ndjamen/todos/pkg/todos/model"
)

// Client is used to communicate with a todos server.
type Client interface {
	// SetClient sets the http.Client.
	SetClient(*http.Client)

	// SetAddress sets the server address.
	SetAddress(string)

	// SetSecret sets the api secret sent with every request
	SetSecret(string)

	// Greet returns the greeting of the server
	Greet(firstName, lastName string) (string, error)

	// Register creates a user and returns it with its api secret
	Register(email, password string) (*model.User, error)

	// UserGet returns the user with the given id
	UserGet(id int64) (*model.User, error)

	// Validate checks the credentials and returns the api secret of the user
	Validate(email, password string) (string, error)

	// ToDoPost creates a to-do
	ToDoPost(todo *model.ToDo) (*model.ToDo, error)

	// ToDoGet returns the to-do with the given id
	ToDoGet(id int64) (*model.ToDo, error)

	// ToDosGet returns the to-dos of the user owning the api secret,
	// optionally filtered on the done flag
	ToDosGet(isDone *bool) ([]*model.ToDo, error)

	// ToDoPut overwrites the description and done flag of a to-do
	ToDoPut(todo *model.ToDo) (*model.ToDo, error)

	// ToDoPatch sets the done flag of a to-do
	ToDoPatch(id int64, isDone bool) (*model.ToDo, error)

	// ToDoDelete deletes a to-do
	ToDoDelete(id int64) error
}
