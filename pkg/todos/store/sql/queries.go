// Copyright 2019 Laszlo Fogas
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

package sql

const SelectUserByEmail = "select-user-by-email"
const SelectUserBySecret = "select-user-by-secret"
const CountToDoByID = "count-todo-by-id"
const DeleteToDo = "delete-todo"

var queries = map[string]map[string]string{
	"sqlite": {
		SelectUserByEmail: `
SELECT id, email, password, secret
FROM users
WHERE email = ?;
`,
		SelectUserBySecret: `
SELECT id, email, password, secret
FROM users
WHERE secret = ?;
`,
		CountToDoByID: `
SELECT count(*)
FROM todos
WHERE id = ?;
`,
		DeleteToDo: `
DELETE FROM todos WHERE id = ?;
`,
	},
	"postgres": {
		SelectUserByEmail: `
SELECT id, email, password, secret
FROM users
WHERE email = $1;
`,
		SelectUserBySecret: `
SELECT id, email, password, secret
FROM users
WHERE secret = $1;
`,
		CountToDoByID: `
SELECT count(*)
FROM todos
WHERE id = $1;
`,
		DeleteToDo: `
DELETE FROM todos WHERE id = $1;
`,
	},
}
