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

package ddl

const createTableUsers = "create-table-users"
const createTableToDos = "create-table-todos"
const createIndexToDosUserID = "create-index-todos-user-id"
const createIndexUsersSecret = "create-index-users-secret"

type migration struct {
	name string
	stmt string
}

var migrations = map[string][]migration{
	"sqlite": {
		{
			name: createTableUsers,
			stmt: `
CREATE TABLE IF NOT EXISTS users (
id        INTEGER PRIMARY KEY AUTOINCREMENT,
email     TEXT NOT NULL,
password  TEXT NOT NULL,
secret    TEXT,
UNIQUE(email)
);
`,
		},
		{
			name: createTableToDos,
			stmt: `
CREATE TABLE IF NOT EXISTS todos (
id          INTEGER PRIMARY KEY AUTOINCREMENT,
description TEXT,
is_done     BOOLEAN,
user_id     INTEGER
);
`,
		},
		{
			name: createIndexToDosUserID,
			stmt: `CREATE INDEX IF NOT EXISTS todos_user_id ON todos(user_id);`,
		},
		{
			name: createIndexUsersSecret,
			stmt: `CREATE INDEX IF NOT EXISTS users_secret ON users(secret);`,
		},
	},
	"postgres": {
		{
			name: createTableUsers,
			stmt: `
CREATE TABLE IF NOT EXISTS users (
id        SERIAL,
email     TEXT NOT NULL,
password  TEXT NOT NULL,
secret    TEXT,
PRIMARY KEY(id),
UNIQUE(email)
);
`,
		},
		{
			name: createTableToDos,
			stmt: `
CREATE TABLE IF NOT EXISTS todos (
id          SERIAL,
description TEXT,
is_done     BOOLEAN,
user_id     INTEGER,
PRIMARY KEY(id)
);
`,
		},
		{
			name: createIndexToDosUserID,
			stmt: `CREATE INDEX IF NOT EXISTS todos_user_id ON todos(user_id);`,
		},
		{
			name: createIndexUsersSecret,
			stmt: `CREATE INDEX IF NOT EXISTS users_secret ON users(secret);`,
		},
	},
}
