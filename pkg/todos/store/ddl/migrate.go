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

import (
	"database/sql"
	"fmt"

	todosql "github.com/ndjamen/todos/pkg/todos/store/sql"
)

// Migrate brings the schema of the driver's dialect up to date.
// Every pending migration is applied and recorded in one transaction,
// so a failed step leaves neither its changes nor its record behind.
func Migrate(driver string, db *sql.DB) error {
	return migrate(db, migrations[todosql.Dialect(driver)])
}

func migrate(db *sql.DB, steps []migration) error {
	if _, err := db.Exec(migrationTableCreate); err != nil {
		return fmt.Errorf("cannot create migrations table: %w", err)
	}

	completed, err := completedMigrations(db)
	if err != nil {
		return err
	}

	for _, step := range steps {
		if completed[step.name] {
			continue
		}
		if err := apply(db, step); err != nil {
			return fmt.Errorf("migration %s failed: %w", step.name, err)
		}
	}
	return nil
}

func apply(db *sql.DB, step migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(step.stmt); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(migrationInsert, step.name); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func completedMigrations(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query(migrationSelect)
	if err != nil {
		return nil, fmt.Errorf("cannot list migrations: %w", err)
	}
	defer rows.Close()

	completed := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		completed[name] = true
	}
	return completed, rows.Err()
}

var migrationTableCreate = `
CREATE TABLE IF NOT EXISTS migrations (
 name VARCHAR(255)
,UNIQUE(name)
)
`

var migrationInsert = `
INSERT INTO migrations (name) VALUES ($1)
`

var migrationSelect = `
SELECT name FROM migrations
`
