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

// Dialect maps a database/sql driver name to the dialect its statements are written in.
func Dialect(driver string) string {
	switch driver {
	case "postgres", "pgx":
		return "postgres"
	default:
		return "sqlite"
	}
}

// Stmt returns the named statement for the given driver.
func Stmt(driver, name string) string {
	return queries[Dialect(driver)][name]
}
