package store

import (
	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/ndjamen/todos/pkg/todos/store/sql"
	"github.com/russross/meddler"
)

// User gets a user by its id
func (db *Store) User(id int64) (*model.User, error) {
	data := new(model.User)
	err := meddler.Load(db, "users", data, id)
	return data, err
}

// UserByEmail gets a user by its email
func (db *Store) UserByEmail(email string) (*model.User, error) {
	stmt := sql.Stmt(db.driver, sql.SelectUserByEmail)
	data := new(model.User)
	err := meddler.QueryRow(db, data, stmt, email)
	return data, err
}

// UserBySecret gets the user owning the api secret
func (db *Store) UserBySecret(secret string) (*model.User, error) {
	stmt := sql.Stmt(db.driver, sql.SelectUserBySecret)
	data := new(model.User)
	err := meddler.QueryRow(db, data, stmt, secret)
	return data, err
}

// CreateUser stores a new user in the database
func (db *Store) CreateUser(user *model.User) error {
	return meddler.Insert(db, "users", user)
}
