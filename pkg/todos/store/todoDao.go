package store

import (
	"github.com/Masterminds/squirrel"
	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/ndjamen/todos/pkg/todos/store/sql"
	"github.com/russross/meddler"
)

// ToDo gets a to-do by its id
func (db *Store) ToDo(id int64) (*model.ToDo, error) {
	data := new(model.ToDo)
	err := meddler.Load(db, "todos", data, id)
	return data, err
}

// ToDosByUser returns the to-dos of a user, only the done or not done ones if isDone is set
func (db *Store) ToDosByUser(userID int64, isDone *bool) ([]*model.ToDo, error) {
	query := squirrel.
		Select("id", "description", "is_done", "user_id").
		From("todos").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id").
		PlaceholderFormat(db.placeholder())
	if isDone != nil {
		query = query.Where(squirrel.Eq{"is_done": *isDone})
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var data []*model.ToDo
	err = meddler.QueryAll(db, &data, stmt, args...)
	return data, err
}

// ToDoExists tells whether a to-do with the given id is stored
func (db *Store) ToDoExists(id int64) (bool, error) {
	stmt := sql.Stmt(db.driver, sql.CountToDoByID)
	var count int
	err := db.QueryRow(stmt, id).Scan(&count)
	return count > 0, err
}

// SaveToDo inserts a new to-do or updates an existing one
func (db *Store) SaveToDo(todo *model.ToDo) error {
	return meddler.Save(db, "todos", todo)
}

// DeleteToDo deletes a to-do by its id
func (db *Store) DeleteToDo(id int64) error {
	stmt := sql.Stmt(db.driver, sql.DeleteToDo)
	_, err := db.Exec(stmt, id)
	return err
}

func (db *Store) placeholder() squirrel.PlaceholderFormat {
	if sql.Dialect(db.driver) == "postgres" {
		return squirrel.Dollar
	}
	return squirrel.Question
}
