package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/ndjamen/todos/pkg/todos/server/session"
	"github.com/ndjamen/todos/pkg/todos/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type toDoRequest struct {
	Description *string `json:"description"`
	IsDone      *bool   `json:"isDone"`
	UserID      *int64  `json:"userId"`
}

func createToDo(todos store.ToDoStore, created prometheus.Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req toDoRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logrus.Debugf("cannot decode todo: %s", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if req.Description == nil {
			http.Error(w, fmt.Sprintf("%s: %s", http.StatusText(http.StatusBadRequest), "description is mandatory"), http.StatusBadRequest)
			return
		}

		todo := &model.ToDo{
			Description: *req.Description,
			IsDone:      req.IsDone,
			UserID:      req.UserID,
		}
		err = todos.SaveToDo(todo)
		if err != nil {
			logrus.Errorf("cannot save todo: %s", err)
			internalError(w)
			return
		}
		if created != nil {
			created.Inc()
		}

		writeJSON(w, http.StatusCreated, todo)
	}
}

func getToDo(todos store.ToDoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		todo, found := loadToDo(w, todos, id)
		if !found {
			return
		}

		writeJSON(w, http.StatusOK, todo)
	}
}

func listToDos(todos store.ToDoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := session.UserFrom(r.Context())

		isDone, _, err := queryBool(r, "isDone")
		if err != nil {
			http.Error(w, fmt.Sprintf("%s: %s", http.StatusText(http.StatusBadRequest), "isDone must be a boolean"), http.StatusBadRequest)
			return
		}

		userToDos, err := todos.ToDosByUser(user.ID, isDone)
		if err != nil {
			logrus.Errorf("cannot get todos of user %d: %s", user.ID, err)
			internalError(w)
			return
		}
		if userToDos == nil {
			userToDos = []*model.ToDo{}
		}

		writeJSON(w, http.StatusOK, userToDos)
	}
}

func deleteToDo(todos store.ToDoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		exists, err := todos.ToDoExists(id)
		if err != nil {
			logrus.Errorf("cannot check todo %d: %s", id, err)
			internalError(w)
			return
		}
		if !exists {
			http.Error(w, fmt.Sprintf("No todo found with the id %d", id), http.StatusNotFound)
			return
		}

		err = todos.DeleteToDo(id)
		if err != nil {
			logrus.Errorf("cannot delete todo %d: %s", id, err)
			internalError(w)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// updateToDo replaces the description and the done flag, the owner stays
func updateToDo(todos store.ToDoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		var req toDoRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logrus.Debugf("cannot decode todo: %s", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if req.Description == nil {
			http.Error(w, fmt.Sprintf("%s: %s", http.StatusText(http.StatusBadRequest), "description is mandatory"), http.StatusBadRequest)
			return
		}

		todo, found := loadToDo(w, todos, id)
		if !found {
			return
		}

		todo.Description = *req.Description
		todo.IsDone = req.IsDone
		saveAndRespond(w, todos, todo)
	}
}

func setDone(todos store.ToDoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		isDone, present, err := queryBool(r, "isDone")
		if !present || err != nil {
			http.Error(w, fmt.Sprintf("%s: %s", http.StatusText(http.StatusBadRequest), "isDone parameter is mandatory and must be a boolean"), http.StatusBadRequest)
			return
		}

		todo, found := loadToDo(w, todos, id)
		if !found {
			return
		}

		todo.IsDone = isDone
		saveAndRespond(w, todos, todo)
	}
}

// loadToDo answers 404 or 500 itself when the to-do cannot be returned
func loadToDo(w http.ResponseWriter, todos store.ToDoStore, id int64) (*model.ToDo, bool) {
	todo, err := todos.ToDo(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, fmt.Sprintf("No todo found with the id %d", id), http.StatusNotFound)
			return nil, false
		}
		logrus.Errorf("cannot get todo %d: %s", id, err)
		internalError(w)
		return nil, false
	}
	return todo, true
}

func saveAndRespond(w http.ResponseWriter, todos store.ToDoStore, todo *model.ToDo) {
	err := todos.SaveToDo(todo)
	if err != nil {
		logrus.Errorf("cannot save todo %d: %s", todo.ID, err)
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}
