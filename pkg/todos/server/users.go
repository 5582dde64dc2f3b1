package server

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/ndjamen/todos/pkg/todos/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// passwordDigest is what gets bcrypt hashed. bcrypt only reads 72 bytes,
// the base64 encoded sha256 of any password fits in 44.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// dummyPasswordHash is compared against when the email is unknown,
// so both failures cost a bcrypt round of the configured cost
func dummyPasswordHash(bcryptCost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword(passwordDigest("no-such-user"), bcryptCost)
}

func register(users store.UserStore, bcryptCost int, registered prometheus.Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logrus.Debugf("cannot decode user to register: %s", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if req.Email == "" || req.Password == "" {
			http.Error(w, fmt.Sprintf("%s: %s", http.StatusText(http.StatusBadRequest), "email and password are mandatory"), http.StatusBadRequest)
			return
		}

		hash, err := bcrypt.GenerateFromPassword(passwordDigest(req.Password), bcryptCost)
		if err != nil {
			logrus.Errorf("cannot hash password: %s", err)
			internalError(w)
			return
		}

		user := &model.User{
			Email:    req.Email,
			Password: string(hash),
			Secret:   uuid.New().String(),
		}
		err = users.CreateUser(user)
		if err != nil {
			if _, lookupErr := users.UserByEmail(req.Email); lookupErr == nil {
				http.Error(w, fmt.Sprintf("A user with the email %s already exists", req.Email), http.StatusConflict)
				return
			}
			logrus.Errorf("cannot create user %s: %s", req.Email, err)
			internalError(w)
			return
		}
		if registered != nil {
			registered.Inc()
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

func getUser(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		user, err := users.User(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, fmt.Sprintf("No user found for the given id %d", id), http.StatusNotFound)
				return
			}
			logrus.Errorf("cannot get user %d: %s", id, err)
			internalError(w)
			return
		}

		// the secret is only handed out on registration and validation
		user.Secret = ""
		writeJSON(w, http.StatusOK, user)
	}
}

func validateUser(users store.UserStore, bcryptCost int) http.HandlerFunc {
	dummyHash, err := dummyPasswordHash(bcryptCost)
	if err != nil {
		panic(fmt.Errorf("cannot hash dummy password: %w", err))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		email := params.Get("email")
		password := params.Get("password")
		if email == "" || password == "" {
			http.Error(w, fmt.Sprintf("%s: %s", http.StatusText(http.StatusBadRequest), "email and password are mandatory"), http.StatusBadRequest)
			return
		}

		user, err := users.UserByEmail(email)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			logrus.Errorf("cannot get user %s: %s", email, err)
			internalError(w)
			return
		}

		if !credentialsMatch(user, err == nil, password, dummyHash) {
			http.Error(w, "Wrong credentials provided", http.StatusUnauthorized)
			return
		}

		writeText(w, http.StatusOK, "API Secret: "+user.Secret)
	}
}

func credentialsMatch(user *model.User, found bool, password string, dummyHash []byte) bool {
	if !found {
		bcrypt.CompareHashAndPassword(dummyHash, passwordDigest(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.Password), passwordDigest(password)) == nil
}
