// Original work Copyright 2018 Drone.IO Inc.
// Modified work Copyright 2019 Laszlo Fogas
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

package session

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/ndjamen/todos/pkg/todos/store"
	"github.com/sirupsen/logrus"
)

// SecretHeader carries the api secret issued at registration
const SecretHeader = "api-secret"

// SetUser puts the user owning the presented api secret in the request context
func SetUser(users store.UserStore) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			secret := r.Header.Get(SecretHeader)
			if secret != "" {
				user, err := users.UserBySecret(secret)
				switch {
				case err == nil:
					r = r.WithContext(context.WithValue(r.Context(), "user", user))
				case errors.Is(err, sql.ErrNoRows):
					logrus.Warnf("no user with the presented api secret")
				default:
					logrus.Errorf("cannot look up api secret: %s", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// MustUser makes sure there is an authenticated user set
func MustUser() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if _, userSet := UserFrom(r.Context()); !userSet {
				http.Error(w, "Invalid api secret", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// UserFrom returns the authenticated user of the request, if any
func UserFrom(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value("user").(*model.User)
	return user, ok
}
