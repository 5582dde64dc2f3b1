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

package model

// User is the user representation
type User struct {
	// ID for this user
	// required: true
	ID int64 `json:"id"  meddler:"id,pk"`

	// Email is the unique login name of the user
	// required: true
	Email string `json:"email"  meddler:"email"`

	// Password is the bcrypt hash of the user's password, never serialized
	// required: true
	Password string `json:"-"  meddler:"password"`

	// Secret is the api secret issued at registration.
	// It authenticates the user on the to-do listing endpoint.
	Secret string `json:"secret,omitempty" meddler:"secret"`
}
