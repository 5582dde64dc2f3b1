package server

import (
	"fmt"
	"net/http"
)

func greet(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	firstName := params.Get("firstName")
	lastName := params.Get("lastName")
	if firstName == "" || lastName == "" {
		http.Error(w, "Please provide a first and last name", http.StatusBadRequest)
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf("Hello %s %s", firstName, lastName))
}
