package model

// ToDo is a single to-do item
type ToDo struct {
	ID          int64  `json:"id"  meddler:"id,pk"`
	Description string `json:"description"  meddler:"description,encrypted"`

	// IsDone stays nil until a client sets it
	IsDone *bool `json:"isDone"  meddler:"is_done"`

	// UserID references the owning user. It is not enforced on write,
	// only the listing endpoint looks at it.
	UserID *int64 `json:"userId"  meddler:"user_id"`
}
