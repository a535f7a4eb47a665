package models

type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// AdminPublic is the only admin shape that ever leaves the server.
type AdminPublic struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Configuration struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}
