package models

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Stock is a pointer so a literal 0 survives the required check.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       string   `json:"price" binding:"required,price"`
	Images      []string `json:"images" binding:"required,min=1,dive,url"`
	Sizes       []string `json:"sizes" binding:"required,min=1,dive,required"`
	Colors      []string `json:"colors" binding:"required,min=1,dive,required"`
	Category    string   `json:"category" binding:"required"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
	Featured    bool     `json:"featured"`
}

type ConfigurationRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}
