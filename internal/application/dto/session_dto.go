package dto

// LoginRequest credenciales. Los campos vacíos los rechaza el gestor de sesión (con toast),
// por eso aquí solo se acotan longitudes.
type LoginRequest struct {
	Email    string `json:"email" validate:"max=254"`
	Password string `json:"password" validate:"max=1024"`
}

// SessionResponse estado público de la sesión (el token nunca sale).
type SessionResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	UserEmail       string `json:"userEmail"`
}
