package entity

// Session estado de autenticación del dispositivo.
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	UserEmail       string `json:"userEmail"`
	AuthToken       string `json:"-"` // opaco; vive en el almacén seguro, no en la clave "auth"
}
