package entity

import "encoding/json"

// Snapshot estado completo del motor en un instante (lo que se persiste y se sincroniza).
type Snapshot struct {
	Products  []Product   `json:"products"`
	Suppliers []string    `json:"suppliers"`
	Settings  AppSettings `json:"settings"`
}

// RemoteData respuesta de GET /api/data. Cada campo ausente o null se ignora:
// products y suppliers reemplazan el estado local, settings se mezcla superficialmente.
type RemoteData struct {
	Products  *[]Product      `json:"products,omitempty"`
	Suppliers *[]string       `json:"suppliers,omitempty"`
	Settings  json.RawMessage `json:"settings,omitempty"`
}

// HasSettings indica si la respuesta trae un objeto settings utilizable.
func (d RemoteData) HasSettings() bool {
	return len(d.Settings) > 0 && string(d.Settings) != "null"
}
