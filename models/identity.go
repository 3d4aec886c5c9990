package models

// IdentityDocument is the structured result of scanning an ID card image.
type IdentityDocument struct {
	FullName       string `json:"full_name"`
	DocumentNumber string `json:"document_number"`
}
