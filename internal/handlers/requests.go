package handlers

// SignInRequest is the body for POST /api/session
type SignInRequest struct {
	DisplayName string `json:"display_name"`
}

// PredictionRequest is the body for POST /api/predictions
type PredictionRequest struct {
	Category string `json:"category"`
	Nominee  string `json:"nominee"`
}

// AdminLoginRequest is the body for POST /api/admin/login
type AdminLoginRequest struct {
	Secret string `json:"secret"`
}

// WinnerRequest is the body for PUT /api/admin/winners/{categoryID}
type WinnerRequest struct {
	Nominee string `json:"nominee"`
}
