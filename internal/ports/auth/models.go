package auth

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
}

// Session es lo que devuelve un sign-in exitoso.
type Session struct {
	UserID  string
	Email   string
	IDToken string
}

// SignUpInput agrupa los datos de alta por email/password.
type SignUpInput struct {
	Email       string
	Password    string
	DisplayName string
}
