package auth

type AuthorizeInput struct {
	Username string
	Password string
}

type AuthorizeOutput struct {
	Token    string
	Username string
	Groups   []string
}
