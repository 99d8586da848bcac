package response_models

type AccountLoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
