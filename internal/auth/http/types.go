package http

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateProfileReq struct {
	Name        string   `json:"name"`
	PhotoURL    string   `json:"photoUrl"`
	Quote       string   `json:"quote"`
	Hashtags    []string `json:"hashtags"`
	OldPassword string   `json:"oldPassword,omitempty"`
	NewPassword string   `json:"newPassword,omitempty"`
}
