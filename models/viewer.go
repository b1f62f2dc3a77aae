package models

// Viewer is the identity payload returned by the logIn/logOut mutations. Token
// is the raw session token the client must echo back via X-CSRF-TOKEN.
type Viewer struct {
	ID         string `json:"id,omitempty"`
	Token      string `json:"token,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	WalletID   string `json:"-"`
	DidRequest bool   `json:"didRequest"`
}
