package domain

// Authorization is the Pocket OAuth grant persisted as a hash in the store.
// Its presence is what keeps the Pocket worker polling; deleting it is the
// authoritative "stop" signal.
type Authorization struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

const (
	authFieldAccessToken = "accessToken"
	authFieldUsername    = "username"
)

// Fields renders the authorization as store hash fields.
func (a Authorization) Fields() map[string]string {
	return map[string]string{
		authFieldAccessToken: a.AccessToken,
		authFieldUsername:    a.Username,
	}
}

// AuthorizationFromFields rebuilds an Authorization from store hash fields.
// Returns nil when fields is empty, i.e. no authorization is stored.
func AuthorizationFromFields(fields map[string]string) *Authorization {
	if len(fields) == 0 {
		return nil
	}
	return &Authorization{
		AccessToken: fields[authFieldAccessToken],
		Username:    fields[authFieldUsername],
	}
}
