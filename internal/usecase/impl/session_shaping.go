package impl

import (
	"authgate/internal/domain/entity"
)

// enrichToken copies the identity of a fresh authentication into token. Token refreshes carry
// no event and leave the token as it is. Email travels only with OAuth sign-ins.
func enrichToken(token *entity.SessionToken, event *entity.AuthEvent) *entity.SessionToken {
	if token == nil {
		token = &entity.SessionToken{}
	}
	if event == nil || event.User == nil {
		return token
	}

	token.UserID = event.User.ID.String()
	token.Username = event.User.Username
	token.Verified = event.User.Verified
	token.Provider = event.Provider

	if event.Provider.IsOAuth() {
		token.Email = event.User.Email
		token.Verified = true
	}

	return token
}

// projectSession overwrites the identity fields of view from token. Name and email are left
// as the caller set them. Without a token the view is returned unchanged.
func projectSession(view *entity.SessionView, token *entity.SessionToken) *entity.SessionView {
	if view == nil {
		view = &entity.SessionView{}
	}
	if token == nil {
		return view
	}

	view.User.ID = token.UserID
	view.User.Username = token.Username
	view.User.Verified = token.Verified

	return view
}
