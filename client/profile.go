package client

import "context"

// ProfileForm is the flat shape the profile page edits. The server returns
// the user with a nested profile; updates go back as one flat JSON body.
type ProfileForm struct {
	ID              uint   `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	FullName        string `json:"fullName"`
	PhoneNumber     string `json:"phoneNumber"`
	Position        string `json:"position"`
	ProfileImageUrl string `json:"profileImageUrl"`
}

type ProfileView struct {
	api *Client

	Form ProfileForm
}

func NewProfileView(api *Client) *ProfileView {
	return &ProfileView{api: api}
}

func (v *ProfileView) Refresh(ctx context.Context) error {
	var user User
	if err := v.api.get(ctx, "/api/user/profile", &user); err != nil {
		return err
	}
	v.Form = ProfileForm{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		Role:            user.Role,
		FullName:        user.Profile.FullName,
		PhoneNumber:     user.Profile.PhoneNumber,
		Position:        user.Profile.Position,
		ProfileImageUrl: user.Profile.ProfileImageUrl,
	}
	return nil
}

// Update saves the form and then re-fetches so the view matches the server.
func (v *ProfileView) Update(ctx context.Context) error {
	if err := v.api.put(ctx, "/api/user/profile", v.Form, nil); err != nil {
		return err
	}
	return v.Refresh(ctx)
}
