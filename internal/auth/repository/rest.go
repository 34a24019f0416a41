package repository

import (
	"context"
	"fmt"

	"github.com/zhengyang6751/inventory-management-system/internal/api"
	"github.com/zhengyang6751/inventory-management-system/internal/auth/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
)

type RESTRepository struct {
	client *api.Client
}

func NewRESTRepository(client *api.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) Login(ctx context.Context, email, password string) (string, error) {
	// The token endpoint takes form-encoded credentials with the email
	// in the username field.
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	form := map[string]string{
		"username": email,
		"password": password,
	}
	if err := r.client.PostForm(ctx, "/login/access-token", form, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("auth: empty access token in login response")
	}
	return out.AccessToken, nil
}

func (r *RESTRepository) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error) {
	body := map[string]string{
		"email":     input.Email,
		"password":  input.Password,
		"full_name": input.FullName,
	}
	var user model.User
	if err := r.client.Post(ctx, "/users/register", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *RESTRepository) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := r.client.Get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
