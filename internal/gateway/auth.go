package gateway

import (
	"context"
	"net/http"
)

// AuthResult est la réponse des endpoints d'authentification distants.
type AuthResult struct {
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Login authentifie un client et renvoie son jeton.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var resp struct {
		envelope
		AuthResult
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	return &resp.AuthResult, nil
}

// SignUp crée un compte client et renvoie son jeton.
func (c *Client) SignUp(ctx context.Context, name, email, password string) (*AuthResult, error) {
	var resp struct {
		envelope
		AuthResult
	}
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/signUp", body, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	return &resp.AuthResult, nil
}

// AdminLogin authentifie un administrateur (jeton distinct du jeton client).
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*AuthResult, error) {
	var resp struct {
		envelope
		AuthResult
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/admin/logIn", body, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	return &resp.AuthResult, nil
}

// ForgotPassword demande l'envoi d'un lien de réinitialisation. En mode
// développement le serveur renvoie le lien directement (devResetLink).
func (c *Client) ForgotPassword(ctx context.Context, email string) (message, devResetLink string, err error) {
	var resp struct {
		envelope
		DevResetLink string `json:"devResetLink"`
	}
	body := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, "/forgotPassword", body, &resp); err != nil {
		return "", "", err
	}
	if err := resp.reject(); err != nil {
		return "", "", err
	}
	return resp.Message, resp.DevResetLink, nil
}

// ResetPassword consomme le jeton du lien de réinitialisation.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	var resp envelope
	body := map[string]string{"token": token, "newPassword": newPassword}
	if err := c.do(ctx, http.MethodPost, "/resetPasswordWithToken", body, &resp); err != nil {
		return err
	}
	return resp.reject()
}

// UserInfo récupère le profil de l'utilisateur connecté.
func (c *Client) UserInfo(ctx context.Context) (map[string]any, error) {
	var resp struct {
		envelope
		User map[string]any `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/getUserInfo", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.reject(); err != nil {
		return nil, err
	}
	return resp.User, nil
}
