package commands

import (
	"Closetly/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"Closetly/internal/cli/api"
	fsrepo "Closetly/internal/cli/repo/fs"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and store auth cookie" }
func (registerCmd) Usage() string       { return "register <username> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	username := args[0]
	password := args[1]
	req := CredentialsRequest{Username: username, Password: password}
	resp, body, err := api.PostJSON(endpoint(cfg, "/api/user/register"), req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		if err := api.PersistAuthFromResponse(resp); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		_ = fsrepo.AuthFSStore{}.SaveLogin(username)
		fmt.Fprintln(Out, "Registered successfully")
		return nil
	}
	if resp.StatusCode == http.StatusConflict {
		return errors.New("username already in use")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(registerCmd{}) }
