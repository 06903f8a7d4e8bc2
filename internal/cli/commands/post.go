package commands

import (
	"Closetly/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"Closetly/internal/cli/api"
)

type dischargePostRequest struct {
	Story string `json:"story"`
}

type postView struct {
	ID     string `json:"id"`
	ItemID string `json:"item_id"`
}

type postCmd struct{}

func (postCmd) Name() string        { return "post" }
func (postCmd) Description() string { return "Создать пост о полученной вещи" }
func (postCmd) Usage() string       { return "post <offer-id> <story...>" }

func (postCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}

	req := dischargePostRequest{Story: strings.Join(args[1:], " ")}
	resp, body, err := api.PostJSON(endpoint(cfg, "/api/offers/"+args[0]+"/post"), req, authToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusUnauthorized:
		return fmt.Errorf("not logged in")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var pv postView
	if err := json.Unmarshal(body, &pv); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Post %s created for item %s\n", pv.ID, pv.ItemID)
	return nil
}

func init() { RegisterCmd(postCmd{}) }
