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

type acceptCmd struct{}

func (acceptCmd) Name() string        { return "accept" }
func (acceptCmd) Description() string { return "Принять предложение" }
func (acceptCmd) Usage() string       { return "accept <offer-id>" }

func (acceptCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	resp, body, err := api.PostJSON(endpoint(cfg, "/api/offers/"+args[0]+"/accept"), struct{}{}, authToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return fmt.Errorf("not logged in")
	case http.StatusConflict:
		// устаревшая версия вещи или уже не pending — можно повторить/проверить
		return fmt.Errorf("conflict: %s", strings.TrimSpace(string(body)))
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var ov offerView
	if err := json.Unmarshal(body, &ov); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Offer %s accepted, создайте пост о передаче\n", ov.ID)
	return nil
}

func init() { RegisterCmd(acceptCmd{}) }
