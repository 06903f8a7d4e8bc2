package commands

import (
	"Closetly/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"

	"Closetly/internal/cli/api"
)

type rejectCmd struct{}

func (rejectCmd) Name() string        { return "reject" }
func (rejectCmd) Description() string { return "Отклонить предложение" }
func (rejectCmd) Usage() string       { return "reject <offer-id>" }

func (rejectCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	resp, body, err := api.PostJSON(endpoint(cfg, "/api/offers/"+args[0]+"/reject"), struct{}{}, authToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "Offer %s rejected\n", args[0])
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("not logged in")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(rejectCmd{}) }
