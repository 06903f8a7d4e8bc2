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

type offersResponse struct {
	Offers []offerView `json:"offers"`
}

type offersCmd struct{}

func (offersCmd) Name() string        { return "offers" }
func (offersCmd) Description() string { return "Показать предложения" }
func (offersCmd) Usage() string       { return "offers [incoming|outgoing]" }

func (offersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	box := "incoming"
	if len(args) > 1 {
		return ErrUsage
	}
	if len(args) == 1 {
		box = args[0]
	}

	resp, body, err := api.GetJSON(endpoint(cfg, "/api/offers?box="+box), authToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("not logged in")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var or offersResponse
	if err := json.Unmarshal(body, &or); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(or.Offers) == 0 {
		fmt.Fprintln(Out, "Нет предложений")
		return nil
	}
	for _, o := range or.Offers {
		note := ""
		if o.Status == "accepted" && !o.PostCreated {
			note = "  (нужен пост)"
		}
		fmt.Fprintf(Out, "- %s  item=%s  %s → %s  %s/%s%s\n",
			o.ID, o.ItemID, o.FromUser, o.ToUser, o.OfferType, o.Status, note)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(or.Offers))
	return nil
}

func init() { RegisterCmd(offersCmd{}) }
