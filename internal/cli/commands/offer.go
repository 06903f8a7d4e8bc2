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

type submitOfferRequest struct {
	ItemID       string  `json:"item_id"`
	OfferType    string  `json:"offer_type"`
	SwapItemID   *string `json:"swap_item_id,omitempty"`
	LendDuration *string `json:"lend_duration,omitempty"`
	Message      *string `json:"message,omitempty"`
}

type offerView struct {
	ID          string `json:"id"`
	ItemID      string `json:"item_id"`
	FromUser    string `json:"from_user"`
	ToUser      string `json:"to_user"`
	OfferType   string `json:"offer_type"`
	Status      string `json:"status"`
	PostCreated bool   `json:"post_created"`
}

type offerCmd struct{}

func (offerCmd) Name() string        { return "offer" }
func (offerCmd) Description() string { return "Предложить обмен/аренду/подарок" }
func (offerCmd) Usage() string {
	return "offer <item-id> giveaway|lend <duration>|swap <swap-item-id> [message]"
}

func (offerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}

	req := submitOfferRequest{ItemID: args[0], OfferType: args[1]}
	rest := args[2:]
	switch req.OfferType {
	case "giveaway":
	case "lend", "swap":
		if len(rest) == 0 {
			return ErrUsage
		}
		v := rest[0]
		if req.OfferType == "lend" {
			req.LendDuration = &v
		} else {
			req.SwapItemID = &v
		}
		rest = rest[1:]
	default:
		return ErrUsage
	}
	if len(rest) > 0 {
		msg := strings.Join(rest, " ")
		req.Message = &msg
	}

	resp, body, err := api.PostJSON(endpoint(cfg, "/api/offers"), req, authToken())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("not logged in")
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var ov offerView
	if err := json.Unmarshal(body, &ov); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Offer %s created (%s, %s)\n", ov.ID, ov.OfferType, ov.Status)
	return nil
}

func init() { RegisterCmd(offerCmd{}) }
