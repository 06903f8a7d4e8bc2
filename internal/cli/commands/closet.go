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

type closetItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Brand         string `json:"brand"`
	Size          string `json:"size"`
	CurrentOwner  string `json:"current_owner"`
	OriginalOwner string `json:"original_owner"`
}

type closetResponse struct {
	Items []closetItem `json:"items"`
}

type closetCmd struct{}

func (closetCmd) Name() string        { return "closet" }
func (closetCmd) Description() string { return "Показать свои вещи" }
func (closetCmd) Usage() string       { return "closet" }

func (closetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(endpoint(cfg, "/api/items"), authToken())
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

	var cr closetResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(cr.Items) == 0 {
		fmt.Fprintln(Out, "Нет вещей")
		return nil
	}
	for _, it := range cr.Items {
		extra := ""
		if it.Brand != "" {
			extra += "  brand=" + it.Brand
		}
		if it.Size != "" {
			extra += "  size=" + it.Size
		}
		fmt.Fprintf(Out, "- %s  %s%s\n", it.ID, it.Title, extra)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(cr.Items))
	return nil
}

func init() { RegisterCmd(closetCmd{}) }
