package commands

import (
	"Closetly/internal/config"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"Closetly/internal/cli/api"
)

type feedPost struct {
	ID            string  `json:"id"`
	ItemID        string  `json:"item_id"`
	Giver         string  `json:"giver"`
	Receiver      *string `json:"receiver"`
	Story         string  `json:"story"`
	CreatedAt     string  `json:"created_at"`
	Likes         int64   `json:"likes"`
	CommentsCount int64   `json:"comments_count"`
}

type feedResponse struct {
	Posts []feedPost `json:"posts"`
}

type feedCmd struct{}

func (feedCmd) Name() string        { return "feed" }
func (feedCmd) Description() string { return "Показать ленту постов" }
func (feedCmd) Usage() string       { return "feed [-scope all|friends] [-mode chronological|ranked]" }

func (feedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("feed", flag.ContinueOnError)
	fs.SetOutput(Out)
	scope := fs.String("scope", "all", "feed scope")
	mode := fs.String("mode", "chronological", "feed order")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	q := url.Values{}
	q.Set("scope", *scope)
	q.Set("mode", *mode)
	resp, body, err := api.GetJSON(endpoint(cfg, "/api/feed?"+q.Encode()), authToken())
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

	var fr feedResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(fr.Posts) == 0 {
		fmt.Fprintln(Out, "Лента пуста")
		return nil
	}
	for _, p := range fr.Posts {
		who := p.Giver
		if p.Receiver != nil {
			who = p.Giver + " → " + *p.Receiver
		}
		fmt.Fprintf(Out, "- %s  [%s]  ♥%d  💬%d  %s\n", p.ID, who, p.Likes, p.CommentsCount, p.Story)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(fr.Posts))
	return nil
}

func init() { RegisterCmd(feedCmd{}) }
