package commands

import (
	"Closetly/internal/config"
	"strings"

	fsrepo "Closetly/internal/cli/repo/fs"
)

// endpoint строит полный URL эндпоинта сервера.
func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// authToken читает сохранённый токен; пустая строка — аноним.
func authToken() string {
	token, _ := fsrepo.AuthFSStore{}.Load()
	return token
}
