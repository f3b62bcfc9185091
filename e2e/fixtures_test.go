//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
)

const listing = `{"success": true, "data": {"memes": [
	{"id": "181913649", "name": "Drake Hotline Bling", "url": "https://i.imgflip.com/30b1gx.jpg", "width": 1200, "height": 1200, "box_count": 2},
	{"id": "87743020", "name": "Two Buttons", "url": "https://i.imgflip.com/1g8my4.jpg", "width": 600, "height": 908, "box_count": 3},
	{"id": "112126428", "name": "Distracted Boyfriend", "url": "https://i.imgflip.com/1ur9b0.jpg", "width": 1200, "height": 800, "box_count": 3},
	{"id": "131087935", "name": "Running Away Balloon", "url": "https://i.imgflip.com/261o3j.jpg", "width": 761, "height": 1024, "box_count": 5}
]}}`

// CreateTestWorkspace creates an isolated HOME and a listing endpoint that
// serves body with status
func (tf *TUITestFramework) CreateTestWorkspace(status int, body string) (string, *atomic.Int32, error) {
	dir, err := os.MkdirTemp("", "memegrip-e2e-*")
	if err != nil {
		return "", nil, err
	}
	tf.workspace = dir

	requests := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	tf.t.Cleanup(srv.Close)
	tf.endpoint = srv.URL

	return dir, requests, nil
}

// fixtureArgs points the app at the workspace and the fixture endpoint
func (tf *TUITestFramework) fixtureArgs() []string {
	if tf.workspace == "" {
		return nil
	}
	return []string{
		"--config", filepath.Join(tf.workspace, "config.toml"),
		"--endpoint", tf.endpoint,
		"--storage", "file",
		"--storage-path", filepath.Join(tf.workspace, "favorites.json"),
		"--debounce", "50ms",
	}
}
