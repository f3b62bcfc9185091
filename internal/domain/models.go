package domain

import "fmt"

// Template represents one meme template from the listing endpoint
type Template struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	BoxCount int    `json:"box_count"`
}

// Size returns the display dimensions, e.g. "1200×1200"
func (t Template) Size() string {
	return fmt.Sprintf("%d×%d", t.Width, t.Height)
}

// CacheState is the lifecycle of the template cache
type CacheState int

const (
	CacheUninitialized CacheState = iota
	CachePopulated
)

func (s CacheState) String() string {
	switch s {
	case CachePopulated:
		return "populated"
	default:
		return "uninitialized"
	}
}

// SearchStatus is the status of the most recent search
type SearchStatus int

const (
	StatusIdle SearchStatus = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s SearchStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}
