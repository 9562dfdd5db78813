// Package navigation maps request paths to console pages.
package navigation

import (
	"net/http"
	"strings"
)

// Page identifies a screen of the console.
type Page string

const (
	PageAuth      Page = "auth"
	PageDashboard Page = "dashboard"
	PageProfile   Page = "profile"
	PageFiles     Page = "files"
	PageNotFound  Page = "notFound"
)

// Item is one entry of the sidebar.
type Item struct {
	Page  Page
	Path  string
	Label string // display-table key
	Icon  string
}

var sidebar = []Item{
	{Page: PageDashboard, Path: "/dashboard", Label: "dashboard", Icon: "home"},
	{Page: PageProfile, Path: "/profile", Label: "profile", Icon: "user"},
	{Page: PageFiles, Path: "/files", Label: "files", Icon: "file"},
}

// Home is where the root path leads once logged in.
const Home = "/dashboard"

// Destination is the outcome of resolving a path.
type Destination struct {
	Page     Page
	Redirect string
	Status   int
}

// Sidebar returns the sidebar entries in display order.
func Sidebar() []Item {
	return append([]Item(nil), sidebar...)
}

// Resolve picks the page for path. Anonymous visitors always get the auth
// screen regardless of path.
func Resolve(authenticated bool, path string) Destination {
	if !authenticated {
		return Destination{Page: PageAuth, Status: http.StatusOK}
	}

	path = clean(path)
	if path == "/" {
		return Destination{Redirect: Home, Status: http.StatusFound}
	}

	for _, it := range sidebar {
		if it.Path == path {
			return Destination{Page: it.Page, Status: http.StatusOK}
		}
	}

	return Destination{Page: PageNotFound, Status: http.StatusNotFound}
}

// Active reports whether path belongs to the sidebar item it.
func Active(it Item, path string) bool {
	return clean(path) == it.Path
}

func clean(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
