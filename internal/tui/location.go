package tui

import (
	"net/url"
	"strings"
)

const (
	loginLocation  = "/login"
	vaultsLocation = "/vault"
)

type pageKind int

const (
	loginPage pageKind = iota
	vaultListPage
	vaultDetailPage
)

// route is a parsed location.
type route struct {
	kind    pageKind
	vaultID string
	query   url.Values
}

// parseLocation maps /login, /vault and /vault/{id} to a route. The query is
// kept for the page; anything else is not a route.
func parseLocation(location string) (route, bool) {
	u, err := url.Parse(location)
	if err != nil {
		return route{}, false
	}

	path := strings.TrimSuffix(u.EscapedPath(), "/")
	query := u.Query()

	switch {
	case path == loginLocation:
		return route{kind: loginPage, query: query}, true
	case path == vaultsLocation:
		return route{kind: vaultListPage, query: query}, true
	case strings.HasPrefix(path, vaultsLocation+"/"):
		escaped := strings.TrimPrefix(path, vaultsLocation+"/")
		if escaped == "" || strings.Contains(escaped, "/") {
			return route{}, false
		}
		id, err := url.PathUnescape(escaped)
		if err != nil {
			return route{}, false
		}
		return route{kind: vaultDetailPage, vaultID: id, query: query}, true
	}

	return route{}, false
}

func vaultLocation(vaultID string) string {
	return vaultsLocation + "/" + url.PathEscape(vaultID)
}

func loginLocationWith(query url.Values) string {
	if len(query) == 0 {
		return loginLocation
	}
	return loginLocation + "?" + query.Encode()
}
