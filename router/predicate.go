package router

import (
	"net/http"
	"strings"
)

// Predicate is a pure function of the request used to disambiguate
// rows sharing the same (scope, method).
type Predicate func(req *http.Request) bool

func hasQuery(name string) Predicate {
	return func(req *http.Request) bool {
		return req.URL.Query().Has(name)
	}
}

func queryEquals(name, value string) Predicate {
	return func(req *http.Request) bool {
		return req.URL.Query().Get(name) == value
	}
}

func hasHeader(name string) Predicate {
	return func(req *http.Request) bool {
		return req.Header.Get(name) != ""
	}
}

func headerHasPrefix(name, prefix string) Predicate {
	return func(req *http.Request) bool {
		return strings.HasPrefix(strings.ToLower(req.Header.Get(name)), strings.ToLower(prefix))
	}
}

func all(predicates ...Predicate) Predicate {
	return func(req *http.Request) bool {
		for _, p := range predicates {
			if !p(req) {
				return false
			}
		}
		return true
	}
}

func always(req *http.Request) bool { return true }
