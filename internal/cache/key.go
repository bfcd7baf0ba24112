package cache

import "strings"

// DefaultCategory is used when a request names neither a category nor a search text.
const DefaultCategory = "general"

// Key identifies one fetch request. Category and search keys live in separate
// namespaces, so the category "sports" and a search for "sports" never share an entry.
type Key string

func CategoryKey(category string) Key {
	return Key("category:" + category)
}

func SearchKey(query string) Key {
	return Key("search:" + query)
}

// Request is a normalized fetch request: at most one of Category or Query is set.
type Request struct {
	Category string
	Query    string
}

// NewRequest normalizes raw user input. Search text wins over category, a blank
// request falls back to DefaultCategory.
func NewRequest(category, query string) Request {
	query = strings.TrimSpace(query)
	if query != "" {
		return Request{Query: query}
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}
	return Request{Category: category}
}

func (r Request) IsSearch() bool {
	return r.Query != ""
}

func (r Request) Key() Key {
	if r.IsSearch() {
		return SearchKey(r.Query)
	}
	return CategoryKey(r.Category)
}
