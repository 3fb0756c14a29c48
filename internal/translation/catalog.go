package translation

// Language is one entry of the catalog offered to users.
type Language struct {
	Code string
	Name string
}

// String renders the language the way it is offered in the settings menu.
func (l Language) String() string {
	return l.Code + " - " + l.Name
}

// Catalog is the immutable, ordered set of supported languages.
type Catalog struct {
	languages []Language
	index     map[string]int
}

// NewCatalog keeps the given order. Later duplicates of a code are ignored.
func NewCatalog(languages ...Language) Catalog {
	c := Catalog{
		languages: make([]Language, 0, len(languages)),
		index:     make(map[string]int, len(languages)),
	}
	for _, l := range languages {
		if _, dup := c.index[l.Code]; dup {
			continue
		}
		c.index[l.Code] = len(c.languages)
		c.languages = append(c.languages, l)
	}
	return c
}

// Lookup returns the language registered under code.
func (c Catalog) Lookup(code string) (Language, bool) {
	i, ok := c.index[code]
	if !ok {
		return Language{}, false
	}
	return c.languages[i], true
}

// Languages returns a copy of the catalog in display order.
func (c Catalog) Languages() []Language {
	out := make([]Language, len(c.languages))
	copy(out, c.languages)
	return out
}
