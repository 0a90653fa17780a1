package query

import "expedientes_app_go/models"

// ClientFilter searches clients by name, document id and email
type ClientFilter struct {
	Search string   `json:"search,omitempty"`
	Kinds  []string `json:"kinds,omitempty"`
}

func (f ClientFilter) ActiveCount() int { return countActive(f.Search, f.Kinds) }

func (f ClientFilter) Active() bool { return f.ActiveCount() > 0 }

func (f ClientFilter) Match(c *models.Client) bool {
	return matchesAny(normalizeSearch(f.Search), c.Name, models.StringValue(c.DocumentID), models.StringValue(c.Email)) &&
		inSet(f.Kinds, c.Kind)
}

// FilterClients keeps collection order; clients have no sort fields
func FilterClients(items []models.Client, f ClientFilter) []models.Client {
	return filterItems(items, f.Match)
}
