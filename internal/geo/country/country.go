package country

// Country is the root of one administrative hierarchy.
//
// Soft-deleted rows never leave the storage layer; IsActive is exposed so
// clients can grey out hierarchies that are seeded but not yet launched.
type Country struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	NameLocal *string `json:"name_local"`
	ISOCode   string  `json:"iso_code"`
	Icon      string  `json:"icon"`
	Structure string  `json:"structure"`
	Continent string  `json:"continent"`
	Timezone  *string `json:"timezone"`
	IsActive  bool    `json:"is_active"`
}
