package schema

// CountryTable represents the 'countries' table
type CountryTable struct {
	Table      string
	ID         string
	Name       string
	NameLocal  string
	ISOCode    string
	Icon       string
	Structure  string
	Continent  string
	Timezone   string
	Rest       string
	IsActive   string
	IsDeleted  string
	IsArchived string
	CreatedAt  string
	UpdatedAt  string
}

// Country is the schema definition for countries
var Country = CountryTable{
	Table:      "countries",
	ID:         "id",
	Name:       "name",
	NameLocal:  "name_local",
	ISOCode:    "iso_code",
	Icon:       "icon",
	Structure:  "structure",
	Continent:  "continent",
	Timezone:   "timezone",
	Rest:       "rest",
	IsActive:   "is_active",
	IsDeleted:  "is_deleted",
	IsArchived: "is_archived",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

// PublicColumns lists the columns exposed through the API.
func (t CountryTable) PublicColumns() []string {
	return []string{t.ID, t.Name, t.NameLocal, t.ISOCode, t.Icon, t.Structure, t.Continent, t.Timezone, t.IsActive}
}
