package schema

// AdminDivisionTable represents the 'admin_divisions' table
type AdminDivisionTable struct {
	Table      string
	ID         string
	CountryID  string
	ParentID   string
	Name       string
	NameLocal  string
	Code       string
	Type       string
	Level      string
	Path       string
	Timezone   string
	Rest       string
	IsActive   string
	IsDeleted  string
	IsArchived string
	CreatedAt  string
	UpdatedAt  string
}

// AdminDivision is the schema definition for admin_divisions
var AdminDivision = AdminDivisionTable{
	Table:      "admin_divisions",
	ID:         "id",
	CountryID:  "country_id",
	ParentID:   "parent_id",
	Name:       "name",
	NameLocal:  "name_local",
	Code:       "code",
	Type:       "type",
	Level:      "level",
	Path:       "path",
	Timezone:   "timezone",
	Rest:       "rest",
	IsActive:   "is_active",
	IsDeleted:  "is_deleted",
	IsArchived: "is_archived",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

// PublicColumns lists the columns exposed through the API.
func (t AdminDivisionTable) PublicColumns() []string {
	return []string{
		t.ID, t.CountryID, t.ParentID, t.Name, t.NameLocal,
		t.Code, t.Type, t.Level, t.Path, t.Timezone, t.Rest, t.IsActive,
	}
}
