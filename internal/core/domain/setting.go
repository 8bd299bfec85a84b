package domain

// SettingKind scopes a lookup entry to the form field it populates.
type SettingKind string

const (
	SettingPropertyType SettingKind = "property_type"
	SettingCategory     SettingKind = "category"
	SettingPerson       SettingKind = "person"
)

// IsValid reports whether the kind is one of the accepted values.
func (k SettingKind) IsValid() bool {
	switch k {
	case SettingPropertyType, SettingCategory, SettingPerson:
		return true
	}
	return false
}

// Setting is an admin-managed lookup entry. (Name, Kind) pairs are
// unique.
type Setting struct {
	SettingID int64       `json:"id"`
	Name      string      `json:"name"`
	Kind      SettingKind `json:"kind"`
}
