package domain

// Location идентификатор локации экипажа
type Location string

const (
	LocationMoscow      Location = "moscow"
	LocationSPB         Location = "spb"
	LocationKrasnoyarsk Location = "krasnoyarsk"
	LocationSochi       Location = "sochi"
)

// Role идентификатор должности члена экипажа
type Role string

const (
	RoleBP   Role = "bp"
	RoleBPBS Role = "bp_bs"
	RoleSBE  Role = "sbe"
	RoleIPB  Role = "ipb"
)

// Locations каталог локаций в порядке отображения
var Locations = []Location{
	LocationMoscow,
	LocationSPB,
	LocationKrasnoyarsk,
	LocationSochi,
}

// Roles каталог должностей в порядке отображения
var Roles = []Role{
	RoleBP,
	RoleBPBS,
	RoleSBE,
	RoleIPB,
}

// locationNames отображаемые названия локаций
var locationNames = map[Location]string{
	LocationMoscow:      "Москва",
	LocationSPB:         "Санкт-Петербург",
	LocationKrasnoyarsk: "Красноярск",
	LocationSochi:       "Сочи",
}

// roleNames отображаемые названия должностей
var roleNames = map[Role]string{
	RoleBP:   "БП",
	RoleBPBS: "БП BS",
	RoleSBE:  "СБЭ",
	RoleIPB:  "ИПБ",
}

// Name returns the display name of the location
func (l Location) Name() string {
	return locationNames[l]
}

// Name returns the display name of the role
func (r Role) Name() string {
	return roleNames[r]
}

// ParseLocation конвертирует идентификатор в Location
func ParseLocation(s string) (Location, bool) {
	for _, l := range Locations {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// ParseRole конвертирует идентификатор в Role
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}
