package domain

// BootstrapData describes the administrator seeded into an empty database.
type BootstrapData struct {
	AdminEmail     string
	AdminPassword  string
	AdminFirstname string
	AdminSurname   string
}
