package sqlboiler

var TableNames = struct {
	Groups      string
	Memberships string
	Users       string
}{
	Groups:      "groups",
	Memberships: "memberships",
	Users:       "users",
}
