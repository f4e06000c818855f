package model

// Roles controlling which screens and actions are exposed.
const (
	RoleAdmin     = "admin"
	RoleVolunteer = "volunteer"
	RoleDonor     = "donor"
)

// Account states. Blocked users keep read access but cannot create
// donation requests or fund.
const (
	UserActive  = "active"
	UserBlocked = "blocked"
)

// BloodGroups is the closed set of accepted blood group values.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// ValidBloodGroup reports whether g is one of the eight accepted groups.
func ValidBloodGroup(g string) bool {
	for _, b := range BloodGroups {
		if g == b {
			return true
		}
	}
	return false
}

// User is a registered account — maps to the users table.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"userId"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	AvatarURL    string `gorm:"type:varchar(500);not null;default:''"          json:"avatarUrl"`
	Role         string `gorm:"type:varchar(20);not null;default:'donor'"      json:"role"`
	Status       string `gorm:"type:varchar(20);not null;default:'active'"     json:"status"`
	BloodGroup   string `gorm:"type:varchar(3);not null"                       json:"bloodGroup"`
	District     string `gorm:"type:varchar(100);not null"                     json:"district"`
	Upazila      string `gorm:"type:varchar(100);not null"                     json:"upazila"`
	Phone        string `gorm:"type:varchar(30);not null;default:''"           json:"phone,omitempty"`
	Bio          string `gorm:"type:varchar(500);not null;default:''"          json:"bio,omitempty"`
	SoftDeleteModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
