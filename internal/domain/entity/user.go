package entity

// ConstantPasskey is the shared secondary secret every account receives at
// registration and must present at login.
const ConstantPasskey = "PASS12"

// SecurityQuestions is the closed set a user picks from at registration.
var SecurityQuestions = []string{
	"What was the name of your first pet?",
	"What is your mother's maiden name?",
	"What was the name of your elementary school?",
	"What is your favorite book?",
}

// User represents a staff account gating access to the system
type User struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"type:varchar(100);not null" json:"name"`
	Username         string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash     string `gorm:"type:char(64);not null" json:"-"`
	Passkey          string `gorm:"type:varchar(6);not null;default:'PASS12'" json:"-"`
	SecurityQuestion string `gorm:"type:varchar(255);not null" json:"security_question"`
	SecurityAnswer   string `gorm:"type:varchar(255);not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsValidSecurityQuestion reports whether q belongs to the closed question set.
func IsValidSecurityQuestion(q string) bool {
	for _, question := range SecurityQuestions {
		if q == question {
			return true
		}
	}
	return false
}
