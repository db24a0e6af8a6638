package models

// User represents a registered account together with the profile
// attributes the dashboard is built from.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique account identifier and the primary key of
	// the users table.
	Username string `json:"username"`

	// Age in full years. Accepted range at registration: 10–100.
	Age int `json:"age"`

	// Height in centimetres. Accepted range at registration: 100–250.
	Height float64 `json:"height"`

	// Weight in kilograms. Accepted range at registration: 30–200.
	Weight float64 `json:"weight"`

	// PasswordHash stores the bcrypt hash of the account password.
	// This value MUST be a hash, never plaintext, and is used only for
	// authentication. It is never serialised.
	PasswordHash string `json:"-"`

	// BMI is weight / (height/100)^2 rounded to two decimals.
	// It is computed once at registration time and read back as stored;
	// it is not recomputed when the profile is viewed.
	BMI float64 `json:"bmi"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Registration carries the raw input of the register form.
// Password is plaintext here and must not outlive the registration call.
type Registration struct {
	Username string
	Age      int
	Height   float64
	Weight   float64
	Password string
}
