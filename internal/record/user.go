package record

// User is one row of the "User" sheet. RowIndex is 0 until the record
// has been persisted.
type User struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	RowIndex int    `json:"row_index,omitempty"`
}

// NewUser validates the given fields and returns a User, or a
// *ValidationError naming the offending field.
//
// The CPF check is length-only: strip every non-digit character and
// require exactly 11 digits. It deliberately does not verify the CPF
// check digits.
func NewUser(name, cpf, email string) (User, error) {
	if err := validateName("name", name); err != nil {
		return User{}, err
	}
	if len(nonDigits.ReplaceAllString(cpf, "")) != 11 {
		return User{}, &ValidationError{Field: "cpf", Reason: "must contain exactly 11 digits"}
	}
	if !emailPattern.MatchString(email) {
		return User{}, &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return User{Name: name, CPF: cpf, Email: email}, nil
}

// Row returns the user's A-C cell values in sheet column order.
func (u User) Row() []string {
	return []string{u.Name, u.CPF, u.Email}
}

// UserFromRow maps a raw sheet row onto a User without validating it.
func UserFromRow(row []string, rowIndex int) User {
	return User{
		Name:     cell(row, 0),
		CPF:      cell(row, 1),
		Email:    cell(row, 2),
		RowIndex: rowIndex,
	}
}
