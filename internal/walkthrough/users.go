package walkthrough

import "io"

// User groups the related values of one account record. Unlike a tuple,
// every field has its own name.
type User struct {
	Username    string
	Email       string
	SignInCount int
	Active      bool
}

// BuildUser returns a User populated from the two identity fields, with
// fixed defaults for the rest.
func BuildUser(email, username string) User {
	return User{
		Email:       email,
		Username:    username,
		Active:      true,
		SignInCount: 1,
	}
}

// WithContact returns a copy of u with the identity fields replaced.
// The value receiver is already a full copy, so every field not named
// here keeps its value from the source record.
func (u User) WithContact(email, username string) User {
	u.Email = email
	u.Username = username
	return u
}

// Color is a positional aggregate: an RGB triple whose elements are
// addressed by index, not by name.
type Color [3]int

// Marker stores no data at all. Zero-field types like this exist to hang
// methods on when there is no state to carry.
type Marker struct{}

// Structs demonstrates struct construction: literal construction, field
// mutation, a constructor function, derived construction, and the
// positional and zero-field aggregate forms.
func Structs(w io.Writer) error {
	// 1. Literal construction; fields may appear in any order.
	user1 := User{
		Email:       "random@email.com",
		Username:    "random",
		Active:      true,
		SignInCount: 1,
	}

	// 2. Fields of any ordinary variable can be reassigned directly.
	user1.Email = "random2@email.com"

	// 3. Constructor function.
	user2 := BuildUser("random3@email.com", "random2")
	if err := printf(w, "Username of User 2 is: %s\n", user2.Username); err != nil {
		return err
	}

	// 4. Derived construction: copy user1, replace only the identity
	// fields. SignInCount and Active carry over from user1.
	user3 := user1.WithContact("random4@email.com", "random4")
	if err := printf(w, "Is user 3 active? %t\n", user3.Active); err != nil {
		return err
	}
	if err := printf(w, "What's user 3 sign in count? %d\n", user3.SignInCount); err != nil {
		return err
	}

	// 5. Positional aggregate, indexed instead of named.
	black := Color{0, 0, 0}
	if err := printf(w, "Black is %d%d%d in RGB.\n", black[0], black[1], black[2]); err != nil {
		return err
	}

	// 6. A zero-field value occupies no storage.
	_ = Marker{}
	return nil
}
