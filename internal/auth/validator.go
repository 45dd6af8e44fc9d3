package auth

import "regexp"

var (
	// Accepts word characters, @, a two-or-more character domain and a
	// 2-3 letter top-level segment, with at most one extra 2-3 letter
	// segment (my@email.com.br is fine, my@email.com.br.us is not).
	emailRegex = regexp.MustCompile(`^\w+@\w{2,}\.[a-z]{2,3}(\.[a-z]{2,3})?$`)

	// A 32-64 character run over letters, digits, spaces and a fixed
	// symbol set. Note this is a character-class repetition, not a
	// must-contain-one-of-each rule: 32 lowercase letters pass.
	passwordRegex = regexp.MustCompile(`[a-zA-Z0-9\s@!=_#&~\[\]{}?]{32,64}`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidPassword(password string) bool {
	return passwordRegex.MatchString(password)
}

func IsValidCredentials(email, password string) bool {
	return IsValidEmail(email) && IsValidPassword(password)
}
