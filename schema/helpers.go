package schema

import "strings"

// FormatIdentity builds the normalized "Name <email>" identity used as the
// grouping key for contributor statistics. Both parts are trimmed; a missing
// name falls back to the email's local part so the identity stays readable.
func FormatIdentity(name, email string) string {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			name = email[:at]
		} else {
			name = email
		}
	}
	return name + " <" + email + ">"
}

// SplitIdentity breaks a normalized identity back into its name and email
// parts. Strings not produced by FormatIdentity come back as (identity, "").
func SplitIdentity(identity string) (name, email string) {
	open := strings.LastIndexByte(identity, '<')
	if open < 0 || !strings.HasSuffix(identity, ">") {
		return identity, ""
	}
	return strings.TrimSpace(identity[:open]), identity[open+1 : len(identity)-1]
}
