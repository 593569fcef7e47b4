package validation

import "strings"

// SpamPolicy rejects form submissions that filled the hidden decoy field.
// Real visitors never see the field, so any value means an automated client.
// Callers must surface the rejection as a generic error so the mechanism
// stays invisible to whoever is probing the form.
type SpamPolicy struct{}

func NewSpamPolicy() SpamPolicy {
	return SpamPolicy{}
}

// IsSpam reports whether the decoy field value marks the submission as
// automated.
func (SpamPolicy) IsSpam(decoy string) bool {
	return strings.TrimSpace(decoy) != ""
}
