package media

// Credits maps a role name to the ordered display names credited under it.
type Credits map[string][]string

// CreditArtist is one credited person as catalogs report them: a display
// name plus every role they held on the recording.
type CreditArtist struct {
	Name  string
	Roles []string
}

// AggregateCredits folds credit artists into a role-keyed table. Names are
// appended in order of appearance, and an artist credited under several
// roles shows up once per role.
func AggregateCredits(artists []CreditArtist) Credits {
	credits := make(Credits)
	for _, artist := range artists {
		if artist.Name == "" {
			continue
		}
		for _, role := range artist.Roles {
			credits[role] = append(credits[role], artist.Name)
		}
	}
	return credits
}
