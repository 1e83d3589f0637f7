package model

// Enriched views assemble an entity together with the records it references
// so the API can return a denormalized object graph in one response. Every
// branch is a pointer: when a foreign key does not resolve, the branch is nil
// and the rest of the view is still returned. Enrichment never fails.

// EnrichedMatch is a Match plus its sport, league and teams.
type EnrichedMatch struct {
	Match
	Sport    *Sport  `json:"sport"`
	League   *League `json:"league"`
	HomeTeam *Team   `json:"home_team"`
	AwayTeam *Team   `json:"away_team"`
}

// EnrichedVenueMatch is a VenueMatch plus its venue and enriched match.
type EnrichedVenueMatch struct {
	VenueMatch
	Venue *Venue         `json:"venue"`
	Match *EnrichedMatch `json:"match"`
}

// EnrichedReservation is a Reservation plus the screening it targets. A
// dangling venue_match_id yields a nil VenueMatch, not an error.
type EnrichedReservation struct {
	Reservation
	VenueMatch *EnrichedVenueMatch `json:"venue_match"`
}

// VenueWithMatches is a venue plus its broadcast schedule ordered by match
// date.
type VenueWithMatches struct {
	Venue
	Matches []EnrichedVenueMatch `json:"matches"`
}
