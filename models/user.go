package models

import "time"

// UserProfile is the per-user record keyed by the Firebase auth UID. The auth
// provider owns identity; this document only carries profile fields and
// bookmarks.
type UserProfile struct {
	UID              string    `bson:"uid" json:"uid"`
	Email            string    `bson:"email" json:"email"`
	DisplayName      string    `bson:"displayName" json:"displayName"`
	PhotoURL         string    `bson:"photoUrl" json:"photoUrl"`
	BookmarkedGuides []string  `bson:"bookmarkedGuides" json:"bookmarkedGuides"`
	SavedProviders   []string  `bson:"savedProviders" json:"savedProviders"`
	SavedChambers    []string  `bson:"savedChambers" json:"savedChambers"`
	NewsletterOptIn  bool      `bson:"newsletterOptIn" json:"newsletterOptIn"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
