// Package catalog is the static registry of features that guest mode
// restricts. Descriptors are compile-time constants; nothing here mutates at
// runtime.
package catalog

import "fmt"

// Feature identifies an application capability gated behind authentication
// while in guest mode.
type Feature string

const (
	FeatureMessaging     Feature = "messaging"
	FeatureCreateListing Feature = "create_listing"
	FeatureProfile       Feature = "profile"
	FeatureChallenges    Feature = "challenges"
	FeatureReviews       Feature = "reviews"
	FeatureFavorites     Feature = "favorites"
	FeatureNotifications Feature = "notifications"
)

// Descriptor holds the immutable presentation attributes of a restricted
// feature. Title and Description are the untranslated fallbacks; TitleKey
// and DescriptionKey address the localization collaborator.
type Descriptor struct {
	Title          string
	Description    string
	IconID         string
	TitleKey       string
	DescriptionKey string
}

// TranslateFunc resolves a localization key to a display string. It is
// supplied by the i18n collaborator; the catalog never localizes on its own.
type TranslateFunc func(key string) string

var descriptors = map[Feature]Descriptor{
	FeatureMessaging: {
		Title:          "Messages",
		Description:    "Chat with buyers and sellers",
		IconID:         "message.fill",
		TitleKey:       "guest.feature.messaging.title",
		DescriptionKey: "guest.feature.messaging.desc",
	},
	FeatureCreateListing: {
		Title:          "Create Listing",
		Description:    "Post your own items for sale",
		IconID:         "plus.circle.fill",
		TitleKey:       "guest.feature.create_listing.title",
		DescriptionKey: "guest.feature.create_listing.desc",
	},
	FeatureProfile: {
		Title:          "Profile",
		Description:    "Manage your account and settings",
		IconID:         "person.crop.circle.fill",
		TitleKey:       "guest.feature.profile.title",
		DescriptionKey: "guest.feature.profile.desc",
	},
	FeatureChallenges: {
		Title:          "Challenges",
		Description:    "Join community challenges and earn rewards",
		IconID:         "trophy.fill",
		TitleKey:       "guest.feature.challenges.title",
		DescriptionKey: "guest.feature.challenges.desc",
	},
	FeatureReviews: {
		Title:          "Reviews",
		Description:    "Rate sellers and leave feedback",
		IconID:         "star.fill",
		TitleKey:       "guest.feature.reviews.title",
		DescriptionKey: "guest.feature.reviews.desc",
	},
	FeatureFavorites: {
		Title:          "Favorites",
		Description:    "Save items to revisit later",
		IconID:         "heart.fill",
		TitleKey:       "guest.feature.favorites.title",
		DescriptionKey: "guest.feature.favorites.desc",
	},
	FeatureNotifications: {
		Title:          "Notifications",
		Description:    "Get alerts about your activity",
		IconID:         "bell.fill",
		TitleKey:       "guest.feature.notifications.title",
		DescriptionKey: "guest.feature.notifications.desc",
	},
}

// order fixes the display order of All(). Keep in sync with the constants.
var order = []Feature{
	FeatureMessaging,
	FeatureCreateListing,
	FeatureProfile,
	FeatureChallenges,
	FeatureReviews,
	FeatureFavorites,
	FeatureNotifications,
}

// All returns every restricted feature in stable display order.
func All() []Feature {
	out := make([]Feature, len(order))
	copy(out, order)
	return out
}

// Valid reports whether f is a known restricted feature.
func (f Feature) Valid() bool {
	_, ok := descriptors[f]
	return ok
}

// String returns the wire/storage name of the feature.
func (f Feature) String() string {
	return string(f)
}

// Parse resolves a feature name (as printed by String) back to a Feature.
func Parse(name string) (Feature, error) {
	f := Feature(name)
	if !f.Valid() {
		return "", fmt.Errorf("unknown restricted feature: %q", name)
	}
	return f, nil
}

// Describe returns the descriptor for f. Every valid feature has a complete
// descriptor; an unknown feature yields the zero Descriptor.
func Describe(f Feature) Descriptor {
	return descriptors[f]
}

// LocalizedTitle resolves the feature title through translate, falling back
// to the untranslated title when translate is nil.
func LocalizedTitle(f Feature, translate TranslateFunc) string {
	d := descriptors[f]
	if translate == nil {
		return d.Title
	}
	return translate(d.TitleKey)
}

// LocalizedDescription resolves the feature description through translate,
// falling back to the untranslated description when translate is nil.
func LocalizedDescription(f Feature, translate TranslateFunc) string {
	d := descriptors[f]
	if translate == nil {
		return d.Description
	}
	return translate(d.DescriptionKey)
}
