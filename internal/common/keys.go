package common

// Storage keys in the local store. These spellings are a compatibility
// contract with existing profiles and must be preserved byte for byte.
const (
	// KeyUsers holds the JSON array of UserRecord.
	KeyUsers = "tg_fake_users"

	// KeyLoggedIn holds the active session email as a plain string.
	// The key is absent when nobody is signed in.
	KeyLoggedIn = "tg_logged_in"

	// KeyFavoritesLegacy is the shared favorites key used when no
	// identity is active.
	KeyFavoritesLegacy = "favorites"

	// KeyFavoritesPrefix prefixes the per-identity favorites keys:
	// "favorites_" + lowercased email.
	KeyFavoritesPrefix = "favorites_"
)
