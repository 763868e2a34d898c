package service

import "github.com/silverhold/codehub-backend/internal/auth/domain"

// directory is the canonical built-in admin list. It is fixed at build time
// and never rewritten at runtime: profile edits are saved to the session
// record only, so a fresh login always starts from these credentials.
var directory = []domain.Admin{
	{
		ID:       "silverhold-1",
		Username: "Silverhold",
		Name:     "SilverHold Official",
		Role:     domain.RoleAdmin,
		Quote:    "Jangan lupa sholat walaupun kamu seorang pendosa, Allah lebih suka orang pendosa yang sering bertaubat daripada orang yang merasa suci",
		Hashtags: []string{"#bismillahcalonustad"},
		PhotoURL: "https://picsum.photos/id/64/400/400",
		Password: "Rian",
	},
	{
		ID:       "brayn-1",
		Username: "BraynOfficial",
		Name:     "Brayn Official",
		Role:     domain.RoleOwner,
		Quote:    "Tidak Semua Orang Suka Kita Berkembang Pesat!",
		Hashtags: []string{"#backenddev", "#frontenddev", "#BraynOfficial"},
		PhotoURL: "https://picsum.photos/id/91/400/400",
		Password: "Plerr321",
	},
}

// ChatReplySender is the display name attributed to simulated chat replies.
func ChatReplySender() string {
	return directory[0].Name
}
