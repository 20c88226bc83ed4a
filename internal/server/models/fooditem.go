package models

// FoodItem is a catalog entry, e.g. {"Milk", "dairy", "critic", "🥛"}.
type FoodItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	ReactionType string `json:"reactionType"`
	Emoji        string `json:"emoji"`
}

// FoodFilter narrows a catalog listing; empty fields match everything.
type FoodFilter struct {
	Category     string
	ReactionType string
}
