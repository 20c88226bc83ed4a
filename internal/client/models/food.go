package models

type FoodItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	ReactionType string `json:"reactionType"`
	Emoji        string `json:"emoji"`
}
