package domain

import "time"

const roomPrefix = "ROOM-"

// ChatMessage is a single entry in a chat room, ordered by insertion.
type ChatMessage struct {
	ID   string    `json:"id"`
	From string    `json:"from"`
	Name string    `json:"name"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
	Read bool      `json:"read"`
}

// RoomForListing returns the chat room used to discuss a listing.
func RoomForListing(listingID string) string {
	return roomPrefix + listingID
}
