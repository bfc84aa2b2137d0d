package model

import "time"

// Video is a YouTube video shown in the public carousel. Thumbnail is always
// derived from URL at write time, never supplied by the caller.
type Video struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
