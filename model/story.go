package model

import (
	"fmt"
	"time"
)

// Author holds the basic FFN metadata of a story's author.
type Author struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// URL returns the author's FFN profile url, derived from their id.
func (a Author) URL() string {
	return fmt.Sprintf("https://www.fanfiction.net/u/%v", a.Id)
}

// Story is the metadata of a single FFN fic as served by Atlas. It is a
// plain value: the decoder builds one per API record and nothing mutates
// it afterwards.
type Story struct {
	Id          int        `json:"id"`
	Author      Author     `json:"author"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Chapters    int        `json:"chapters"`
	Published   time.Time  `json:"published"`
	Updated     *time.Time `json:"updated,omitempty"`
	IsComplete  bool       `json:"is_complete"`
	IsCrossover bool       `json:"is_crossover"`
	Words       int        `json:"words"`
	Language    string     `json:"language"`
	Rating      string     `json:"rating"`
	Reviews     int        `json:"reviews"`
	Favorites   int        `json:"favorites"`
	Follows     int        `json:"follows"`

	// Genres, Characters and Fandoms are parsed out of the raw_* fields.
	// They are always non-nil, empty when the source field was null.
	Genres     []string `json:"genres"`
	Characters []string `json:"characters"`
	Fandoms    []string `json:"fandoms"`

	// FandomIds collects fandom_id0, fandom_id1, ... in suffix order. A
	// nil entry means no fandom occupies that slot.
	FandomIds []*int `json:"fandom_ids"`
}

// URL returns the story's FFN url, derived from its id.
func (s Story) URL() string {
	return fmt.Sprintf("https://www.fanfiction.net/s/%v", s.Id)
}
