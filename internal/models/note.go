package models

type Note struct {
	ID      int    `json:"id"`
	UserID  int    `json:"-"`
	Content string `json:"content"`
}
