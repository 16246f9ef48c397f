package domain

type League struct {
	ID   int
	Slug string
	Name string
}
