package notes

type Note struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func NewNote(title, body string) *Note {
	return &Note{
		Title: title,
		Body:  body,
	}
}

type NotesListResponse struct {
	Notes []Note `json:"notes"`
	Total int    `json:"total"`
}
