package dto

type AddNoteRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// EditNoteRequest is a partial update: nil means the field was not supplied
// and must be left untouched.
type EditNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	IsPinned *bool     `json:"isPinned"`
}

type UpdatePinnedRequest struct {
	IsPinned *bool `json:"isPinned"`
}
