package entity

// Category is a named tag that users can associate with their account.
// Categories are managed outside this service; it only reads them and links
// them to users.
type Category struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// CategorySelection pairs a category with whether the requesting user has it
// associated. This is the shape returned by the preference listing.
type CategorySelection struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	IsAssociated bool   `json:"isAssociated"`
}
