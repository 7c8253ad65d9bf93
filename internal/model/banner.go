package model

type Banner struct {
	ID             int64  `db:"id" json:"id"`
	Title          string `db:"title" json:"title"`
	Subtitle       string `db:"subtitle" json:"subtitle"`
	Description    string `db:"description" json:"description"`
	Image          string `db:"image" json:"image"`
	ButtonText     string `db:"button_text" json:"buttonText"`
	ButtonLink     string `db:"button_link" json:"buttonLink"`
	IsActive       bool   `db:"is_active" json:"isActive"`
	IsInternalLink bool   `db:"is_internal_link" json:"isInternalLink"`
}
